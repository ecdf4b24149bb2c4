package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email     string
	password  string
	firstName *string
	lastName  *string
	noLocal   bool
	id        string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the profile name
func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.firstName = &first
	b.lastName = &last
	return b
}

// WithID overrides the generated user ID
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.id = id
	return b
}

// AsIdentityProviderUser produces a user with no password hash
func (b *UserBuilder) AsIdentityProviderUser() *UserBuilder {
	b.noLocal = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	id := b.id
	if id == "" {
		id = domain.NewLocalUserID(time.Now())
	}

	user := &domain.User{
		ID:        id,
		Email:     domain.NormalizeEmail(b.email),
		FirstName: b.firstName,
		LastName:  b.lastName,
	}

	if !b.noLocal {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		hash := string(hashedPassword)
		user.PasswordHash = &hash
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// NotificationBuilder creates test notifications
type NotificationBuilder struct {
	userID string
	ntype  string
	title  string
	isRead bool
}

func NewNotificationBuilder(userID string) *NotificationBuilder {
	return &NotificationBuilder{
		userID: userID,
		ntype:  domain.NotificationBookingReminder,
		title:  "Upcoming booking",
	}
}

func (b *NotificationBuilder) WithType(ntype string) *NotificationBuilder {
	b.ntype = ntype
	return b
}

func (b *NotificationBuilder) WithTitle(title string) *NotificationBuilder {
	b.title = title
	return b
}

func (b *NotificationBuilder) Read() *NotificationBuilder {
	b.isRead = true
	return b
}

func (b *NotificationBuilder) Build(t *testing.T, db *gorm.DB) *domain.Notification {
	t.Helper()

	notification := &domain.Notification{
		ID:     uuid.New(),
		UserID: b.userID,
		Type:   b.ntype,
		Title:  b.title,
		IsRead: b.isRead,
	}
	if err := db.Create(notification).Error; err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}
	return notification
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Success bool `json:"success"`
	User    struct {
		ID        string  `json:"id"`
		Email     string  `json:"email"`
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
	} `json:"user"`
}

// RegisterUser registers a user through the API and returns the
// response body together with the session cookie.
func RegisterUser(t *testing.T, ts *TestServer, email, password string) (*AuthResponse, *http.Cookie) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected register status: %d", resp.StatusCode)
	}

	var result AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	cookie := SessionCookie(resp)
	if cookie == nil {
		t.Fatal("register response did not set a session cookie")
	}

	return &result, cookie
}

// SessionCookie extracts the session cookie from a response, if set.
func SessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			return c
		}
	}
	return nil
}
