package domain

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// User is a marketplace account. Locally registered users carry a
// bcrypt password hash; users created through an identity provider do
// not, and their ID is the provider-qualified subject (e.g. "google:123").
type User struct {
	ID              string    `json:"id" gorm:"primaryKey;size:128"`
	Email           string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    *string   `json:"-"`
	FirstName       *string   `json:"firstName,omitempty" gorm:"size:100"`
	LastName        *string   `json:"lastName,omitempty" gorm:"size:100"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty" gorm:"size:500"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsLocal reports whether the account can log in with a password.
func (u *User) IsLocal() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// NormalizeEmail canonicalizes an email for lookup and storage. Every
// path that touches the store goes through this, so email uniqueness is
// effectively case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const localIDSuffixLen = 9

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewLocalUserID generates the ID for a locally registered user:
// "local:" + millisecond timestamp + "-" + 9-char random base36 suffix.
func NewLocalUserID(now time.Time) string {
	raw := make([]byte, localIDSuffixLen)
	if _, err := rand.Read(raw); err != nil {
		panic(fmt.Sprintf("domain: reading random bytes: %v", err))
	}
	suffix := make([]byte, localIDSuffixLen)
	for i, b := range raw {
		suffix[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return fmt.Sprintf("local:%d-%s", now.UnixMilli(), suffix)
}
