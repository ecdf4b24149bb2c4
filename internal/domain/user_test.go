package domain_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalUserID(t *testing.T) {
	now := time.Now()
	id := domain.NewLocalUserID(now)

	require.True(t, strings.HasPrefix(id, "local:"), "id %q should have local: prefix", id)

	rest := strings.TrimPrefix(id, "local:")
	parts := strings.SplitN(rest, "-", 2)
	require.Len(t, parts, 2, "id %q should be timestamp-suffix", id)

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), millis)

	assert.Len(t, parts[1], 9, "suffix should be 9 characters")
	for _, c := range parts[1] {
		assert.Contains(t, "0123456789abcdefghijklmnopqrstuvwxyz", string(c))
	}
}

func TestNewLocalUserID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := domain.NewLocalUserID(now)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A@X.COM", "a@x.com"},
		{"  user@example.com  ", "user@example.com"},
		{"MiXeD@Example.Com", "mixed@example.com"},
		{"already@lower.io", "already@lower.io"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeEmail(tt.in))
	}
}

func TestNewSessionClaim(t *testing.T) {
	firstName := "Aziza"
	lastName := "Karimova"
	imageURL := "https://cdn.example.com/aziza.jpg"
	user := &domain.User{
		ID:              "local:1700000000000-abc123def",
		Email:           "aziza@example.com",
		FirstName:       &firstName,
		LastName:        &lastName,
		ProfileImageURL: &imageURL,
	}

	now := time.Now()
	claim := domain.NewSessionClaim(user, now, domain.DefaultSessionTTL)

	assert.Equal(t, user.ID, claim.Sub)
	assert.Equal(t, user.Email, claim.Email)
	assert.Equal(t, firstName, claim.FirstName)
	assert.Equal(t, lastName, claim.LastName)
	assert.Equal(t, imageURL, claim.ProfileImageURL)
	assert.Equal(t, now.Add(30*24*time.Hour).Unix(), claim.ExpiresAt)
}

func TestNewSessionClaim_MissingProfileFields(t *testing.T) {
	user := &domain.User{
		ID:    "local:1700000000000-abc123def",
		Email: "bare@example.com",
	}

	claim := domain.NewSessionClaim(user, time.Now(), time.Hour)

	assert.Empty(t, claim.FirstName)
	assert.Empty(t, claim.LastName)
	assert.Empty(t, claim.ProfileImageURL)
}

func TestNewSessionClaim_Snapshot(t *testing.T) {
	firstName := "Before"
	user := &domain.User{ID: "u1", Email: "snap@example.com", FirstName: &firstName}

	claim := domain.NewSessionClaim(user, time.Now(), time.Hour)

	// Later profile edits must not retroactively change the claim.
	updated := "After"
	user.FirstName = &updated
	assert.Equal(t, "Before", claim.FirstName)
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	session := &domain.Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Minute)))
	assert.True(t, session.Expired(now.Add(2*time.Minute)))
}

func TestNewSessionID(t *testing.T) {
	a := domain.NewSessionID()
	b := domain.NewSessionID()

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestUserIsLocal(t *testing.T) {
	hash := "$2a$10$something"
	empty := ""

	assert.True(t, (&domain.User{PasswordHash: &hash}).IsLocal())
	assert.False(t, (&domain.User{PasswordHash: nil}).IsLocal())
	assert.False(t, (&domain.User{PasswordHash: &empty}).IsLocal())
}
