package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DefaultSessionTTL matches the 30-day expiry the web client expects.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Session is a server-side session record. The ID is the opaque value
// delivered to the client in the session cookie; Claims holds the
// marshalled SessionClaim.
type Session struct {
	ID        string         `json:"id" gorm:"primaryKey;size:64"`
	UserID    string         `json:"userId" gorm:"index;size:128;not null"`
	Claims    datatypes.JSON `json:"-" gorm:"not null"`
	ExpiresAt time.Time      `json:"expiresAt" gorm:"index;not null"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionClaim is the authenticated-identity payload stored inside a
// session record. Profile fields are a snapshot taken at issuance and
// are not live-synced with the user row.
type SessionClaim struct {
	Sub             string `json:"sub"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	ExpiresAt       int64  `json:"expires_at"`
}

// NewSessionClaim builds the claim for a persisted user row. Pure:
// deterministic given user, now and ttl, no I/O.
func NewSessionClaim(user *User, now time.Time, ttl time.Duration) SessionClaim {
	claim := SessionClaim{
		Sub:       user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(ttl).Unix(),
	}
	if user.FirstName != nil {
		claim.FirstName = *user.FirstName
	}
	if user.LastName != nil {
		claim.LastName = *user.LastName
	}
	if user.ProfileImageURL != nil {
		claim.ProfileImageURL = *user.ProfileImageURL
	}
	return claim
}

// NewSessionID returns an unguessable opaque session token.
func NewSessionID() string {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		panic(fmt.Sprintf("domain: reading random bytes: %v", err))
	}
	return hex.EncodeToString(raw)
}
