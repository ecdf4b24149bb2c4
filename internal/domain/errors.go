package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidIdentity    = errors.New("invalid identity token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrSessionPersist  = errors.New("failed to save session")
)

// Notification errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)
