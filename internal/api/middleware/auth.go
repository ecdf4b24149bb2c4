package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/service"
)

type contextKey string

const (
	claimKey     contextKey = "sessionClaim"
	sessionIDKey contextKey = "sessionID"
)

// SessionCookieName is the opaque session cookie delivered to clients.
const SessionCookieName = "sid"

// Session authenticates requests by resolving the session cookie to a
// stored claim. Missing, unknown or expired sessions get a 401.
func Session(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			claim, err := authService.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrSessionNotFound) && !errors.Is(err, domain.ErrSessionExpired) {
					slog.Error("session validation failed", "error", err)
				}
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimKey, claim)
			ctx = context.WithValue(ctx, sessionIDKey, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"Unauthorized"}`))
}

// GetClaim returns the authenticated session claim, if any.
func GetClaim(ctx context.Context) (*domain.SessionClaim, bool) {
	claim, ok := ctx.Value(claimKey).(*domain.SessionClaim)
	return claim, ok
}

// GetSessionID returns the session token the request authenticated with.
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}
