package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chiroyli/salon-backend/internal/api/middleware"
	"github.com/chiroyli/salon-backend/internal/config"
	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// SanitizedUser is the user shape returned by auth endpoints. The
// password hash never appears here.
type SanitizedUser struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type AuthResponse struct {
	Success bool          `json:"success"`
	User    SanitizedUser `json:"user"`
}

func sanitizeUser(user *domain.User) SanitizedUser {
	return SanitizedUser{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailExists):
			respondError(w, http.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, domain.ErrSessionPersist):
			slog.Error("session save failed during registration", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create session")
		default:
			slog.Error("registration failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	h.setSessionCookie(w, result)
	respondJSON(w, http.StatusOK, AuthResponse{Success: true, User: sanitizeUser(result.User)})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, domain.ErrSessionPersist):
			slog.Error("session save failed during login", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create session")
		default:
			slog.Error("login failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.setSessionCookie(w, result)
	respondJSON(w, http.StatusOK, AuthResponse{Success: true, User: sanitizeUser(result.User)})
}

// SSOLogin exchanges a trusted identity-broker token for a session.
func (h *AuthHandler) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if h.cfg.IdentityProviderSecret == "" {
		respondError(w, http.StatusNotFound, "SSO login is not configured")
		return
	}

	var req SSOLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	result, err := h.authService.LoginWithIdentityToken(r.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidIdentity):
			respondError(w, http.StatusUnauthorized, "Invalid identity token")
		case errors.Is(err, domain.ErrEmailExists):
			respondError(w, http.StatusBadRequest, "User with this email already exists")
		case errors.Is(err, domain.ErrSessionPersist):
			slog.Error("session save failed during sso login", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create session")
		default:
			slog.Error("sso login failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.setSessionCookie(w, result)
	respondJSON(w, http.StatusOK, AuthResponse{Success: true, User: sanitizeUser(result.User)})
}

// Me returns the current user's fresh row, not the claim snapshot.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.GetClaim(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), claim.Sub)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("current user lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	respondJSON(w, http.StatusOK, sanitizeUser(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.authService.Logout(r.Context(), sessionID); err != nil {
		slog.Error("logout failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	h.clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, result *service.AuthResult) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.SessionID,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
