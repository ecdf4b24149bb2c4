package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chiroyli/salon-backend/internal/config"
	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult carries the persisted user together with the freshly
// issued session. SessionID is what goes into the client cookie.
type AuthResult struct {
	User      *domain.User
	SessionID string
	Claim     domain.SessionClaim
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)

	// Fast-path duplicate check. The unique index on users.email closes
	// the remaining check-then-insert window below.
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	passwordHash := string(hashedPassword)

	user := &domain.User{
		ID:           domain.NewLocalUserID(time.Now()),
		Email:        email,
		PasswordHash: &passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}

	return s.issueSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// Identity-provider accounts have no password hash; reject with the
	// same error as an unknown email so neither case is distinguishable.
	if !user.IsLocal() {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// LoginWithIdentityToken authenticates a user via an HS256 token minted
// by the trusted identity broker. The user row is upserted keyed on the
// token subject and carries no password hash.
func (s *AuthService) LoginWithIdentityToken(ctx context.Context, rawToken string) (*AuthResult, error) {
	if s.cfg.IdentityProviderSecret == "" {
		return nil, domain.ErrInvalidIdentity
	}

	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.IdentityProviderSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidIdentity
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, domain.ErrInvalidIdentity
	}

	user, err := s.upsertIdentityUser(ctx, sub, domain.NormalizeEmail(email), claims)
	if err != nil {
		return nil, err
	}

	return s.issueSession(ctx, user)
}

func (s *AuthService) upsertIdentityUser(ctx context.Context, sub, email string, claims jwt.MapClaims) (*domain.User, error) {
	firstName := optionalClaim(claims, "first_name")
	lastName := optionalClaim(claims, "last_name")
	profileImageURL := optionalClaim(claims, "profile_image_url")

	user, err := s.userRepo.GetByID(ctx, sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = &domain.User{
			ID:              sub,
			Email:           email,
			FirstName:       firstName,
			LastName:        lastName,
			ProfileImageURL: profileImageURL,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, domain.ErrEmailExists
			}
			return nil, err
		}
		return user, nil
	}

	// Refresh the profile snapshot on every broker login.
	user.Email = email
	user.FirstName = firstName
	user.LastName = lastName
	user.ProfileImageURL = profileImageURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	claim := domain.NewSessionClaim(user, time.Now(), s.cfg.SessionTTL)

	payload, err := json.Marshal(claim)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionPersist, err)
	}

	session := &domain.Session{
		ID:        domain.NewSessionID(),
		UserID:    user.ID,
		Claims:    datatypes.JSON(payload),
		ExpiresAt: time.Unix(claim.ExpiresAt, 0),
	}

	// The session must be durable before the cookie goes out. A failure
	// here intentionally does not roll back a just-created user; the
	// account stays usable through a later login.
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionPersist, err)
	}

	return &AuthResult{
		User:      user,
		SessionID: session.ID,
		Claim:     claim,
	}, nil
}

// ValidateSession resolves a cookie value to its claim. Expired
// sessions are deleted on sight.
func (s *AuthService) ValidateSession(ctx context.Context, sessionID string) (*domain.SessionClaim, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		_ = s.sessionRepo.Delete(ctx, session.ID)
		return nil, domain.ErrSessionExpired
	}

	var claim domain.SessionClaim
	if err := json.Unmarshal(session.Claims, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

func optionalClaim(claims jwt.MapClaims, key string) *string {
	if v, ok := claims[key].(string); ok && v != "" {
		return &v
	}
	return nil
}
