package repository

import (
	"context"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByUserID(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
}

type ContactRepository interface {
	Create(ctx context.Context, submission *domain.ContactSubmission) error
	GetAll(ctx context.Context) ([]*domain.ContactSubmission, error)
}

type NewsletterRepository interface {
	Create(ctx context.Context, subscription *domain.NewsletterSubscription) error
	GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscription, error)
}

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Notification NotificationRepository
	Contact      ContactRepository
	Newsletter   NewsletterRepository
}
