package service

import (
	"context"
	"errors"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

type CreateNotificationInput struct {
	UserID  string
	Type    string
	Title   string
	Message string
	Data    []byte
}

func (s *NotificationService) Create(ctx context.Context, input CreateNotificationInput) (*domain.Notification, error) {
	notification := &domain.Notification{
		ID:      uuid.New(),
		UserID:  input.UserID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
		Data:    input.Data,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notificationRepo.GetByUserID(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, userID string) (*domain.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}

// MarkAllRead is idempotent: rows already read are left untouched.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
