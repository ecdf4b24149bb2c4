package postgres

import (
	"context"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips is_read for the user's own notification and returns
// the updated row. gorm.ErrRecordNotFound when the id does not exist
// or belongs to another user.
func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, userID string) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := r.db.WithContext(ctx).Model(&notification).Update("is_read", true).Error; err != nil {
			return nil, err
		}
	}
	return &notification, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
