package postgres

import (
	"context"

	"github.com/chiroyli/salon-backend/internal/domain"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *contactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *contactRepository) GetAll(ctx context.Context) ([]*domain.ContactSubmission, error) {
	var submissions []*domain.ContactSubmission
	err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) *newsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(ctx context.Context, subscription *domain.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscription, error) {
	var subscription domain.NewsletterSubscription
	err := r.db.WithContext(ctx).First(&subscription, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}
