package postgres

import (
	"context"
	"time"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/repository"
	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the database with exponential backoff so the
// server survives a database that comes up slightly after it, then
// runs migrations. TranslateError lets callers match duplicate-key
// violations as gorm.ErrDuplicatedKey.
func NewConnection(ctx context.Context, databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB

	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Notification{},
		&domain.ContactSubmission{},
		&domain.NewsletterSubscription{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Notification: NewNotificationRepository(db),
		Contact:      NewContactRepository(db),
		Newsletter:   NewNewsletterRepository(db),
	}
}
