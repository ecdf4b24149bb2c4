package service

import (
	"context"
	"errors"

	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactService struct {
	contactRepo    repository.ContactRepository
	newsletterRepo repository.NewsletterRepository
}

func NewContactService(contactRepo repository.ContactRepository, newsletterRepo repository.NewsletterRepository) *ContactService {
	return &ContactService{
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
	}
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Service *string
	Message *string
}

func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.ContactSubmission, error) {
	submission := &domain.ContactSubmission{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   domain.NormalizeEmail(input.Email),
		Phone:   input.Phone,
		Service: input.Service,
		Message: input.Message,
	}
	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *ContactService) ListSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.contactRepo.GetAll(ctx)
}

// Subscribe is idempotent: a duplicate email returns the existing
// subscription without error.
func (s *ContactService) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscription, error) {
	normalized := domain.NormalizeEmail(email)

	subscription := &domain.NewsletterSubscription{
		ID:    uuid.New(),
		Email: normalized,
	}
	err := s.newsletterRepo.Create(ctx, subscription)
	if err == nil {
		return subscription, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return s.newsletterRepo.GetByEmail(ctx, normalized)
	}
	return nil, err
}
