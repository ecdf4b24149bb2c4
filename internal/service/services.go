package service

import (
	"github.com/chiroyli/salon-backend/internal/config"
	"github.com/chiroyli/salon-backend/internal/repository"
)

type Services struct {
	Auth         *AuthService
	Notification *NotificationService
	Contact      *ContactService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Session, cfg),
		Notification: NewNotificationService(repos.Notification),
		Contact:      NewContactService(repos.Contact, repos.Newsletter),
	}
}
