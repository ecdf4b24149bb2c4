package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a persisted contact-form entry. Submissions are
// append-only; there is no update or delete lifecycle.
type ContactSubmission struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Email       string    `json:"email" gorm:"size:255;not null"`
	Phone       *string   `json:"phone,omitempty" gorm:"size:20"`
	Service     *string   `json:"service,omitempty" gorm:"size:100"`
	Message     *string   `json:"message,omitempty" gorm:"type:text"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"autoCreateTime"`
}

type NewsletterSubscription struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	SubscribedAt time.Time `json:"subscribedAt" gorm:"autoCreateTime"`
}
