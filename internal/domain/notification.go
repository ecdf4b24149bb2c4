package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification types surfaced to clients.
const (
	NotificationBookingReminder  = "booking_reminder"
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationReviewResponse   = "review_response"
)

type Notification struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string         `json:"userId" gorm:"index;size:128;not null"`
	Type      string         `json:"type" gorm:"size:50;not null"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Message   string         `json:"message" gorm:"type:text"`
	Data      datatypes.JSON `json:"data,omitempty"`
	IsRead    bool           `json:"isRead" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"createdAt"`
}
