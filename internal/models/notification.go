package models

import (
	"time"
)

// NotificationLog gönderilen push bildirimlerinin kaydını tutar
type NotificationLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Body       string    `json:"body"`
	Recipients int       `json:"recipients"`
	ProviderID string    `json:"provider_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotificationRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}
