package models

import (
	"time"
)

type User struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Culture             string     `json:"culture" gorm:"default:'tr-TR'"`
	MembershipExpiresAt *time.Time `json:"membership_expires_at"`
	EventSearchCount    int        `json:"-" gorm:"not null;default:0"`
	EventSearchLastDate *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Admin kullanıcıları ayrı tabloda tutulur, şifre ile giriş yapar
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeviceToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_device_token"`
	Token     string    `json:"token" gorm:"not null;uniqueIndex:idx_user_device_token"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Culture  string `json:"culture"`
}

type DeviceTokenRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android"`
}

// IsPaidMembership her istekte yeniden hesaplanır, veritabanında tutulmaz
type UserProfileResponse struct {
	ID                  uint       `json:"id"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	Culture             string     `json:"culture"`
	MembershipExpiresAt *time.Time `json:"membership_expires_at"`
	IsPaidMembership    bool       `json:"is_paid_membership"`
	CreatedAt           time.Time  `json:"created_at"`
}
