package models

import (
	"time"
)

type PromotionCode struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Code           string    `json:"code" gorm:"unique;not null"`
	MembershipDays int       `json:"membership_days" gorm:"not null"`
	UsageLimit     int       `json:"usage_limit" gorm:"not null;default:0"`
	ValidFrom      time.Time `json:"valid_from"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserPromotionCode bir kodun kullanıcı tarafından kullanımını tutar.
// ExpiresAt dolana kadar kullanıcıya premium statüsü kazandırır.
type UserPromotionCode struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_promotion"`
	PromotionCodeID uint      `json:"promotion_code_id" gorm:"not null;uniqueIndex:idx_user_promotion"`
	ExpiresAt       time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
}

type PromotionCodeRequest struct {
	Code           string    `json:"code"`
	MembershipDays int       `json:"membership_days" validate:"required,min=1"`
	UsageLimit     int       `json:"usage_limit" validate:"min=0"`
	ValidFrom      time.Time `json:"valid_from"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type RedeemPromotionRequest struct {
	Code string `json:"code" validate:"required"`
}

type RedeemPromotionResponse struct {
	PremiumUntil time.Time `json:"premium_until"`
}
