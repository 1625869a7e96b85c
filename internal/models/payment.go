package models

import (
	"time"
)

type MembershipPlan struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Days          int       `json:"days" gorm:"not null"`
	Price         float64   `json:"price" gorm:"not null"`
	StripePriceID string    `json:"-"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MembershipPurchase struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	PlanID          uint      `json:"plan_id" gorm:"not null"`
	StripeSessionID string    `json:"-" gorm:"index"`
	Status          string    `json:"status" gorm:"not null;default:'pending'"`
	Amount          float64   `json:"amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}
