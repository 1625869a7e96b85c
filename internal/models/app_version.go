package models

import (
	"time"
)

type AppVersion struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Platform       string    `json:"platform" gorm:"unique;not null"`
	MinimumVersion string    `json:"minimum_version" gorm:"not null"`
	CurrentVersion string    `json:"current_version" gorm:"not null"`
	ForceUpdate    bool      `json:"force_update" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AppVersionRequest struct {
	Platform       string `json:"platform" validate:"required,oneof=ios android"`
	MinimumVersion string `json:"minimum_version" validate:"required"`
	CurrentVersion string `json:"current_version" validate:"required"`
	ForceUpdate    bool   `json:"force_update"`
}
