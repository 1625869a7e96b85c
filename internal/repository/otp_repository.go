package repository

import (
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type OTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

func (r *OTPRepository) Create(otp *models.EmailOTP) error {
	return r.db.Create(otp).Error
}

// GetLatestActive email için henüz kullanılmamış ve süresi dolmamış en yeni kodu döner
func (r *OTPRepository) GetLatestActive(email string, now time.Time) (*models.EmailOTP, error) {
	var otp models.EmailOTP
	err := r.db.Where("email = ? AND consumed = ? AND expires_at > ?", email, false, now).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPRepository) MarkConsumed(id uint) error {
	return r.db.Model(&models.EmailOTP{}).Where("id = ?", id).Update("consumed", true).Error
}

// InvalidateAll email için bekleyen tüm kodları geçersiz kılar
func (r *OTPRepository) InvalidateAll(email string) error {
	return r.db.Model(&models.EmailOTP{}).Where("email = ? AND consumed = ?", email, false).Update("consumed", true).Error
}
