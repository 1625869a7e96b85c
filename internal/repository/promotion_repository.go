package repository

import (
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// WithTx aynı repository'yi verilen transaction üzerinde çalıştırır
func (r *PromotionRepository) WithTx(tx *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: tx}
}

func (r *PromotionRepository) Create(code *models.PromotionCode) (*models.PromotionCode, error) {
	if err := r.db.Create(code).Error; err != nil {
		return nil, err
	}
	return code, nil
}

func (r *PromotionRepository) GetByCode(code string) (*models.PromotionCode, error) {
	var promo models.PromotionCode
	err := r.db.Where("code = ?", code).First(&promo).Error
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *PromotionRepository) GetAll() ([]models.PromotionCode, error) {
	var codes []models.PromotionCode
	err := r.db.Order("created_at DESC").Find(&codes).Error
	return codes, err
}

func (r *PromotionRepository) Delete(id uint) error {
	return r.db.Delete(&models.PromotionCode{}, id).Error
}

func (r *PromotionRepository) CountRedemptions(promotionCodeID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserPromotionCode{}).
		Where("promotion_code_id = ?", promotionCodeID).
		Count(&count).Error
	return count, err
}

func (r *PromotionRepository) HasRedeemed(userID, promotionCodeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserPromotionCode{}).
		Where("user_id = ? AND promotion_code_id = ?", userID, promotionCodeID).
		Count(&count).Error
	return count > 0, err
}

func (r *PromotionRepository) CreateRedemption(redemption *models.UserPromotionCode) error {
	return r.db.Create(redemption).Error
}

// HasActiveRedemption kullanıcının süresi dolmamış bir promosyon hakkı
// olup olmadığını döner. Premium statüsü hesaplanırken kullanılır.
func (r *PromotionRepository) HasActiveRedemption(userID uint, now time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserPromotionCode{}).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Count(&count).Error
	return count > 0, err
}
