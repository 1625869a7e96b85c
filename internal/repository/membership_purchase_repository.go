package repository

import (
	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type MembershipPurchaseRepository struct {
	db *gorm.DB
}

func NewMembershipPurchaseRepository(db *gorm.DB) *MembershipPurchaseRepository {
	return &MembershipPurchaseRepository{db: db}
}

func (r *MembershipPurchaseRepository) Create(purchase *models.MembershipPurchase) error {
	return r.db.Create(purchase).Error
}

func (r *MembershipPurchaseRepository) GetBySessionID(sessionID string) (*models.MembershipPurchase, error) {
	var purchase models.MembershipPurchase
	err := r.db.Where("stripe_session_id = ?", sessionID).First(&purchase).Error
	return &purchase, err
}

func (r *MembershipPurchaseRepository) Update(purchase *models.MembershipPurchase) error {
	return r.db.Save(purchase).Error
}

func (r *MembershipPurchaseRepository) GetUserPurchaseHistory(userID uint) ([]models.MembershipPurchase, error) {
	var purchases []models.MembershipPurchase
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}
