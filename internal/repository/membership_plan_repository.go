package repository

import (
	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type MembershipPlanRepository struct {
	db *gorm.DB
}

func NewMembershipPlanRepository(db *gorm.DB) *MembershipPlanRepository {
	return &MembershipPlanRepository{db: db}
}

func (r *MembershipPlanRepository) GetAllActive() ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	err := r.db.Where("is_active = ?", true).Order("days ASC").Find(&plans).Error
	return plans, err
}

func (r *MembershipPlanRepository) GetByID(id uint) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
