package service

import (
	"errors"
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
	"gorm.io/gorm"
)

type PromotionService struct {
	promotionRepo *repository.PromotionRepository
	userRepo      *repository.UserRepository
}

func NewPromotionService(promotionRepo *repository.PromotionRepository, userRepo *repository.UserRepository) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		userRepo:      userRepo,
	}
}

// Redeem promosyon kodunu kullanıcı için bir kez kullanır. Aktif kullanım
// süresi boyunca kullanıcı premium sayılır.
func (s *PromotionService) Redeem(userID uint, code string) (*models.RedeemPromotionResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	promo, err := s.promotionRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	if !promo.IsActive || now.Before(promo.ValidFrom) || now.After(promo.ExpiresAt) {
		return nil, models.ErrForbidden
	}

	redeemed, err := s.promotionRepo.HasRedeemed(userID, promo.ID)
	if err != nil {
		return nil, err
	}
	if redeemed {
		return nil, models.ErrForbidden
	}

	if promo.UsageLimit > 0 {
		used, err := s.promotionRepo.CountRedemptions(promo.ID)
		if err != nil {
			return nil, err
		}
		if used >= int64(promo.UsageLimit) {
			return nil, models.ErrForbidden
		}
	}

	premiumUntil := now.AddDate(0, 0, promo.MembershipDays)
	redemption := &models.UserPromotionCode{
		UserID:          userID,
		PromotionCodeID: promo.ID,
		ExpiresAt:       premiumUntil,
	}
	if err := s.promotionRepo.CreateRedemption(redemption); err != nil {
		return nil, err
	}

	return &models.RedeemPromotionResponse{PremiumUntil: premiumUntil}, nil
}

// Admin CRUD

func (s *PromotionService) CreateCode(req models.PromotionCodeRequest) (*models.PromotionCode, error) {
	code := req.Code
	if code == "" {
		code = utils.GenerateRandomString(8)
	}

	promo := &models.PromotionCode{
		Code:           code,
		MembershipDays: req.MembershipDays,
		UsageLimit:     req.UsageLimit,
		ValidFrom:      req.ValidFrom,
		ExpiresAt:      req.ExpiresAt,
		IsActive:       true,
	}
	return s.promotionRepo.Create(promo)
}

func (s *PromotionService) GetCodes() ([]models.PromotionCode, error) {
	return s.promotionRepo.GetAll()
}

func (s *PromotionService) DeleteCode(id uint) error {
	return s.promotionRepo.Delete(id)
}
