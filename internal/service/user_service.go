package service

import (
	"errors"
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo      *repository.UserRepository
	promotionRepo *repository.PromotionRepository
}

func NewUserService(userRepo *repository.UserRepository, promotionRepo *repository.PromotionRepository) *UserService {
	return &UserService{
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
	}
}

// GetProfile profil bilgisini hesaplanmış premium durumu ile döner
func (s *UserService) GetProfile(userID uint) (*models.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	paid, err := isPaidMember(s.promotionRepo, user, time.Now())
	if err != nil {
		return nil, err
	}

	return &models.UserProfileResponse{
		ID:                  user.ID,
		FullName:            user.FullName,
		Email:               user.Email,
		Culture:             user.Culture,
		MembershipExpiresAt: user.MembershipExpiresAt,
		IsPaidMembership:    paid,
		CreatedAt:           user.CreatedAt,
	}, nil
}

func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	user.FullName = req.FullName
	if req.Culture != "" {
		user.Culture = req.Culture
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) RegisterDeviceToken(userID uint, req models.DeviceTokenRequest) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	return s.userRepo.SaveDeviceToken(&models.DeviceToken{
		UserID:   userID,
		Token:    req.Token,
		Platform: req.Platform,
	})
}
