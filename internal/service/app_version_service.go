package service

import (
	"errors"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"gorm.io/gorm"
)

type AppVersionService struct {
	appVersionRepo *repository.AppVersionRepository
}

func NewAppVersionService(appVersionRepo *repository.AppVersionRepository) *AppVersionService {
	return &AppVersionService{appVersionRepo: appVersionRepo}
}

func (s *AppVersionService) GetByPlatform(platform string) (*models.AppVersion, error) {
	version, err := s.appVersionRepo.GetByPlatform(platform)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return version, nil
}

func (s *AppVersionService) GetAll() ([]models.AppVersion, error) {
	return s.appVersionRepo.GetAll()
}

func (s *AppVersionService) Upsert(req models.AppVersionRequest) (*models.AppVersion, error) {
	version := &models.AppVersion{
		Platform:       req.Platform,
		MinimumVersion: req.MinimumVersion,
		CurrentVersion: req.CurrentVersion,
		ForceUpdate:    req.ForceUpdate,
	}
	if err := s.appVersionRepo.Upsert(version); err != nil {
		return nil, err
	}
	return s.appVersionRepo.GetByPlatform(req.Platform)
}

func (s *AppVersionService) Delete(id uint) error {
	return s.appVersionRepo.Delete(id)
}
