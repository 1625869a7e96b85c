package repository

import (
	"errors"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type AppVersionRepository struct {
	db *gorm.DB
}

func NewAppVersionRepository(db *gorm.DB) *AppVersionRepository {
	return &AppVersionRepository{db: db}
}

func (r *AppVersionRepository) GetByPlatform(platform string) (*models.AppVersion, error) {
	var version models.AppVersion
	err := r.db.Where("platform = ?", platform).First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *AppVersionRepository) GetAll() ([]models.AppVersion, error) {
	var versions []models.AppVersion
	err := r.db.Find(&versions).Error
	return versions, err
}

func (r *AppVersionRepository) Upsert(version *models.AppVersion) error {
	var existing models.AppVersion
	err := r.db.Where("platform = ?", version.Platform).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(version).Error
	}
	if err != nil {
		return err
	}

	existing.MinimumVersion = version.MinimumVersion
	existing.CurrentVersion = version.CurrentVersion
	existing.ForceUpdate = version.ForceUpdate
	return r.db.Save(&existing).Error
}

func (r *AppVersionRepository) Delete(id uint) error {
	return r.db.Delete(&models.AppVersion{}, id).Error
}
