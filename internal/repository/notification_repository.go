package repository

import (
	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateLog(log *models.NotificationLog) error {
	return r.db.Create(log).Error
}

func (r *NotificationRepository) GetLogs() ([]models.NotificationLog, error) {
	var logs []models.NotificationLog
	err := r.db.Order("created_at DESC").Find(&logs).Error
	return logs, err
}
