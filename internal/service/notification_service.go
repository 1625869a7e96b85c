package service

import (
	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"github.com/berkeoz/quizpark-backend/pkg/push"
	"go.uber.org/zap"
)

type NotificationService struct {
	pushService      *push.PushService
	userRepo         *repository.UserRepository
	notificationRepo *repository.NotificationRepository
	logger           *zap.Logger
}

func NewNotificationService(
	pushService *push.PushService,
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		pushService:      pushService,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Broadcast kayıtlı tüm cihazlara bildirim gönderir ve kaydını tutar
func (s *NotificationService) Broadcast(req models.NotificationRequest) (*models.NotificationLog, error) {
	tokens, err := s.userRepo.GetAllDeviceTokens()
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, models.ErrNotFound
	}

	providerID, err := s.pushService.Send(req.Title, req.Body, tokens)
	if err != nil {
		s.logger.Error("push broadcast failed", zap.Error(err))
		return nil, err
	}

	log := &models.NotificationLog{
		Title:      req.Title,
		Body:       req.Body,
		Recipients: len(tokens),
		ProviderID: providerID,
	}
	if err := s.notificationRepo.CreateLog(log); err != nil {
		return nil, err
	}

	s.logger.Info("push broadcast sent",
		zap.Int("recipients", len(tokens)),
		zap.String("provider_id", providerID),
	)
	return log, nil
}

func (s *NotificationService) GetLogs() ([]models.NotificationLog, error) {
	return s.notificationRepo.GetLogs()
}
