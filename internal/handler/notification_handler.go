package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
	validator           *utils.Validator
}

func NewNotificationHandler(notificationService *service.NotificationService, validator *utils.Validator) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *NotificationHandler) Broadcast(c *fiber.Ctx) error {
	var req models.NotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	log, err := h.notificationService.Broadcast(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(log, "Notification sent"))
}

func (h *NotificationHandler) GetLogs(c *fiber.Ctx) error {
	logs, err := h.notificationService.GetLogs()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(logs, "Notification logs retrieved successfully"))
}
