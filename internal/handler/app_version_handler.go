package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

type AppVersionHandler struct {
	appVersionService *service.AppVersionService
	validator         *utils.Validator
}

func NewAppVersionHandler(appVersionService *service.AppVersionService, validator *utils.Validator) *AppVersionHandler {
	return &AppVersionHandler{
		appVersionService: appVersionService,
		validator:         validator,
	}
}

func (h *AppVersionHandler) GetByPlatform(c *fiber.Ctx) error {
	platform := c.Query("platform")
	if platform == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("platform query parameter is required"))
	}

	version, err := h.appVersionService.GetByPlatform(platform)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(version, "App version retrieved successfully"))
}

// Admin endpoints

func (h *AppVersionHandler) GetAll(c *fiber.Ctx) error {
	versions, err := h.appVersionService.GetAll()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(versions, "App versions retrieved successfully"))
}

func (h *AppVersionHandler) Upsert(c *fiber.Ctx) error {
	var req models.AppVersionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	version, err := h.appVersionService.Upsert(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(version, "App version saved successfully"))
}

func (h *AppVersionHandler) Delete(c *fiber.Ctx) error {
	versionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid app version ID"))
	}

	if err := h.appVersionService.Delete(uint(versionID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "App version deleted successfully"))
}
