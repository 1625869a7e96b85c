package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

type PromotionHandler struct {
	promotionService *service.PromotionService
	validator        *utils.Validator
}

func NewPromotionHandler(promotionService *service.PromotionService, validator *utils.Validator) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
		validator:        validator,
	}
}

func (h *PromotionHandler) Redeem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.RedeemPromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.promotionService.Redeem(userID, req.Code)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Promotion code redeemed"))
}

// Admin endpoints

func (h *PromotionHandler) CreateCode(c *fiber.Ctx) error {
	var req models.PromotionCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	code, err := h.promotionService.CreateCode(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(code, "Promotion code created successfully"))
}

func (h *PromotionHandler) GetCodes(c *fiber.Ctx) error {
	codes, err := h.promotionService.GetCodes()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(codes, "Promotion codes retrieved successfully"))
}

func (h *PromotionHandler) DeleteCode(c *fiber.Ctx) error {
	codeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid promotion code ID"))
	}

	if err := h.promotionService.DeleteCode(uint(codeID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Promotion code deleted successfully"))
}
