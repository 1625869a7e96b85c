package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) GetPlans(c *fiber.Ctx) error {
	plans, err := h.paymentService.GetPlans()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(plans, "Membership plans retrieved successfully"))
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	planID, err := strconv.ParseUint(c.Params("planId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan ID"))
	}

	resp, err := h.paymentService.CreateCheckoutSession(userID, uint(planID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Checkout session created"))
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	signature := c.Get("Stripe-Signature")

	if err := h.paymentService.HandleWebhook(c.Body(), signature); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Webhook processing failed"))
	}

	return c.JSON(models.SuccessResponse(nil, "Webhook processed"))
}

func (h *PaymentHandler) GetPurchaseHistory(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	purchases, err := h.paymentService.GetPurchaseHistory(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(purchases, "Purchase history retrieved successfully"))
}
