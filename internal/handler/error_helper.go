package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
)

// serviceError servis katmanının hata türlerini HTTP status koduna çevirir
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Not found"))
	case errors.Is(err, models.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Forbidden"))
	case errors.Is(err, models.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Daily search limit reached"))
	case errors.Is(err, models.ErrInvalidState):
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Invalid data state"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}

func isAdminRequest(c *fiber.Ctx) bool {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return isAdmin
}
