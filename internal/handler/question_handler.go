package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

type QuestionHandler struct {
	questionService *service.QuestionService
	validator       *utils.Validator
}

func NewQuestionHandler(questionService *service.QuestionService, validator *utils.Validator) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		validator:       validator,
	}
}

func (h *QuestionHandler) ListByCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid category ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", service.DefaultPageSize)

	result, err := h.questionService.ListByCategory(uint(categoryID), userID, page, pageSize)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(result, "Questions retrieved successfully"))
}

func (h *QuestionHandler) ToggleLike(c *fiber.Ctx) error {
	questionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid question ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	liked, err := h.questionService.ToggleLike(userID, uint(questionID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"liked": liked}, "Like status updated"))
}

func (h *QuestionHandler) MarkCompleted(c *fiber.Ctx) error {
	questionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid question ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.questionService.MarkCompleted(userID, uint(questionID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Question marked as completed"))
}

// Admin endpoints

func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req models.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	question, err := h.questionService.CreateQuestion(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(question, "Question created successfully"))
}

func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid question ID"))
	}

	var req models.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	question, err := h.questionService.UpdateQuestion(uint(questionID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(question, "Question updated successfully"))
}

func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid question ID"))
	}

	if err := h.questionService.DeleteQuestion(uint(questionID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Question deleted successfully"))
}
