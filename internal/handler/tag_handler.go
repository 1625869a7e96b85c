package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

type TagHandler struct {
	tagService *service.TagService
	validator  *utils.Validator
}

func NewTagHandler(tagService *service.TagService, validator *utils.Validator) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		validator:  validator,
	}
}

func (h *TagHandler) GetAll(c *fiber.Ctx) error {
	tags, err := h.tagService.GetAll()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(tags, "Tags retrieved successfully"))
}

func (h *TagHandler) GetRandomTag(c *fiber.Ctx) error {
	tag, err := h.tagService.RandomTag()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(tag, "Random tag retrieved successfully"))
}

// Admin endpoints

func (h *TagHandler) CreateTag(c *fiber.Ctx) error {
	var req models.TagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	tag, err := h.tagService.CreateTag(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(tag, "Tag created successfully"))
}

func (h *TagHandler) UpdateTag(c *fiber.Ctx) error {
	tagID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid tag ID"))
	}

	var req models.TagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	tag, err := h.tagService.UpdateTag(uint(tagID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(tag, "Tag updated successfully"))
}

func (h *TagHandler) DeleteTag(c *fiber.Ctx) error {
	tagID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid tag ID"))
	}

	if err := h.tagService.DeleteTag(uint(tagID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Tag deleted successfully"))
}
