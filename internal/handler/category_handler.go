package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	validator       *utils.Validator
}

func NewCategoryHandler(categoryService *service.CategoryService, validator *utils.Validator) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *CategoryHandler) GetRootCategories(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	categories, err := h.categoryService.GetRootCategories(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(categories, "Categories retrieved successfully"))
}

func (h *CategoryHandler) GetCategoryTree(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid category ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	tree, err := h.categoryService.GetCategoryTree(uint(categoryID), userID, isAdminRequest(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(tree, "Category tree retrieved successfully"))
}

func (h *CategoryHandler) ToggleLike(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid category ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	liked, err := h.categoryService.ToggleLike(userID, uint(categoryID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"liked": liked}, "Like status updated"))
}

func (h *CategoryHandler) RedeemReference(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid category ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.RedeemReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.categoryService.RedeemReference(userID, uint(categoryID), req.Code); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Reference code accepted"))
}

// Admin endpoints

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(category, "Category created successfully"))
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid category ID"))
	}

	var req models.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	category, err := h.categoryService.UpdateCategory(uint(categoryID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(category, "Category updated successfully"))
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(uint(categoryID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Category deleted successfully"))
}
