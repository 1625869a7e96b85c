package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/service"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

// FindMatch cevap kümesine göre event arar. Eşleşme yoksa data boş liste
// olarak döner, 429 sadece günlük kota dolduğunda üretilir.
func (h *EventHandler) FindMatch(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.FindEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.eventService.FindMatch(userID, req.Answers)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(result, "Event search completed"))
}

func (h *EventHandler) RecentEvents(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	events, err := h.eventService.RecentEvents(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, "Recent events retrieved successfully"))
}

func (h *EventHandler) ToggleLike(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	liked, err := h.eventService.ToggleLike(userID, uint(eventID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"liked": liked}, "Like status updated"))
}

// Admin endpoints

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetEvents()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	event, err := h.eventService.UpdateEvent(uint(eventID), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.DeleteEvent(uint(eventID)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully"))
}

func (h *EventHandler) GetEventQuestions(c *fiber.Ctx) error {
	questions, err := h.eventService.GetEventQuestions()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(questions, "Event questions retrieved successfully"))
}

func (h *EventHandler) CreateEventQuestion(c *fiber.Ctx) error {
	var req models.EventQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	question, err := h.eventService.CreateEventQuestion(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(question, "Event question created successfully"))
}

func (h *EventHandler) GetEventAnswers(c *fiber.Ctx) error {
	questionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid question ID"))
	}

	answers, err := h.eventService.GetEventAnswers(uint(questionID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(answers, "Event answers retrieved successfully"))
}

func (h *EventHandler) CreateEventAnswer(c *fiber.Ctx) error {
	var req models.EventQuestionAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	answer, err := h.eventService.CreateEventAnswer(req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(models.SuccessResponse(answer, "Event answer created successfully"))
}
