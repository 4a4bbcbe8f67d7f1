package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of questions ordered by id, the total count and every category
// @Tags questions
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.Page(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := middleware.ID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateOrSearch godoc
// @Summary Create or search questions
// @Description With a non-empty searchTerm, returns the questions containing it (case-insensitive). Otherwise creates a question from question, answer, difficulty and category.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.QuestionRequest true "Search term or new question"
// @Success 200 {object} dto.QuestionListResponse "search results"
// @Success 201 {object} dto.EmptyResponse "question created"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateOrSearch(c *fiber.Ctx) error {
	payload, err := middleware.QuestionPayload(c)
	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case dto.SearchQuestions:
		resp, err := h.service.SearchQuestions(c.UserContext(), p.Term)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(resp)
	case dto.CreateQuestion:
		if _, err := h.service.CreateQuestion(c.UserContext(), p); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(dto.EmptyResponse{})
	default:
		return domain.NewBadRequestError("unsupported question payload", nil)
	}
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 202 {object} dto.EmptyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := middleware.ID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteQuestion(c.UserContext(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.EmptyResponse{})
}
