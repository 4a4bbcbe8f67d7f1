package middleware

import (
	"strconv"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	validatedPageKey     = "validated_page"
	validatedIDKey       = "validated_id"
	validatedQuestionKey = "validated_question_payload"
	validatedQuizKey     = "validated_quiz_request"
)

// ValidationMiddleware validates requests before handlers run and stores the
// decoded values in the context locals.
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidatePage parses the page query parameter
func (vm *ValidationMiddleware) ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(validatedPageKey, validation.ParsePage(c.Query("page")))
		return c.Next()
	}
}

// ValidateID parses the integer id path parameter. Anything that is not an
// integer does not name a resource.
func (vm *ValidationMiddleware) ValidateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return domain.NewNotFoundError("invalid id " + c.Params("id"))
		}
		c.Locals(validatedIDKey, id)
		return c.Next()
	}
}

// ValidateQuestionPayload decodes the create-or-search body
func (vm *ValidationMiddleware) ValidateQuestionPayload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, err := vm.validator.DecodeQuestionPayload(c.Body())
		if err != nil {
			return err
		}
		c.Locals(validatedQuestionKey, payload)
		return c.Next()
	}
}

// ValidateQuizRequest decodes the quiz body
func (vm *ValidationMiddleware) ValidateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := vm.validator.DecodeQuizRequest(c.Body())
		if err != nil {
			return err
		}
		c.Locals(validatedQuizKey, req)
		return c.Next()
	}
}

// Page returns the validated page, defaulting to 1
func Page(c *fiber.Ctx) int {
	if page, ok := c.Locals(validatedPageKey).(int); ok {
		return page
	}
	return 1
}

// ID returns the validated path id
func ID(c *fiber.Ctx) (int64, error) {
	if id, ok := c.Locals(validatedIDKey).(int64); ok {
		return id, nil
	}
	return 0, domain.NewInternalError("id was not validated", nil)
}

// QuestionPayload returns the validated create-or-search payload
func QuestionPayload(c *fiber.Ctx) (dto.QuestionPayload, error) {
	if payload, ok := c.Locals(validatedQuestionKey).(dto.QuestionPayload); ok {
		return payload, nil
	}
	return nil, domain.NewInternalError("question payload was not validated", nil)
}

// QuizRequest returns the validated quiz request
func QuizRequest(c *fiber.Ctx) (*dto.QuizRequest, error) {
	if req, ok := c.Locals(validatedQuizKey).(*dto.QuizRequest); ok {
		return req, nil
	}
	return nil, domain.NewInternalError("quiz request was not validated", nil)
}
