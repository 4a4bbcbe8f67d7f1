package domain

import (
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeUnprocessable    ErrorCode = "UNPROCESSABLE_ENTITY"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error. Message is for logs; the
// wire body is fixed per Code.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another *DomainError by code, so errors.Is(err, domain.ErrNotFound) works.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrBadRequest    = &DomainError{Code: CodeBadRequest, Message: "bad request"}
	ErrNotFound      = &DomainError{Code: CodeNotFound, Message: "resource not found"}
	ErrUnprocessable = &DomainError{Code: CodeUnprocessable, Message: "unprocessable entity"}
	ErrInternal      = &DomainError{Code: CodeInternal, Message: "internal server error"}
)

func NewBadRequestError(message string, cause error) *DomainError {
	return NewError(CodeBadRequest, message, cause)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewUnprocessableError(message string, cause error) *DomainError {
	return NewError(CodeUnprocessable, message, cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewCategoryNotFoundError(id int64) *DomainError {
	return NewNotFoundError(fmt.Sprintf("category %d not found", id))
}

func NewQuestionNotFoundError(id int64) *DomainError {
	return NewNotFoundError(fmt.Sprintf("question %d not found", id))
}
