package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewCategoryNotFoundError(7))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnprocessable)
	assert.EqualError(t, err, "handler: category 7 not found")
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewUnprocessableError("failed to delete question", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.Equal(t, "failed to delete question: connection reset", err.Error())
}
