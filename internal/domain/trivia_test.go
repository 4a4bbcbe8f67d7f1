package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category *Category
		wantErr  bool
	}{
		{name: "valid", category: NewCategory("Science")},
		{name: "trimmed to empty", category: NewCategory("   "), wantErr: true},
		{name: "too long", category: NewCategory(strings.Repeat("a", MaxCategoryTypeLength+1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadRequest)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name     string
		question *Question
		wantMsg  string
	}{
		{name: "valid", question: NewQuestion("Who discovered penicillin?", "Alexander Fleming", 3, 1)},
		{name: "missing question", question: NewQuestion(" ", "Agra", 2, 3), wantMsg: "question is required"},
		{name: "question too long", question: NewQuestion(strings.Repeat("q", MaxQuestionLength+1), "Agra", 2, 3), wantMsg: "question is too long"},
		{name: "missing answer", question: NewQuestion("Q?", "", 2, 3), wantMsg: "answer is required"},
		{name: "answer too long", question: NewQuestion("Q?", strings.Repeat("a", MaxAnswerLength+1), 2, 3), wantMsg: "answer is too long"},
		{name: "missing category", question: NewQuestion("Q?", "A", 2, 0), wantMsg: "category is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.question.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var domainErr *DomainError
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, CodeBadRequest, domainErr.Code)
				assert.Equal(t, tt.wantMsg, domainErr.Message)
			}
		})
	}
}
