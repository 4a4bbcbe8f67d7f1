package service

import (
	"context"
	"errors"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportQuestions(t *testing.T) {
	ctx := context.Background()
	questions := new(MockQuestionService)
	questionRepo := new(MockQuestionRepository)
	svc := NewImportService(questions, questionRepo, logger.Get())

	fresh := dto.CreateQuestion{Question: "Fresh?", Answer: "yes", Difficulty: 1, CategoryID: 1}
	duplicate := dto.CreateQuestion{Question: "Old?", Answer: "yes", Difficulty: 1, CategoryID: 1}
	broken := dto.CreateQuestion{Question: "Broken?", Answer: "no", Difficulty: 1, CategoryID: 99}

	questionRepo.On("Exists", ctx, "Fresh?", int64(1)).Return(false, nil)
	questionRepo.On("Exists", ctx, "Old?", int64(1)).Return(true, nil)
	questionRepo.On("Exists", ctx, "Broken?", int64(99)).Return(false, nil)
	questions.On("CreateQuestion", ctx, fresh).Return(&domain.Question{ID: 20}, nil)
	questions.On("CreateQuestion", ctx, broken).Return(nil, domain.NewCategoryNotFoundError(99))

	report, err := svc.ImportQuestions(ctx, []dto.CreateQuestion{fresh, duplicate, broken})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, 2, report.Failed[0].Index)
	assert.ErrorIs(t, report.Failed[0].Err, domain.ErrNotFound)
}

func TestImportQuestions_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewImportService(new(MockQuestionService), new(MockQuestionRepository), logger.Get())
	report, err := svc.ImportQuestions(ctx, []dto.CreateQuestion{{Question: "q"}})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, report.Created)
}
