package service

import (
	"context"
	"errors"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quizRequest(categoryID int64, previous ...int64) *dto.QuizRequest {
	return &dto.QuizRequest{
		PreviousQuestions: previous,
		QuizCategory:      dto.QuizCategory{ID: dto.FlexInt(categoryID)},
	}
}

func TestNextQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("category scoped", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewQuizService(questionRepo, categoryRepo, firstSelector{})

		categoryRepo.On("GetByID", ctx, int64(1)).Return(science, nil)
		questionRepo.On("ListExcluding", ctx, int64(1), []int64{16, 17}).Return(makeQuestions(18, 18, 1), nil)

		resp, err := svc.NextQuestion(ctx, quizRequest(1, 16, 17))
		require.NoError(t, err)
		require.NotNil(t, resp.Question)
		assert.Equal(t, int64(18), resp.Question.ID)
		assert.Equal(t, int64(1), resp.Question.Category)
	})

	t.Run("any category", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewQuizService(questionRepo, categoryRepo, firstSelector{})

		questionRepo.On("ListExcluding", ctx, int64(0), []int64(nil)).Return(makeQuestions(1, 19, 1), nil)

		resp, err := svc.NextQuestion(ctx, quizRequest(0))
		require.NoError(t, err)
		require.NotNil(t, resp.Question)
		assert.Equal(t, int64(1), resp.Question.ID)
		categoryRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("negative id means any category", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewQuizService(questionRepo, categoryRepo, firstSelector{})

		questionRepo.On("ListExcluding", ctx, int64(0), []int64{3}).Return(makeQuestions(4, 4, 2), nil)

		resp, err := svc.NextQuestion(ctx, quizRequest(-1, 3))
		require.NoError(t, err)
		assert.Equal(t, int64(4), resp.Question.ID)
	})

	t.Run("exhausted pool", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewQuizService(questionRepo, categoryRepo, firstSelector{})

		categoryRepo.On("GetByID", ctx, int64(1)).Return(science, nil)
		questionRepo.On("ListExcluding", ctx, int64(1), []int64{16, 17, 18}).Return([]*domain.Question{}, nil)

		resp, err := svc.NextQuestion(ctx, quizRequest(1, 16, 17, 18))
		require.NoError(t, err)
		assert.Nil(t, resp.Question)
	})

	t.Run("unknown category", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewQuizService(questionRepo, categoryRepo, firstSelector{})

		categoryRepo.On("GetByID", ctx, int64(42)).Return(nil, nil)

		_, err := svc.NextQuestion(ctx, quizRequest(42))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		questionRepo := new(MockQuestionRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := NewQuizService(questionRepo, categoryRepo, firstSelector{})

		questionRepo.On("ListExcluding", ctx, int64(0), []int64(nil)).Return(nil, errors.New("db down"))

		_, err := svc.NextQuestion(ctx, quizRequest(0))
		assert.ErrorIs(t, err, domain.ErrInternal)
	})
}

func TestRandomSelector(t *testing.T) {
	pool := makeQuestions(1, 5, 1)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		picked := RandomSelector{}.Pick(pool)
		require.NotNil(t, picked)
		seen[picked.ID] = true
	}
	assert.Len(t, seen, len(pool))
}

func TestNewQuizService_DefaultSelector(t *testing.T) {
	ctx := context.Background()
	questionRepo := new(MockQuestionRepository)
	svc := NewQuizService(questionRepo, new(MockCategoryRepository), nil)

	questionRepo.On("ListExcluding", ctx, int64(0), []int64(nil)).Return(makeQuestions(7, 7, 1), nil)

	resp, err := svc.NextQuestion(ctx, quizRequest(0))
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Question.ID)
}
