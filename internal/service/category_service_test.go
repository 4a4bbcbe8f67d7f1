package service

import (
	"context"
	"errors"
	"testing"

	"trivia-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("GetAllCategories", ctx).Return([]*domain.Category{science, art}, nil)

		resp, err := NewCategoryService(repo).ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[int64]string{1: "Science", 2: "Art"}, resp.Categories)
	})

	t.Run("empty table", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("GetAllCategories", ctx).Return([]*domain.Category{}, nil)

		_, err := NewCategoryService(repo).ListCategories(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		repo.On("GetAllCategories", ctx).Return(nil, errors.New("db down"))

		_, err := NewCategoryService(repo).ListCategories(ctx)
		assert.ErrorIs(t, err, domain.ErrInternal)
	})
}
