package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// CategoryService defines the category operations exposed over HTTP
type CategoryService interface {
	ListCategories(ctx context.Context) (*dto.CategoriesResponse, error)
}

type categoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new instance of categoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// ListCategories implements CategoryService
func (s *categoryService) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list categories", err)
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("no categories")
	}
	return &dto.CategoriesResponse{Categories: dto.CategoryMap(categories)}, nil
}
