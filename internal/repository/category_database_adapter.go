package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const categoryColumns = "id, type"

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by id
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)

	var rows []models.Category
	query := "SELECT " + categoryColumns + " FROM categories ORDER BY id"
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

// GetByID returns the category with the given id, or nil when it does not exist
func (r *CategoryDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)

	var row models.Category
	query := exec.Rebind("SELECT " + categoryColumns + " FROM categories WHERE id = ?")
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return toDomainCategory(&row), nil
}

// GetByType returns the first category with the given label, or nil
func (r *CategoryDatabaseAdapter) GetByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)

	var rows []models.Category
	query := exec.Rebind("SELECT " + categoryColumns + " FROM categories WHERE type = ? ORDER BY id")
	if err := exec.SelectContext(ctx, &rows, query, categoryType); err != nil {
		return nil, fmt.Errorf("failed to get category %q: %w", categoryType, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDomainCategory(&rows[0]), nil
}

// SaveCategory persists a new category and sets its generated id
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}
	exec := GetExecutor(ctx, r.db)

	if _, err := exec.ExecContext(ctx, exec.Rebind("INSERT INTO categories (type) VALUES (?)"), category.Type); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	// Not every driver reports LastInsertId, so read the id back.
	var id int64
	if err := exec.GetContext(ctx, &id, exec.Rebind("SELECT MAX(id) FROM categories WHERE type = ?"), category.Type); err != nil {
		return fmt.Errorf("failed to read category id: %w", err)
	}
	category.ID = id
	return nil
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{ID: m.ID, Type: m.Type}
}
