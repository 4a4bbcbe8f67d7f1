package domain

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	MaxCategoryTypeLength = 100
	MaxQuestionLength     = 250
	MaxAnswerLength       = 250
)

// Category is a labeled grouping of questions. Its questions are not loaded
// with it; use QuestionRepository.ListByCategory.
type Category struct {
	ID   int64
	Type string
}

// NewCategory creates a new Category instance
func NewCategory(categoryType string) *Category {
	return &Category{Type: strings.TrimSpace(categoryType)}
}

// Validate validates the category
func (c *Category) Validate() error {
	if c.Type == "" {
		return NewBadRequestError("category type is required", nil)
	}
	if utf8.RuneCountInString(c.Type) > MaxCategoryTypeLength {
		return NewBadRequestError("category type is too long", nil)
	}
	return nil
}

// Question is a single quiz item owned by exactly one category.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Difficulty int
	CategoryID int64
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, difficulty int, categoryID int64) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
		CategoryID: categoryID,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	switch {
	case strings.TrimSpace(q.Question) == "":
		return NewBadRequestError("question is required", nil)
	case utf8.RuneCountInString(q.Question) > MaxQuestionLength:
		return NewBadRequestError("question is too long", nil)
	case strings.TrimSpace(q.Answer) == "":
		return NewBadRequestError("answer is required", nil)
	case utf8.RuneCountInString(q.Answer) > MaxAnswerLength:
		return NewBadRequestError("answer is too long", nil)
	case q.CategoryID <= 0:
		return NewBadRequestError("category is required", nil)
	}
	return nil
}

// CategoryRepository defines the interface for category persistence.
// Lookups return (nil, nil) when nothing matches.
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetByType(ctx context.Context, categoryType string) (*Category, error)
	SaveCategory(ctx context.Context, category *Category) error
}

// QuestionRepository defines the interface for question persistence.
// Every list is ordered by ascending id.
type QuestionRepository interface {
	ListPage(ctx context.Context, limit, offset int) ([]*Question, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*Question, error)
	// Search matches term as a case-insensitive substring of the question text.
	Search(ctx context.Context, term string) ([]*Question, error)
	// ListExcluding returns questions whose id is not in excludeIDs, limited to
	// categoryID when it is positive.
	ListExcluding(ctx context.Context, categoryID int64, excludeIDs []int64) ([]*Question, error)
	Exists(ctx context.Context, question string, categoryID int64) (bool, error)
	SaveQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside a single store transaction, committing
// when fn returns nil and rolling back otherwise.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuestionSelector picks the next quiz question from a non-empty pool.
type QuestionSelector interface {
	Pick(pool []*Question) *Question
}
