package service

import (
	"context"
	"errors"
	"math"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines the question operations exposed over HTTP
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	GetQuestion(ctx context.Context, id int64) (*dto.QuestionEnvelope, error)
	ListByCategory(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error)
	SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error)
	CreateQuestion(ctx context.Context, in dto.CreateQuestion) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

type questionService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	txManager    domain.TransactionManager
	perPage      int
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(
	questionRepo domain.QuestionRepository,
	categoryRepo domain.CategoryRepository,
	txManager domain.TransactionManager,
	cfg config.PaginationConfig,
) QuestionService {
	perPage := cfg.QuestionsPerPage
	if perPage <= 0 {
		perPage = 10
	}
	return &questionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		perPage:      perPage,
	}
}

// ListQuestions implements QuestionService. The page, the total and the
// categories are fetched concurrently.
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	if page < 1 {
		return nil, domain.NewNotFoundError("page must be positive")
	}
	if page-1 > math.MaxInt/s.perPage {
		return nil, domain.NewNotFoundError("page out of range")
	}

	var (
		questions  []*domain.Question
		total      int
		categories []*domain.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questionRepo.ListPage(gctx, s.perPage, (page-1)*s.perPage)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.questionRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.GetAllCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}

	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("no categories")
	}
	if len(questions) == 0 && page != 1 {
		return nil, domain.NewNotFoundError("page out of range")
	}

	return &dto.QuestionPageResponse{
		Questions:      dto.NewQuestionResponses(questions),
		TotalQuestions: total,
		Categories:     dto.CategoryMap(categories),
	}, nil
}

// GetQuestion implements QuestionService
func (s *questionService) GetQuestion(ctx context.Context, id int64) (*dto.QuestionEnvelope, error) {
	question, err := s.findQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionEnvelope{Question: dto.NewQuestionResponse(question)}, nil
}

// ListByCategory implements QuestionService
func (s *questionService) ListByCategory(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list questions of category", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("category has no questions")
	}

	current := category.Type
	return &dto.QuestionListResponse{
		Questions:       dto.NewQuestionResponses(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: &current,
	}, nil
}

// SearchQuestions implements QuestionService
func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, domain.NewInternalError("failed to search questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("no question matches the search term")
	}

	return &dto.QuestionListResponse{
		Questions:      dto.NewQuestionResponses(questions),
		TotalQuestions: len(questions),
	}, nil
}

// CreateQuestion implements QuestionService
func (s *questionService) CreateQuestion(ctx context.Context, in dto.CreateQuestion) (*domain.Question, error) {
	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(in.CategoryID)
	}

	question := domain.NewQuestion(in.Question, in.Answer, in.Difficulty, category.ID)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.questionRepo.SaveQuestion(txCtx, question)
	})
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("question_id", question.ID),
		zap.Int64("category_id", question.CategoryID),
	)
	return question, nil
}

// DeleteQuestion implements QuestionService
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) error {
	if _, err := s.findQuestion(ctx, id); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.questionRepo.DeleteQuestion(txCtx, id)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if err != nil {
		return domain.NewUnprocessableError("failed to delete question", err)
	}

	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	return nil
}

func (s *questionService) findQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return question, nil
}
