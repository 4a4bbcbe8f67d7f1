package service

import (
	"context"
	"math/rand/v2"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService serves quiz questions
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	selector     domain.QuestionSelector
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	questionRepo domain.QuestionRepository,
	categoryRepo domain.CategoryRepository,
	selector domain.QuestionSelector,
) QuizService {
	if selector == nil {
		selector = RandomSelector{}
	}
	return &quizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		selector:     selector,
	}
}

// NextQuestion picks a question not listed in req.PreviousQuestions. A
// category id of zero or less draws from every category. An exhausted pool
// yields a response with a nil question.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	categoryID := req.QuizCategory.ID.Int64()
	if categoryID > 0 {
		category, err := s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return nil, domain.NewInternalError("failed to get category", err)
		}
		if category == nil {
			return nil, domain.NewCategoryNotFoundError(categoryID)
		}
	} else {
		categoryID = 0
	}

	pool, err := s.questionRepo.ListExcluding(ctx, categoryID, req.PreviousQuestions)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quiz candidates", err)
	}
	if len(pool) == 0 {
		logger.Get().Debug("Quiz pool exhausted",
			zap.Int64("category_id", categoryID),
			zap.Int("previous", len(req.PreviousQuestions)),
		)
		return &dto.QuizResponse{}, nil
	}

	picked := dto.NewQuestionResponse(s.selector.Pick(pool))
	return &dto.QuizResponse{Question: &picked}, nil
}

// RandomSelector picks uniformly at random.
type RandomSelector struct{}

// Pick implements domain.QuestionSelector
func (RandomSelector) Pick(pool []*domain.Question) *domain.Question {
	return pool[rand.IntN(len(pool))]
}
