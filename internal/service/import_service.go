package service

import (
	"context"
	"fmt"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"go.uber.org/zap"
)

// ImportFailure records a question that could not be imported.
type ImportFailure struct {
	Index    int
	Question string
	Err      error
}

// ImportReport summarizes a bulk import.
type ImportReport struct {
	Created int
	Skipped int
	Failed  []ImportFailure
}

// ImportService creates questions in bulk
type ImportService interface {
	ImportQuestions(ctx context.Context, items []dto.CreateQuestion) (*ImportReport, error)
}

type importService struct {
	questions    QuestionService
	questionRepo domain.QuestionRepository
	logger       *zap.Logger
}

// NewImportService creates a new instance of importService.
func NewImportService(questions QuestionService, questionRepo domain.QuestionRepository, logger *zap.Logger) ImportService {
	return &importService{
		questions:    questions,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// ImportQuestions creates every item that does not already exist in its
// category. A failing item is reported and the import moves on; only a
// cancelled context stops it.
func (s *importService) ImportQuestions(ctx context.Context, items []dto.CreateQuestion) (*ImportReport, error) {
	start := time.Now()
	s.logger.Info("Starting question import", zap.Int("items", len(items)))

	report := &ImportReport{}
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("import interrupted after %d items: %w", i, err)
		}

		exists, err := s.questionRepo.Exists(ctx, item.Question, item.CategoryID)
		if err != nil {
			s.logger.Error("Failed to check for duplicate", zap.Int("index", i), zap.Error(err))
			report.Failed = append(report.Failed, ImportFailure{Index: i, Question: item.Question, Err: err})
			continue
		}
		if exists {
			s.logger.Info("Question already exists, skipping",
				zap.Int("index", i),
				zap.String("question", item.Question),
				zap.Int64("category_id", item.CategoryID),
			)
			report.Skipped++
			continue
		}

		created, err := s.questions.CreateQuestion(ctx, item)
		if err != nil {
			s.logger.Warn("Failed to import question", zap.Int("index", i), zap.String("question", item.Question), zap.Error(err))
			report.Failed = append(report.Failed, ImportFailure{Index: i, Question: item.Question, Err: err})
			continue
		}
		s.logger.Debug("Imported question", zap.Int("index", i), zap.Int64("question_id", created.ID))
		report.Created++
	}

	s.logger.Info("Question import finished",
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", len(report.Failed)),
		zap.Duration("duration", time.Since(start)),
	)
	return report, nil
}
