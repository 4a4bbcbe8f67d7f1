// Package seed loads the initial trivia data set into the store.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"

	"trivia-api/configs"
	"trivia-api/internal/domain"

	"go.uber.org/zap"
)

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// LoadDefault reads the data set embedded in the binary.
func LoadDefault() (*DataSet, error) {
	return Load(configs.SeedData, configs.SeedFile)
}

// Load reads and decodes a seed file from fsys.
func Load(fsys fs.FS, path string) (*DataSet, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var data DataSet
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed file %s: %w", path, err)
	}
	return &data, nil
}

// Seeder inserts a DataSet. Rows that already exist are left alone, so a
// run can be repeated safely.
type Seeder struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	tx         domain.TransactionManager
	log        *zap.Logger
}

func NewSeeder(
	categories domain.CategoryRepository,
	questions domain.QuestionRepository,
	tx domain.TransactionManager,
	log *zap.Logger,
) *Seeder {
	return &Seeder{categories: categories, questions: questions, tx: tx, log: log}
}

// Seed writes data inside one transaction. Any failure rolls back the whole
// run.
func (s *Seeder) Seed(ctx context.Context, data *DataSet) (*Result, error) {
	result := &Result{}
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		ids := make(map[string]int64, len(data.Categories))
		for _, name := range data.Categories {
			id, created, err := s.ensureCategory(txCtx, name)
			if err != nil {
				return err
			}
			if created {
				result.CategoriesCreated++
			} else {
				result.CategoriesExisted++
			}
			ids[name] = id
		}

		for i, sq := range data.Questions {
			categoryID, ok := ids[sq.Category]
			if !ok {
				return fmt.Errorf("question %d references unknown category %q", i, sq.Category)
			}
			exists, err := s.questions.Exists(txCtx, sq.Question, categoryID)
			if err != nil {
				return fmt.Errorf("error checking question %q: %w", firstN(sq.Question, 50), err)
			}
			if exists {
				result.QuestionsExisted++
				continue
			}

			q := domain.NewQuestion(sq.Question, sq.Answer, sq.Difficulty, categoryID)
			if err := q.Validate(); err != nil {
				return fmt.Errorf("invalid question %d: %w", i, err)
			}
			if err := s.questions.SaveQuestion(txCtx, q); err != nil {
				return fmt.Errorf("failed to save question %q: %w", firstN(sq.Question, 50), err)
			}
			s.log.Debug("Created question.", zap.Int64("id", q.ID), zap.String("question_preview", firstN(q.Question, 20)))
			result.QuestionsCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Seeding completed",
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("categories_existing", result.CategoriesExisted),
		zap.Int("questions_created", result.QuestionsCreated),
		zap.Int("questions_existing", result.QuestionsExisted),
	)
	return result, nil
}

func (s *Seeder) ensureCategory(ctx context.Context, name string) (int64, bool, error) {
	existing, err := s.categories.GetByType(ctx, name)
	if err != nil {
		return 0, false, fmt.Errorf("error checking category %s: %w", name, err)
	}
	if existing != nil {
		s.log.Info("Category exists.", zap.Int64("id", existing.ID), zap.String("type", existing.Type))
		return existing.ID, false, nil
	}

	category := domain.NewCategory(name)
	if err := category.Validate(); err != nil {
		return 0, false, fmt.Errorf("invalid category %q: %w", name, err)
	}
	if err := s.categories.SaveCategory(ctx, category); err != nil {
		return 0, false, fmt.Errorf("failed to save category %s: %w", name, err)
	}
	s.log.Info("Created category.", zap.Int64("id", category.ID), zap.String("type", category.Type))
	return category.ID, true, nil
}
