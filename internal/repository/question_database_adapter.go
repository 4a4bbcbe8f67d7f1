package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = "id, question, answer, difficulty, category_id"

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// ListPage implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListPage(ctx context.Context, limit, offset int) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	query := "SELECT " + questionColumns + " FROM questions ORDER BY id"
	var args []interface{}
	if a.db.DriverName() == "oracle" {
		query += " OFFSET ? ROWS FETCH NEXT ? ROWS ONLY"
		args = []interface{}{offset, limit}
	} else {
		query += " LIMIT ? OFFSET ?"
		args = []interface{}{limit, offset}
	}

	questions, err := a.selectQuestions(ctx, exec, exec.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions (limit %d, offset %d): %w", limit, offset, err)
	}
	return questions, nil
}

// Count implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Count(ctx context.Context) (int, error) {
	exec := GetExecutor(ctx, a.db)

	var total int
	if err := exec.GetContext(ctx, &total, "SELECT COUNT(*) FROM questions"); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return total, nil
}

// GetByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Question
	query := exec.Rebind("SELECT " + questionColumns + " FROM questions WHERE id = ?")
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// ListByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	query := exec.Rebind("SELECT " + questionColumns + " FROM questions WHERE category_id = ? ORDER BY id")
	questions, err := a.selectQuestions(ctx, exec, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	return questions, nil
}

// Search implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	query := exec.Rebind("SELECT " + questionColumns + ` FROM questions WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\' ORDER BY id`)
	questions, err := a.selectQuestions(ctx, exec, query, "%"+likeEscaper.Replace(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// ListExcluding implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListExcluding(ctx context.Context, categoryID int64, excludeIDs []int64) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	if categoryID > 0 {
		conditions = append(conditions, "category_id = ?")
		args = append(args, categoryID)
	}
	// sqlx.In rejects empty slices, so the clause is only added when needed.
	if len(excludeIDs) > 0 {
		conditions = append(conditions, "id NOT IN (?)")
		args = append(args, excludeIDs)
	}

	query := "SELECT " + questionColumns + " FROM questions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	if len(excludeIDs) > 0 {
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to expand excluded ids: %w", err)
		}
	}

	questions, err := a.selectQuestions(ctx, exec, exec.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}
	return questions, nil
}

// Exists implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Exists(ctx context.Context, question string, categoryID int64) (bool, error) {
	exec := GetExecutor(ctx, a.db)

	var count int
	query := exec.Rebind("SELECT COUNT(*) FROM questions WHERE question = ? AND category_id = ?")
	if err := exec.GetContext(ctx, &count, query, question, categoryID); err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return count > 0, nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	exec := GetExecutor(ctx, a.db)
	row := toModelQuestion(question)

	query := exec.Rebind(`INSERT INTO questions (question, answer, difficulty, category_id) VALUES (?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query, row.Question, row.Answer, row.Difficulty, row.CategoryID); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	// go-ora does not implement LastInsertId, so the id is read back.
	var id int64
	query = exec.Rebind("SELECT MAX(id) FROM questions WHERE question = ? AND category_id = ?")
	if err := exec.GetContext(ctx, &id, query, row.Question, row.CategoryID); err != nil {
		return fmt.Errorf("failed to read question id: %w", err)
	}
	question.ID = id
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)

	result, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM questions WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for question %d: %w", id, err)
	}
	if n == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

func (a *QuestionDatabaseAdapter) selectQuestions(ctx context.Context, exec DBTX, query string, args ...interface{}) ([]*domain.Question, error) {
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Difficulty: m.Difficulty,
		CategoryID: m.CategoryID,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		CategoryID: q.CategoryID,
	}
}
