package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "batch_add_questions FILE",
	Short:        "Import questions from a JSON file",
	Long:         "Reads a JSON array of {question, answer, difficulty, category} objects and creates each one that is not already stored.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0])
	},
}

// readItems validates every element of the file the same way the HTTP API
// validates POST /questions. Search entries are rejected.
func readItems(v *validation.Validator, path string) ([]dto.CreateQuestion, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("%s must hold a JSON array: %w", path, err)
	}

	items := make([]dto.CreateQuestion, 0, len(elements))
	for i, element := range elements {
		payload, err := v.DecodeQuestionPayload(element)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		create, ok := payload.(dto.CreateQuestion)
		if !ok {
			return nil, fmt.Errorf("item %d: search entries cannot be imported", i)
		}
		items = append(items, create)
	}
	return items, nil
}

func run(ctx context.Context, path string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	items, err := readItems(validation.NewValidator(), path)
	if err != nil {
		return err
	}
	log.Info("Loaded import file", zap.String("path", path), zap.Int("items", len(items)))

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	questionRepo := repository.NewQuestionDatabaseAdapter(db)
	categoryRepo := repository.NewCategoryDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, txManager, cfg.Pagination)
	importService := service.NewImportService(questionService, questionRepo, log)

	report, err := importService.ImportQuestions(ctx, items)
	if report != nil {
		fmt.Printf("created: %d, skipped: %d, failed: %d\n", report.Created, report.Skipped, len(report.Failed))
		for _, f := range report.Failed {
			fmt.Printf("  item %d %q: %v\n", f.Index, f.Question, f.Err)
		}
	}
	if err != nil {
		return err
	}
	if len(report.Failed) > 0 {
		return fmt.Errorf("%d of %d questions failed to import", len(report.Failed), len(items))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
