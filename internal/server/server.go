// Package server assembles the HTTP application from a database handle.
package server

import (
	"trivia-api/internal/config"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"
	"trivia-api/internal/util"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1.0"

// NewApp wires repositories, services and handlers on top of db and returns
// a ready to serve Fiber application.
func NewApp(cfg *config.Config, db *sqlx.DB) *fiber.App {
	questionRepo := repository.NewQuestionDatabaseAdapter(db)
	categoryRepo := repository.NewCategoryDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	questionService := service.NewQuestionService(questionRepo, categoryRepo, txManager, cfg.Pagination)
	categoryService := service.NewCategoryService(categoryRepo)
	quizService := service.NewQuizService(questionRepo, categoryRepo, nil)

	questionHandler := handler.NewQuestionHandler(questionService)
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	quizHandler := handler.NewQuizHandler(quizService)
	vm := middleware.NewValidationMiddleware(validation.NewValidator())

	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New(requestid.Config{
		Generator:  util.NewULID,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.AccessControl())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,PUT,POST,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
		MaxAge:       300,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())

	app.Get("/", handler.Liveness)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group(BasePath)
	api.Get("/questions", vm.ValidatePage(), questionHandler.ListQuestions)
	api.Post("/questions", vm.ValidateQuestionPayload(), questionHandler.CreateOrSearch)
	api.Get("/questions/:id", vm.ValidateID(), questionHandler.GetQuestion)
	api.Delete("/questions/:id", vm.ValidateID(), questionHandler.DeleteQuestion)
	api.Get("/categories", categoryHandler.ListCategories)
	api.Get("/categories/:id/questions", vm.ValidateID(), categoryHandler.ListQuestionsByCategory)
	api.Post("/quizzes", vm.ValidateQuizRequest(), quizHandler.NextQuestion)

	return app
}
