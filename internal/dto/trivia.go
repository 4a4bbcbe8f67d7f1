package dto

import "trivia-api/internal/domain"

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse converts a domain question to its wire shape
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses converts a list of domain questions. The result is
// never nil so it serializes as [].
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

// CategoryResponse represents a category in the API response
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders categories as the id -> type object the front end expects
func CategoryMap(categories []*domain.Category) map[int64]string {
	out := make(map[int64]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

// QuestionPageResponse is the body of GET /questions
// @Description One page of questions with every category
type QuestionPageResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"totalQuestions"`
	Categories      map[int64]string   `json:"categories"`
	CurrentCategory *string            `json:"currentCategory" swaggertype:"string"`
}

// QuestionListResponse is the body of category listings and search results
type QuestionListResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"totalQuestions"`
	CurrentCategory *string            `json:"currentCategory" swaggertype:"string"`
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Categories map[int64]string `json:"categories"`
}

// QuestionEnvelope wraps a single question
type QuestionEnvelope struct {
	Question QuestionResponse `json:"question"`
}

// QuizCategory identifies the category a quiz is played in. ID 0 means any.
type QuizCategory struct {
	ID   FlexInt `json:"id" swaggertype:"integer"`
	Type string  `json:"type,omitempty"`
}

// QuizRequest represents the body of POST /quizzes
// @Description Request body for the next quiz question
type QuizRequest struct {
	PreviousQuestions []int64      `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}

// QuizResponse carries the next question, or null when none remain
type QuizResponse struct {
	Question *QuestionResponse `json:"question"`
}

// EmptyResponse is the {} body returned by mutations
type EmptyResponse struct{}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}
