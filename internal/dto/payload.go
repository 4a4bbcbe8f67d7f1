package dto

import "strings"

// QuestionRequest is the raw body of POST /questions. It is either a search
// (non-empty searchTerm) or a new question.
// @Description Search term, or the fields of a new question
type QuestionRequest struct {
	SearchTerm string  `json:"searchTerm,omitempty" example:"taj mahal"`
	Question   string  `json:"question,omitempty" example:"In which city is the Taj Mahal?"`
	Answer     string  `json:"answer,omitempty" example:"Agra"`
	Difficulty FlexInt `json:"difficulty,omitempty" swaggertype:"integer" example:"2"`
	Category   FlexInt `json:"category,omitempty" swaggertype:"integer" example:"3"`
}

// QuestionPayload is the decoded form of QuestionRequest: either
// SearchQuestions or CreateQuestion.
type QuestionPayload interface {
	isQuestionPayload()
}

// SearchQuestions asks for every question whose text contains Term.
type SearchQuestions struct {
	Term string
}

// CreateQuestion carries the fields of a new question.
type CreateQuestion struct {
	Question   string
	Answer     string
	Difficulty int
	CategoryID int64
}

func (SearchQuestions) isQuestionPayload() {}
func (CreateQuestion) isQuestionPayload()  {}

// Payload selects the variant. A non-empty search term wins over create fields.
func (r QuestionRequest) Payload() QuestionPayload {
	if r.SearchTerm != "" {
		return SearchQuestions{Term: r.SearchTerm}
	}
	return CreateQuestion{
		Question:   strings.TrimSpace(r.Question),
		Answer:     strings.TrimSpace(r.Answer),
		Difficulty: int(r.Difficulty),
		CategoryID: r.Category.Int64(),
	}
}
