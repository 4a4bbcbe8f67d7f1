package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

const (
	questionSchema = "schemas/question.json"
	quizSchema     = "schemas/quiz.json"
)

// Validator checks request bodies against fixed JSON schemas before they are
// decoded into DTOs.
type Validator struct {
	question *jsonschema.Schema
	quiz     *jsonschema.Schema
}

// NewValidator compiles the embedded schemas. It panics if they are invalid.
func NewValidator() *Validator {
	c := jsonschema.NewCompiler()
	return &Validator{
		question: mustCompile(c, questionSchema),
		quiz:     mustCompile(c, quizSchema),
	}
}

func mustCompile(c *jsonschema.Compiler, name string) *jsonschema.Schema {
	raw, err := schemaFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse schema %s: %v", name, err))
	}
	url := "schema://trivia/" + name
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	schema, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return schema
}

// DecodeQuestionPayload validates the body of POST /questions and returns
// the search or create variant.
func (v *Validator) DecodeQuestionPayload(body []byte) (dto.QuestionPayload, error) {
	var req dto.QuestionRequest
	if err := v.decode(v.question, body, &req); err != nil {
		return nil, err
	}
	return req.Payload(), nil
}

// DecodeQuizRequest validates the body of POST /quizzes.
func (v *Validator) DecodeQuizRequest(body []byte) (*dto.QuizRequest, error) {
	var req dto.QuizRequest
	if err := v.decode(v.quiz, body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (v *Validator) decode(schema *jsonschema.Schema, body []byte, dst any) error {
	// UnmarshalJSON keeps numbers as json.Number so integers are checked exactly.
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return domain.NewBadRequestError("request body is not valid JSON", err)
	}
	if err := schema.Validate(doc); err != nil {
		return domain.NewBadRequestError("request body does not match schema", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.NewBadRequestError("request body could not be decoded", err)
	}
	return nil
}

// ParsePage reads the page query parameter. Missing or non-integer values
// fall back to the first page. Integers too large for int saturate so they
// still fail the caller's range check.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(strings.TrimSpace(raw), "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return page
}
