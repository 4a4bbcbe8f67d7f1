package validation

import (
	"errors"
	"math"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQuestionPayload(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		body    string
		want    dto.QuestionPayload
		wantErr bool
	}{
		{
			name: "search",
			body: `{"searchTerm": "taj mahal"}`,
			want: dto.SearchQuestions{Term: "taj mahal"},
		},
		{
			name: "search wins over create fields",
			body: `{"searchTerm": "title", "question": "q", "answer": "a", "difficulty": 1, "category": 1}`,
			want: dto.SearchQuestions{Term: "title"},
		},
		{
			name: "create with numbers",
			body: `{"question": "Who?", "answer": "Me", "difficulty": 3, "category": 2}`,
			want: dto.CreateQuestion{Question: "Who?", Answer: "Me", Difficulty: 3, CategoryID: 2},
		},
		{
			name: "create with numeric strings",
			body: `{"question": "Who?", "answer": "Me", "difficulty": "1", "category": "4"}`,
			want: dto.CreateQuestion{Question: "Who?", Answer: "Me", Difficulty: 1, CategoryID: 4},
		},
		{
			name: "empty search term falls back to create",
			body: `{"searchTerm": "", "question": "Who?", "answer": "Me", "difficulty": 1, "category": 1}`,
			want: dto.CreateQuestion{Question: "Who?", Answer: "Me", Difficulty: 1, CategoryID: 1},
		},
		{name: "missing answer", body: `{"question": "Who?", "difficulty": 1, "category": 1}`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
		{name: "empty search term alone", body: `{"searchTerm": ""}`, wantErr: true},
		{name: "search term not a string", body: `{"searchTerm": 5}`, wantErr: true},
		{name: "category not numeric", body: `{"question": "q", "answer": "a", "difficulty": 1, "category": "art"}`, wantErr: true},
		{name: "fractional difficulty", body: `{"question": "q", "answer": "a", "difficulty": 1.5, "category": 1}`, wantErr: true},
		{name: "empty question", body: `{"question": "", "answer": "a", "difficulty": 1, "category": 1}`, wantErr: true},
		{name: "not an object", body: `["q"]`, wantErr: true},
		{name: "malformed", body: `{"question":`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.DecodeQuestionPayload([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeQuizRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		req, err := v.DecodeQuizRequest([]byte(`{"previous_questions": [16, 17], "quiz_category": {"id": 1, "type": "Science"}}`))
		require.NoError(t, err)
		assert.Equal(t, []int64{16, 17}, req.PreviousQuestions)
		assert.Equal(t, int64(1), req.QuizCategory.ID.Int64())
	})

	t.Run("string category id", func(t *testing.T) {
		req, err := v.DecodeQuizRequest([]byte(`{"previous_questions": [], "quiz_category": {"id": "0"}}`))
		require.NoError(t, err)
		assert.Empty(t, req.PreviousQuestions)
		assert.Zero(t, req.QuizCategory.ID)
	})

	invalid := map[string]string{
		"missing previous questions": `{"quiz_category": {"id": 1}}`,
		"missing category":           `{"previous_questions": []}`,
		"missing category id":        `{"previous_questions": [], "quiz_category": {"type": "Art"}}`,
		"non integer ids":            `{"previous_questions": ["a"], "quiz_category": {"id": 1}}`,
		"category id word":           `{"previous_questions": [], "quiz_category": {"id": "one"}}`,
		"previous questions object":  `{"previous_questions": {}, "quiz_category": {"id": 1}}`,
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := v.DecodeQuizRequest([]byte(body))
			assert.ErrorIs(t, err, domain.ErrBadRequest)
		})
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 2, ParsePage("2"))
	assert.Equal(t, 0, ParsePage("0"))
	assert.Equal(t, -3, ParsePage("-3"))
	assert.Equal(t, math.MaxInt, ParsePage("99999999999999999999"))
	assert.Equal(t, math.MinInt, ParsePage("-99999999999999999999"))
}
