package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/model"
)

func TestNormalizeChoiceIDs(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, nil},
		{"native array", []any{"a", "b"}, []string{"a", "b"}},
		{"numeric elements", []any{float64(1), float64(2)}, []string{"1", "2"}},
		{"json encoded array", `["a","b"]`, []string{"a", "b"}},
		{"bare scalar string", "a", []string{"a"}},
		{"bare scalar number", float64(7), []string{"7"}},
		{"empty string", "   ", nil},
		{"duplicates dropped", []any{"a", "a", "b"}, []string{"a", "b"}},
		{"malformed json kept as scalar", "[not-json", []string{"[not-json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeChoiceIDs(tt.in))
		})
	}
}

func TestNormalizeChoiceIDsIdempotent(t *testing.T) {
	inputs := []any{
		[]any{"a", "b"},
		`["x","y","z"]`,
		"solo",
		float64(42),
	}
	for _, in := range inputs {
		once := normalizeChoiceIDs(in)
		twice := normalizeChoiceIDs(any(once))
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeAnswerDropsMissingIdentifiers(t *testing.T) {
	assert.Nil(t, normalizeAnswer(map[string]any{"question_id": "q1"}))
	assert.Nil(t, normalizeAnswer(map[string]any{"submission_id": "s1"}))
	assert.Nil(t, normalizeAnswer(map[string]any{}))
}

func TestNormalizeAnswerTextTrimming(t *testing.T) {
	a := normalizeAnswer(map[string]any{
		"submission_id": "s1",
		"question_id":   "q1",
		"text_answer":   "  hello  ",
	})
	require.NotNil(t, a)
	assert.Equal(t, "hello", a.TextAnswer)

	empty := normalizeAnswer(map[string]any{
		"submission_id": "s1",
		"question_id":   "q1",
		"text_answer":   "   ",
	})
	require.NotNil(t, empty)
	assert.Empty(t, empty.TextAnswer)
	assert.False(t, empty.HasContent())
}

func TestNormalizeAnswerFreeTextKey(t *testing.T) {
	// Free text lives under text_answer in the store; records written under
	// any other key carry no content.
	a := normalizeAnswer(map[string]any{
		"submission_id": "sub_001",
		"question_id":   "q_note",
		"text_answer":   "We need to migrate before the fiscal year ends.",
	})
	require.NotNil(t, a)
	assert.Equal(t, "We need to migrate before the fiscal year ends.", a.TextAnswer)
	assert.True(t, a.HasContent())

	stray := normalizeAnswer(map[string]any{
		"submission_id": "sub_001",
		"question_id":   "q_note",
		"text":          "We need to migrate before the fiscal year ends.",
	})
	require.NotNil(t, stray)
	assert.Empty(t, stray.TextAnswer)
	assert.False(t, stray.HasContent())
}

func TestNormalizeQuestion(t *testing.T) {
	q := normalizeQuestion(map[string]any{
		"id":       "q1",
		"order_no": "3",
		"body":     " When do you plan to start? ",
		"type":     "single",
		"options": []any{
			map[string]any{"id": "o1", "text": "within 1 week"},
			map[string]any{"id": "o2", "text": "no plan"},
		},
	})
	require.NotNil(t, q)
	assert.Equal(t, 3, q.OrderNo)
	assert.Equal(t, "When do you plan to start?", q.Body)
	assert.Equal(t, model.QuestionTypeSingle, q.Type)
	assert.Len(t, q.Options, 2)
	assert.Equal(t, "within 1 week", q.OptionText("o1"))
	assert.Equal(t, "o9", q.OptionText("o9")) // unknown id falls back to raw

	assert.Nil(t, normalizeQuestion(map[string]any{"body": "no id"}))
}

func TestNormalizeQuestionUnknownType(t *testing.T) {
	withOptions := normalizeQuestion(map[string]any{
		"id":      "q1",
		"type":    "weird",
		"options": []any{"yes", "no"},
	})
	require.NotNil(t, withOptions)
	assert.Equal(t, model.QuestionTypeSingle, withOptions.Type)

	bare := normalizeQuestion(map[string]any{"id": "q2", "type": "weird"})
	require.NotNil(t, bare)
	assert.Equal(t, model.QuestionTypeText, bare.Type)
}
