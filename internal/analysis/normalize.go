package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"campaignlens/internal/model"
)

// The store hands over dynamically-shaped records (different clients encoded
// answers differently over time). Everything is coerced into the canonical
// model types here; nothing past this boundary branches on raw shape again.

// normalizeQuestion canonicalizes one raw question record. Returns nil when
// the record has no id, in which case it is dropped from the batch.
func normalizeQuestion(raw map[string]any) *model.Question {
	id := asString(raw["id"])
	if id == "" {
		return nil
	}

	q := &model.Question{
		ID:      id,
		OrderNo: asInt(raw["order_no"]),
		Body:    strings.TrimSpace(asString(raw["body"])),
		Options: normalizeOptions(raw["options"]),
	}

	switch model.QuestionType(asString(raw["type"])) {
	case model.QuestionTypeSingle:
		q.Type = model.QuestionTypeSingle
	case model.QuestionTypeMultiple:
		q.Type = model.QuestionTypeMultiple
	case model.QuestionTypeText:
		q.Type = model.QuestionTypeText
	default:
		// Unknown type: treat option-bearing questions as single choice.
		if len(q.Options) > 0 {
			q.Type = model.QuestionTypeSingle
		} else {
			q.Type = model.QuestionTypeText
		}
	}

	return q
}

func normalizeOptions(v any) []model.Option {
	list, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]model.Option); ok {
			return typed
		}
		return nil
	}

	opts := make([]model.Option, 0, len(list))
	for _, item := range list {
		switch o := item.(type) {
		case map[string]any:
			opt := model.Option{
				ID:   asString(o["id"]),
				Text: strings.TrimSpace(asString(o["text"])),
			}
			if opt.ID == "" {
				opt.ID = opt.Text
			}
			if opt.ID != "" || opt.Text != "" {
				opts = append(opts, opt)
			}
		case string:
			// Bare-string options double as their own id.
			if s := strings.TrimSpace(o); s != "" {
				opts = append(opts, model.Option{ID: s, Text: s})
			}
		}
	}
	if len(opts) == 0 {
		return nil
	}
	return opts
}

// normalizeAnswer canonicalizes one raw answer record. Records missing a
// submission or question identifier return nil and are dropped rather than
// aborting the batch.
func normalizeAnswer(raw map[string]any) *model.Answer {
	subID := asString(raw["submission_id"])
	qID := asString(raw["question_id"])
	if subID == "" || qID == "" {
		return nil
	}

	return &model.Answer{
		SubmissionID: subID,
		QuestionID:   qID,
		ChoiceIDs:    normalizeChoiceIDs(raw["choice_ids"]),
		TextAnswer:   strings.TrimSpace(asString(raw["text_answer"])),
	}
}

// normalizeChoiceIDs flattens any upstream encoding of selected choices into
// a plain string slice: a native array (each element stringified), a
// JSON-encoded array string (parsed then recursed), or a bare scalar (wrapped
// in a single-element slice). Idempotent.
func normalizeChoiceIDs(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		out := make([]string, 0, len(val))
		for _, s := range val {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return dedupe(out)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(asString(item)); s != "" {
				out = append(out, s)
			}
		}
		return dedupe(out)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			var parsed []any
			if err := json.Unmarshal([]byte(s), &parsed); err == nil {
				return normalizeChoiceIDs(parsed)
			}
		}
		return []string{s}
	default:
		if s := asString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// asString stringifies scalar values; maps/slices and nil become "".
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}

// asInt coerces numbers and numeric strings; anything else is 0.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}
