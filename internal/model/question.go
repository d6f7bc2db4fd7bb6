package model

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeSingle   QuestionType = "single"   // one choice
	QuestionTypeMultiple QuestionType = "multiple" // many choices
	QuestionTypeText     QuestionType = "text"     // free text
)

// QuestionRole is the semantic role a question plays in analysis
type QuestionRole string

const (
	RoleTimeframe      QuestionRole = "timeframe"
	RoleProjectType    QuestionRole = "project_type"
	RoleFollowupIntent QuestionRole = "followup_intent"
	RoleOther          QuestionRole = "other"
)

// RoleSource records how a question's role was decided
type RoleSource string

const (
	RoleSourceOverride RoleSource = "override"
	RoleSourceInferred RoleSource = "inferred"
)

// Option is one selectable choice of a single/multiple question
type Option struct {
	ID   string `json:"id" bson:"id"`
	Text string `json:"text" bson:"text"`
}

// Question is the canonical, role-tagged question record.
// Immutable once normalized within a build.
type Question struct {
	ID         string       `json:"id"`
	OrderNo    int          `json:"orderNo"`
	Body       string       `json:"body"`
	Type       QuestionType `json:"type"`
	Options    []Option     `json:"options,omitempty"`
	Role       QuestionRole `json:"role"`
	RoleSource RoleSource   `json:"roleSource"`
}

// OptionText returns the display text for a choice id, falling back to the
// raw id when the option list does not contain it.
func (q *Question) OptionText(choiceID string) string {
	for _, opt := range q.Options {
		if opt.ID == choiceID {
			return opt.Text
		}
	}
	return choiceID
}

// Answer is the canonical answer record: one submission's response to one
// question. ChoiceIDs is always a flat string slice regardless of how the
// source encoded it; TextAnswer is trimmed and empty when absent.
type Answer struct {
	SubmissionID string   `json:"submissionId"`
	QuestionID   string   `json:"questionId"`
	ChoiceIDs    []string `json:"choiceIds,omitempty"`
	TextAnswer   string   `json:"textAnswer,omitempty"`
}

// HasContent reports whether the answer carries any response data.
func (a *Answer) HasContent() bool {
	return len(a.ChoiceIDs) > 0 || a.TextAnswer != ""
}
