package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campaignlens/internal/model"
)

func question(id, body string, optionTexts ...string) *model.Question {
	q := &model.Question{ID: id, Body: body, Type: model.QuestionTypeSingle}
	for _, text := range optionTexts {
		q.Options = append(q.Options, model.Option{ID: text, Text: text})
	}
	if len(q.Options) == 0 {
		q.Type = model.QuestionTypeText
	}
	return q
}

func TestInferRolesOverrideWinsVerbatim(t *testing.T) {
	qs := []*model.Question{question("q1", "Anything at all")}
	inferRoles(qs, map[string]string{"q1": "timeframe"})
	assert.Equal(t, model.RoleTimeframe, qs[0].Role)
	assert.Equal(t, model.RoleSourceOverride, qs[0].RoleSource)

	// Even an unknown role string is adopted verbatim.
	qs = []*model.Question{question("q1", "Anything at all")}
	inferRoles(qs, map[string]string{"q1": "custom_role"})
	assert.Equal(t, model.QuestionRole("custom_role"), qs[0].Role)
}

func TestInferRolesFromBody(t *testing.T) {
	tests := []struct {
		body string
		want model.QuestionRole
	}{
		{"When do you plan to start the project?", model.RoleTimeframe},
		{"What is your expected timeline?", model.RoleTimeframe},
		{"How should we follow up with you?", model.RoleFollowupIntent},
		{"What kind of project are you considering?", model.RoleProjectType},
		{"Any other comments?", model.RoleOther},
	}
	for _, tt := range tests {
		qs := []*model.Question{question("q1", tt.body)}
		inferRoles(qs, nil)
		assert.Equal(t, tt.want, qs[0].Role, tt.body)
		assert.Equal(t, model.RoleSourceInferred, qs[0].RoleSource)
	}
}

func TestInferRolesFromOptions(t *testing.T) {
	qs := []*model.Question{
		question("q1", "Pick one", "Site visit", "Online meeting", "Not interested"),
	}
	inferRoles(qs, nil)
	assert.Equal(t, model.RoleFollowupIntent, qs[0].Role)
}

func TestQuestionByRoleFirstMatchWins(t *testing.T) {
	qs := []*model.Question{
		{ID: "q1", Role: model.RoleTimeframe},
		{ID: "q2", Role: model.RoleTimeframe},
	}
	assert.Equal(t, "q1", questionByRole(qs, model.RoleTimeframe).ID)
	assert.Nil(t, questionByRole(qs, model.RoleProjectType))
}
