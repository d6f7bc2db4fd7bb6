package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/model"
)

func leadFixture() []*model.Question {
	timeframe := question("qt", "When do you plan to start?", "within 1 week", "no plan")
	timeframe.Role = model.RoleTimeframe
	followup := question("qf", "How should we follow up?", "site visit", "online meeting", "not interested")
	followup.Role = model.RoleFollowupIntent
	project := question("qp", "What kind of project?", "infrastructure", "not applicable")
	project.Role = model.RoleProjectType
	return []*model.Question{timeframe, followup, project}
}

func TestScoreLeadsClampedToRange(t *testing.T) {
	qs := leadFixture()
	subs := []model.Submission{{ID: "hot"}, {ID: "cold"}}
	keys := map[string]map[string]string{
		"hot":  {"qt": "within 1 week", "qf": "site visit", "qp": "infrastructure"},
		"cold": {"qt": "no plan", "qf": "not interested", "qp": "not applicable"},
	}

	leads := scoreLeads(qs, subs, keys)
	require.True(t, leads.Active)
	require.Len(t, leads.Queue, 2)

	hot := leads.Queue[0]
	assert.Equal(t, "hot", hot.SubmissionID)
	assert.Equal(t, 100.0, hot.LeadScore)
	assert.Equal(t, model.TierP0, hot.Tier)
	assert.NotEmpty(t, hot.Reasons)

	cold := leads.Queue[1]
	// 0 + (-30) + 0 clamps to 0, never below.
	assert.Equal(t, 0.0, cold.LeadScore)
	assert.Equal(t, model.TierP4, cold.Tier)
	assert.Contains(t, cold.Reasons, "explicitly not interested in follow-up")
}

func TestTierBandsContiguousAndExhaustive(t *testing.T) {
	tests := []struct {
		score float64
		want  model.LeadTier
	}{
		{100, model.TierP0},
		{80, model.TierP0},
		{79.99, model.TierP1},
		{60, model.TierP1},
		{59.99, model.TierP2},
		{40, model.TierP2},
		{39.99, model.TierP3},
		{20, model.TierP3},
		{19.99, model.TierP4},
		{0, model.TierP4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tierFor(tt.score), "score %v", tt.score)
	}
}

func TestNextStepIsPureFunctionOfTier(t *testing.T) {
	for _, tier := range []model.LeadTier{model.TierP0, model.TierP1, model.TierP2, model.TierP3, model.TierP4} {
		assert.NotEmpty(t, nextStepByTier[tier])
	}
}

func TestScoreLeadsInactiveWithoutRequiredRoles(t *testing.T) {
	// Only a timeframe question: scoring must return empty structures.
	timeframe := question("qt", "When do you plan to start?", "within 1 week")
	timeframe.Role = model.RoleTimeframe

	leads := scoreLeads([]*model.Question{timeframe}, []model.Submission{{ID: "s1"}}, nil)
	assert.False(t, leads.Active)
	assert.Empty(t, leads.Queue)
	assert.Empty(t, leads.TierDistribution)
	assert.Empty(t, leads.ChannelDistribution)
}

func TestScoreLeadsMissingAnswersScoreZero(t *testing.T) {
	qs := leadFixture()
	subs := []model.Submission{{ID: "silent"}}

	leads := scoreLeads(qs, subs, map[string]map[string]string{})
	require.Len(t, leads.Queue, 1)
	assert.Equal(t, 0.0, leads.Queue[0].LeadScore)
	assert.Equal(t, model.TierP4, leads.Queue[0].Tier)
}

func TestChannelDistribution(t *testing.T) {
	qs := leadFixture()
	subs := []model.Submission{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
	keys := map[string]map[string]string{
		"s1": {"qf": "online meeting"},
		"s2": {"qf": "online meeting"},
		"s3": {"qf": "site visit"},
	}

	leads := scoreLeads(qs, subs, keys)
	assert.Equal(t, map[string]int{"online meeting": 2, "site visit": 1}, leads.ChannelDistribution)
}
