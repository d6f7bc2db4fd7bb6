package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/model"
)

func TestEvidenceCatalogOrderAndIDs(t *testing.T) {
	stats := []model.QuestionStats{
		{
			QuestionID:    "q1",
			Body:          "When do you plan to start?",
			ResponseCount: 10,
			TopChoices:    []model.ChoiceCount{{Choice: "within 1 week", Count: 6, Percentage: 60}},
		},
		{QuestionID: "q2", Body: "Tell us more"}, // text question: no top choices, no item
	}
	highlights := []model.CrosstabHighlight{
		{
			RowQuestionBody: "When do you plan to start?",
			ColQuestionBody: "How should we follow up?",
			Count:           6,
			Highlight:       `"within 1 week" group's "online meeting" share 100.0% vs overall 50.0% (lift 2.00, 6/6)`,
		},
	}
	leads := &model.LeadQueue{
		Active:              true,
		TierDistribution:    map[string]int{"P0": 2, "P4": 0, "P2": 1},
		ChannelDistribution: map[string]int{"online meeting": 2, "site visit": 1},
		Queue:               make([]model.LeadSignal, 3),
	}
	quality := []model.DataQualityMessage{
		{Level: model.QualityWarning, Message: "Only 3 submissions"},
		{Level: model.QualityInfo, Message: "informational, never catalogued"},
	}

	catalog := buildEvidenceCatalog(stats, highlights, leads, quality, 3)

	// Fixed order: distributions, crosstab highlights, tiers (count>0 only),
	// channels, quality warnings.
	require.Len(t, catalog, 7)
	assert.Equal(t, model.SourceQuestionStats, catalog[0].Source)
	assert.Equal(t, model.SourceCrosstab, catalog[1].Source)
	assert.Equal(t, "Lead tier P0", catalog[2].Title)
	assert.Equal(t, "Lead tier P2", catalog[3].Title)
	assert.Equal(t, "Preferred channel: online meeting", catalog[4].Title)
	assert.Equal(t, "Preferred channel: site visit", catalog[5].Title)
	assert.Equal(t, model.SourceDataQuality, catalog[6].Source)

	seen := make(map[string]bool)
	for i, item := range catalog {
		assert.Equal(t, fmt.Sprintf("E%d", i+1), item.ID)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestEvidenceCatalogSkipsInactiveLeadQueue(t *testing.T) {
	leads := &model.LeadQueue{Active: false}
	catalog := buildEvidenceCatalog(nil, nil, leads, nil, 0)
	assert.Empty(t, catalog)
}
