package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/model"
)

func TestInferConfidence(t *testing.T) {
	tests := []struct {
		statement string
		base      model.Confidence
		want      model.Confidence
	}{
		{"share 25.0% (lift 1.20, 3/12)", model.ConfidenceConfirmed, model.ConfidenceHypothesis},
		{"share 35.0% (lift 1.10, 7/20)", model.ConfidenceConfirmed, model.ConfidenceDirectional},
		{"share 100.0% (lift 2.00, 6/6)", model.ConfidenceConfirmed, model.ConfidenceConfirmed},
		{"share 50.0% (lift 1.50, 12/24)", model.ConfidenceConfirmed, model.ConfidenceConfirmed},
		{"share 35.0% (lift 1.10, 7/20)", model.ConfidenceDirectional, model.ConfidenceDirectional},
		{"no ratio in here", model.ConfidenceDirectional, model.ConfidenceDirectional},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, inferConfidence(tt.statement, tt.base), tt.statement)
	}
}

func TestRankCrosstabCells(t *testing.T) {
	tab := model.Crosstab{
		ID:              "ct_timeframe__followup_intent",
		RowQuestionBody: "When do you plan to start?",
		ColQuestionBody: "How should we follow up?",
		RowTotals:       map[string]int{"soon": 20, "later": 20},
		Cells: []model.CrosstabCell{
			{RowKey: "soon", ColKey: "meeting", Count: 15, RowPct: 75, OverallPct: 50, Lift: 1.5},
			{RowKey: "soon", ColKey: "nothing", Count: 3, RowPct: 15, OverallPct: 40, Lift: 0.375}, // below floor
			{RowKey: "later", ColKey: "meeting", Count: 5, RowPct: 25, OverallPct: 50, Lift: 0.5},
			{RowKey: "later", ColKey: "nothing", Count: 14, RowPct: 70, OverallPct: 40, Lift: 1.75},
		},
	}

	ranked := rankCrosstabCells([]model.Crosstab{tab})
	require.Len(t, ranked, 3)
	// lift>1 first, then descending lift.
	assert.Equal(t, 1.75, ranked[0].Lift)
	assert.Equal(t, 1.5, ranked[1].Lift)
	assert.Equal(t, 0.5, ranked[2].Lift)

	assert.Contains(t, ranked[0].Highlight, "14/20")
	assert.Contains(t, ranked[0].Highlight, "lift 1.75")
	assert.Equal(t, model.ConfidenceConfirmed, ranked[0].Confidence)
	// 5/20 is under 10 and under its row total: downgraded.
	assert.Equal(t, model.ConfidenceDirectional, ranked[2].Confidence)
}

func TestRankCrosstabCellsKeepsTopFive(t *testing.T) {
	tab := model.Crosstab{RowTotals: map[string]int{"r": 100}}
	for i := 0; i < 8; i++ {
		tab.Cells = append(tab.Cells, model.CrosstabCell{
			RowKey: "r", ColKey: string(rune('a' + i)), Count: 10 + i, Lift: 1.1 + float64(i)/10,
		})
	}
	ranked := rankCrosstabCells([]model.Crosstab{tab})
	assert.Len(t, ranked, 5)
}

func TestLinkHighlightsPicksBestEvidence(t *testing.T) {
	cand := model.CrosstabHighlight{
		RowQuestionBody: "When do you plan to start?",
		ColQuestionBody: "How should we follow up?",
		RowKey:          "within 1 week",
		ColKey:          "online meeting",
		Count:           10,
		RowTotal:        10,
		Lift:            2,
		Highlight:       `"within 1 week" group's "online meeting" share 100.0% vs overall 50.0% (lift 2.00, 10/10)`,
		Confidence:      model.ConfidenceConfirmed,
	}
	catalog := []model.EvidenceItem{
		{ID: "E1", Source: model.SourceQuestionStats, Title: "When do you plan to start?", ValueText: `top choice "within 1 week" 50.0% (10/20)`},
		{ID: "E2", Source: model.SourceCrosstab, Title: "When do you plan to start? × How should we follow up?", ValueText: cand.Highlight},
		{ID: "E3", Source: model.SourceCrosstab, Title: "unrelated × pair", ValueText: "something else entirely"},
	}

	highlights := linkHighlights([]model.CrosstabHighlight{cand}, catalog)
	require.Len(t, highlights, 1)

	h := highlights[0]
	assert.Equal(t, "H1", h.ID)
	require.Len(t, h.EvidenceIDs, 2)
	assert.Equal(t, "E2", h.EvidenceIDs[0], "ratio+body match must outrank the rest")
	assert.Equal(t, "E1", h.EvidenceIDs[1], "distribution item mentioning the row question")
}

func TestLinkHighlightsFallbackNeverEmpty(t *testing.T) {
	cand := model.CrosstabHighlight{
		RowKey: "r", ColKey: "c", Count: 6, RowTotal: 12, Lift: 1.2,
		Highlight: "statement without matches", Confidence: model.ConfidenceDirectional,
	}
	catalog := []model.EvidenceItem{
		{ID: "E1", Source: model.SourceDerived, Title: "Lead tier P0", ValueText: "2 leads"},
		{ID: "E2", Source: model.SourceDerived, Title: "Lead tier P2", ValueText: "1 lead"},
	}

	highlights := linkHighlights([]model.CrosstabHighlight{cand}, catalog)
	require.Len(t, highlights, 1)
	assert.Equal(t, []string{"E1", "E2"}, highlights[0].EvidenceIDs)
}
