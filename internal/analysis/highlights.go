package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"campaignlens/internal/model"
)

const (
	highlightMinCellCount = 5
	maxHighlights         = 5
)

// rankCrosstabCells promotes the statistically interesting cells to narrative
// form: cells with count >= 5, lift > 1 ranked first, then lift descending,
// top 5 kept. Ordering is stable over the fixed crosstab/cell order.
func rankCrosstabCells(tabs []model.Crosstab) []model.CrosstabHighlight {
	var cands []model.CrosstabHighlight
	for _, tab := range tabs {
		for _, cell := range tab.Cells {
			if cell.Count < highlightMinCellCount {
				continue
			}
			rowTotal := tab.RowTotals[cell.RowKey]
			statement := fmt.Sprintf("%q group's %q share %.1f%% vs overall %.1f%% (lift %.2f, %d/%d)",
				cell.RowKey, cell.ColKey, cell.RowPct, cell.OverallPct, cell.Lift, cell.Count, rowTotal)

			base := model.ConfidenceDirectional
			if cell.Count >= highlightMinCellCount {
				base = model.ConfidenceConfirmed
			}
			cands = append(cands, model.CrosstabHighlight{
				CrosstabID:      tab.ID,
				RowQuestionBody: tab.RowQuestionBody,
				ColQuestionBody: tab.ColQuestionBody,
				RowKey:          cell.RowKey,
				ColKey:          cell.ColKey,
				Count:           cell.Count,
				RowTotal:        rowTotal,
				Lift:            cell.Lift,
				Highlight:       statement,
				Confidence:      inferConfidence(statement, base),
			})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		iUp, jUp := cands[i].Lift > 1.0, cands[j].Lift > 1.0
		if iUp != jUp {
			return iUp
		}
		return cands[i].Lift > cands[j].Lift
	})
	if len(cands) > maxHighlights {
		cands = cands[:maxHighlights]
	}
	return cands
}

var ratioPattern = regexp.MustCompile(`(\d+)/(\d+)`)

// inferConfidence re-reads the count/rowTotal ratio embedded in a generated
// statement and downgrades the label when the count is thin: under 5 forces
// Hypothesis; under 10 turns Confirmed into Directional unless the cell
// covers its whole row (count == rowTotal).
func inferConfidence(statement string, base model.Confidence) model.Confidence {
	m := ratioPattern.FindStringSubmatch(statement)
	if m == nil {
		return base
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return base
	}
	den, err := strconv.Atoi(m[2])
	if err != nil {
		return base
	}
	if num < 5 {
		return model.ConfidenceHypothesis
	}
	if num < 10 && num < den && base == model.ConfidenceConfirmed {
		return model.ConfidenceDirectional
	}
	return base
}

// Evidence-match weights (documented in the analysis design): question-body
// containment and shared ratio/lift tokens.
const (
	matchBothBodies = 3
	matchOneBody    = 1
	matchRatioToken = 10
	matchLiftToken  = 8
)

// linkHighlights attaches each ranked cell to its best supporting evidence,
// never leaving a highlight without at least one catalog ID.
func linkHighlights(cands []model.CrosstabHighlight, catalog []model.EvidenceItem) []model.Highlight {
	highlights := make([]model.Highlight, 0, len(cands))
	for i, cand := range cands {
		highlights = append(highlights, model.Highlight{
			ID:          fmt.Sprintf("H%d", i+1),
			Title:       fmt.Sprintf("%s × %s", cand.RowKey, cand.ColKey),
			EvidenceIDs: matchEvidence(cand, catalog),
			Statement:   cand.Highlight,
			Confidence:  cand.Confidence,
		})
	}
	return highlights
}

func matchEvidence(cand model.CrosstabHighlight, catalog []model.EvidenceItem) []string {
	ratioToken := fmt.Sprintf("%d/%d", cand.Count, cand.RowTotal)
	liftToken := fmt.Sprintf("lift %.2f", cand.Lift)

	var ids []string

	// Best crosstab-sourced item first.
	bestScore := 0
	bestID := ""
	for _, item := range catalog {
		if item.Source != model.SourceCrosstab {
			continue
		}
		score := bodyScore(item, cand)
		text := item.Title + " " + item.ValueText
		if strings.Contains(text, ratioToken) {
			score += matchRatioToken
		} else if strings.Contains(text, liftToken) {
			score += matchLiftToken
		}
		if score > bestScore {
			bestScore = score
			bestID = item.ID
		}
	}
	if bestID != "" {
		ids = append(ids, bestID)
	}

	// Plus up to one distribution item that mentions either question.
	bestScore = 0
	bestID = ""
	for _, item := range catalog {
		if item.Source != model.SourceQuestionStats {
			continue
		}
		if score := bodyScore(item, cand); score > bestScore {
			bestScore = score
			bestID = item.ID
		}
	}
	if bestID != "" && len(ids) < 2 {
		ids = append(ids, bestID)
	}

	// Guaranteed fallback: the first two catalog entries.
	for _, item := range catalog {
		if len(ids) >= 2 {
			break
		}
		if !contains(ids, item.ID) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// bodyScore rewards evidence whose text mentions the highlight's row/column
// question bodies: +3 for both, +1 for either.
func bodyScore(item model.EvidenceItem, cand model.CrosstabHighlight) int {
	text := item.Title + " " + item.ValueText
	hasRow := cand.RowQuestionBody != "" && strings.Contains(text, cand.RowQuestionBody)
	hasCol := cand.ColQuestionBody != "" && strings.Contains(text, cand.ColQuestionBody)
	switch {
	case hasRow && hasCol:
		return matchBothBodies
	case hasRow || hasCol:
		return matchOneBody
	default:
		return 0
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
