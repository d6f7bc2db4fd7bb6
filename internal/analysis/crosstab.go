package analysis

import (
	"fmt"
	"sort"

	"campaignlens/internal/model"
)

// rolePairs are the crosstabs built per campaign, in fixed order. A pair is
// skipped when either role is absent or both roles resolve to the same
// question.
var rolePairs = [][2]model.QuestionRole{
	{model.RoleTimeframe, model.RoleFollowupIntent},
	{model.RoleProjectType, model.RoleFollowupIntent},
	{model.RoleTimeframe, model.RoleProjectType},
}

const lowSampleCellCount = 5

// answerKeys builds submission -> question -> display key. A question's key
// is its selected option's display text (first selection for multiple
// choice), or the trimmed raw text for free-text questions.
func answerKeys(questions []*model.Question, answers []*model.Answer) map[string]map[string]string {
	byID := make(map[string]*model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	keys := make(map[string]map[string]string)
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		var key string
		if q.Type == model.QuestionTypeText {
			key = a.TextAnswer
		} else if len(a.ChoiceIDs) > 0 {
			key = q.OptionText(a.ChoiceIDs[0])
		}
		if key == "" {
			continue
		}
		if keys[a.SubmissionID] == nil {
			keys[a.SubmissionID] = make(map[string]string)
		}
		if _, exists := keys[a.SubmissionID][q.ID]; !exists {
			keys[a.SubmissionID][q.ID] = key
		}
	}
	return keys
}

// buildCrosstabs cross-tabulates the role-tagged question pairs. A pair with
// zero crossed submissions yields no crosstab at all.
func buildCrosstabs(questions []*model.Question, submissions []model.Submission, keys map[string]map[string]string) []model.Crosstab {
	var tabs []model.Crosstab
	for _, pair := range rolePairs {
		row := questionByRole(questions, pair[0])
		col := questionByRole(questions, pair[1])
		if row == nil || col == nil || row.ID == col.ID {
			continue
		}
		if tab := crossTabulate(row, col, pair, submissions, keys); tab != nil {
			tabs = append(tabs, *tab)
		}
	}
	return tabs
}

func crossTabulate(row, col *model.Question, pair [2]model.QuestionRole, submissions []model.Submission, keys map[string]map[string]string) *model.Crosstab {
	rowTotals := make(map[string]int)
	colTotals := make(map[string]int)
	cellCounts := make(map[string]map[string]int)
	crossed := 0

	for _, sub := range submissions {
		rowKey := keys[sub.ID][row.ID]
		colKey := keys[sub.ID][col.ID]
		if rowKey == "" || colKey == "" {
			continue
		}
		crossed++
		rowTotals[rowKey]++
		colTotals[colKey]++
		if cellCounts[rowKey] == nil {
			cellCounts[rowKey] = make(map[string]int)
		}
		cellCounts[rowKey][colKey]++
	}

	if crossed == 0 {
		return nil
	}

	tab := &model.Crosstab{
		ID:              fmt.Sprintf("ct_%s__%s", pair[0], pair[1]),
		RowQuestionID:   row.ID,
		ColQuestionID:   col.ID,
		RowQuestionBody: row.Body,
		ColQuestionBody: col.Body,
		RowTotals:       rowTotals,
		ColTotals:       colTotals,
		SampleCount:     crossed,
	}

	for _, rowKey := range sortedKeys(rowTotals) {
		for _, colKey := range sortedKeys(cellCounts[rowKey]) {
			count := cellCounts[rowKey][colKey]
			rowPct := safePercentage(count, rowTotals[rowKey])
			colPct := safePercentage(count, colTotals[colKey])
			overallPct := safePercentage(colTotals[colKey], crossed)
			lift := 1.0
			if overallPct > 0 {
				lift = rowPct / overallPct
			}
			tab.Cells = append(tab.Cells, model.CrosstabCell{
				RowKey:     rowKey,
				ColKey:     colKey,
				Count:      count,
				RowPct:     rowPct,
				ColPct:     colPct,
				OverallPct: overallPct,
				Lift:       lift,
			})
			if count < lowSampleCellCount {
				tab.LowSampleWarning = true
			}
		}
	}

	return tab
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
