package analysis

import (
	"fmt"
	"sort"

	"campaignlens/internal/model"
)

// evidenceBuilder assigns sequential E-ids. Scoped to a single build so
// concurrent builds for different campaigns cannot interleave counters.
type evidenceBuilder struct {
	seq   int
	items []model.EvidenceItem
}

func (b *evidenceBuilder) add(item model.EvidenceItem) {
	b.seq++
	item.ID = fmt.Sprintf("E%d", b.seq)
	b.items = append(b.items, item)
}

// buildEvidenceCatalog flattens every numeric claim of the pack into atomic,
// ID-addressable evidence records, in fixed order: question top-choice
// distributions, crosstab highlights, lead-tier distribution, channel
// preferences, then data-quality warnings. Info-level quality messages are
// not catalogued.
func buildEvidenceCatalog(stats []model.QuestionStats, highlights []model.CrosstabHighlight, leads *model.LeadQueue, quality []model.DataQualityMessage, sampleCount int) []model.EvidenceItem {
	b := &evidenceBuilder{}

	for _, st := range stats {
		if len(st.TopChoices) == 0 {
			continue
		}
		top := st.TopChoices[0]
		b.add(model.EvidenceItem{
			Title:     st.Body,
			Metric:    model.MetricDistribution,
			ValueText: fmt.Sprintf("top choice %q %.1f%% (%d/%d)", top.Choice, top.Percentage, top.Count, st.ResponseCount),
			N:         st.ResponseCount,
			Source:    model.SourceQuestionStats,
		})
	}

	for _, h := range highlights {
		b.add(model.EvidenceItem{
			Title:     fmt.Sprintf("%s × %s", h.RowQuestionBody, h.ColQuestionBody),
			Metric:    model.MetricCrosstab,
			ValueText: h.Highlight,
			N:         h.Count,
			Source:    model.SourceCrosstab,
		})
	}

	if leads != nil && leads.Active {
		total := len(leads.Queue)
		for _, tier := range []model.LeadTier{model.TierP0, model.TierP1, model.TierP2, model.TierP3, model.TierP4} {
			count := leads.TierDistribution[string(tier)]
			if count == 0 {
				continue
			}
			b.add(model.EvidenceItem{
				Title:     fmt.Sprintf("Lead tier %s", tier),
				Metric:    model.MetricLeadScore,
				ValueText: fmt.Sprintf("%d leads (%.1f%%)", count, safePercentage(count, total)),
				N:         count,
				Source:    model.SourceDerived,
			})
		}

		for _, ch := range sortedByCount(leads.ChannelDistribution) {
			b.add(model.EvidenceItem{
				Title:     fmt.Sprintf("Preferred channel: %s", ch.key),
				Metric:    model.MetricLeadScore,
				ValueText: fmt.Sprintf("%d respondents (%.1f%%)", ch.count, safePercentage(ch.count, total)),
				N:         ch.count,
				Source:    model.SourceDerived,
			})
		}
	}

	for _, msg := range quality {
		if msg.Level != model.QualityWarning {
			continue
		}
		b.add(model.EvidenceItem{
			Title:     "Data quality warning",
			Metric:    model.MetricDataQuality,
			ValueText: msg.Message,
			N:         sampleCount,
			Source:    model.SourceDataQuality,
		})
	}

	return b.items
}

type keyCount struct {
	key   string
	count int
}

// sortedByCount orders map entries count-descending with a name tie-break so
// catalog order never depends on map iteration.
func sortedByCount(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, c := range m {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}
