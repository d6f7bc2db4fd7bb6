package analysis

import (
	"math/rand"
	"sort"

	"campaignlens/internal/model"
)

// defaultTextSampleCap bounds how many free-text answers are sampled for
// downstream narrative consumption.
const defaultTextSampleCap = 50

// safePercentage returns part/total*100, defined as 0 when total is 0.
func safePercentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// calcQuestionStats computes per-question response counts, choice
// distributions with topChoices, and sampled text answers.
func calcQuestionStats(questions []*model.Question, answers []*model.Answer, rng *rand.Rand, sampleCap int) []model.QuestionStats {
	byQuestion := make(map[string][]*model.Answer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	stats := make([]model.QuestionStats, 0, len(questions))
	for _, q := range questions {
		qa := byQuestion[q.ID]
		st := model.QuestionStats{
			QuestionID: q.ID,
			OrderNo:    q.OrderNo,
			Body:       q.Body,
			Type:       q.Type,
			Role:       q.Role,
			RoleSource: q.RoleSource,
		}
		for _, a := range qa {
			if a.HasContent() {
				st.ResponseCount++
			}
		}

		if q.Type == model.QuestionTypeText {
			var texts []string
			for _, a := range qa {
				if a.TextAnswer != "" {
					texts = append(texts, a.TextAnswer)
				}
			}
			st.TextAnswerCount = len(texts)
			st.TextSamples = sampleTexts(texts, sampleCap, rng)
		} else {
			st.Distribution = choiceDistribution(q, qa)
			st.TopChoices = topChoices(st.Distribution, st.ResponseCount, 5)
		}

		stats = append(stats, st)
	}
	return stats
}

// choiceDistribution scans every selected choice; a multiple-choice answer
// contributes to each of its selections.
func choiceDistribution(q *model.Question, answers []*model.Answer) map[string]int {
	dist := make(map[string]int)
	for _, a := range answers {
		for _, choiceID := range a.ChoiceIDs {
			dist[q.OptionText(choiceID)]++
		}
	}
	return dist
}

// topChoices returns up to limit choices by count descending, ties broken by
// choice text so output is stable across map iteration orders.
func topChoices(dist map[string]int, totalAnswers, limit int) []model.ChoiceCount {
	choices := make([]model.ChoiceCount, 0, len(dist))
	for choice, count := range dist {
		choices = append(choices, model.ChoiceCount{
			Choice:     choice,
			Count:      count,
			Percentage: safePercentage(count, totalAnswers),
		})
	}
	sort.Slice(choices, func(i, j int) bool {
		if choices[i].Count != choices[j].Count {
			return choices[i].Count > choices[j].Count
		}
		return choices[i].Choice < choices[j].Choice
	})
	if len(choices) > limit {
		choices = choices[:limit]
	}
	return choices
}

// sampleTexts draws a bounded random sample without replacement. The rng is
// scoped to one build, so a seeded builder yields reproducible samples.
func sampleTexts(texts []string, limit int, rng *rand.Rand) []string {
	if len(texts) == 0 {
		return nil
	}
	if len(texts) <= limit {
		out := make([]string, len(texts))
		copy(out, texts)
		return out
	}
	idx := rng.Perm(len(texts))[:limit]
	sort.Ints(idx)
	out := make([]string, 0, limit)
	for _, i := range idx {
		out = append(out, texts[i])
	}
	return out
}
