package analysis

import (
	"fmt"

	"campaignlens/internal/model"
)

const (
	minReliableSample   = 10
	comfortableSample   = 30
	missingRateWarnOver = 0.20
)

// assessDataQuality emits heuristic messages about the dataset. Always at
// least 5 messages, deterministic given (sampleCount, questionCount,
// answerCount).
func assessDataQuality(sampleCount, questionCount, answerCount int) []model.DataQualityMessage {
	msgs := make([]model.DataQualityMessage, 0, 5)

	switch {
	case sampleCount < minReliableSample:
		msgs = append(msgs, model.DataQualityMessage{
			Level:   model.QualityWarning,
			Message: fmt.Sprintf("Only %d submissions; percentages are unstable below %d and should be read as direction, not magnitude.", sampleCount, minReliableSample),
		})
	case sampleCount < comfortableSample:
		msgs = append(msgs, model.DataQualityMessage{
			Level:   model.QualityInfo,
			Message: fmt.Sprintf("%d submissions is workable but below %d; treat small segment differences with caution.", sampleCount, comfortableSample),
		})
	default:
		msgs = append(msgs, model.DataQualityMessage{
			Level:   model.QualityInfo,
			Message: fmt.Sprintf("%d submissions is a solid sample for campaign-level statistics.", sampleCount),
		})
	}

	expected := sampleCount * questionCount
	missingRate := 0.0
	if expected > 0 {
		missingRate = float64(expected-answerCount) / float64(expected)
	}
	if missingRate < 0 {
		missingRate = 0
	}
	level := model.QualityInfo
	if missingRate > missingRateWarnOver {
		level = model.QualityWarning
	}
	msgs = append(msgs, model.DataQualityMessage{
		Level:   level,
		Message: fmt.Sprintf("Missing-answer rate is %.1f%% (%d of %d expected answers present).", missingRate*100, answerCount, expected),
	})

	// Fixed caveats that apply to every survey of this shape.
	msgs = append(msgs,
		model.DataQualityMessage{
			Level:   model.QualityInfo,
			Message: "Crosstab cells thin out quickly when answers spread over many options; cells under 5 respondents are excluded from highlights.",
		},
		model.DataQualityMessage{
			Level:   model.QualityInfo,
			Message: "Respondents who agreed to the survey may skew toward higher interest; absolute follow-up intent is likely overstated.",
		},
		model.DataQualityMessage{
			Level:   model.QualityInfo,
			Message: "Lead scores use only role-tagged questions; submissions skipping those questions score conservatively low.",
		},
	)

	return msgs
}
