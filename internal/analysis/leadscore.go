package analysis

import (
	"fmt"
	"sort"
	"strings"

	"campaignlens/internal/model"
)

// scoreRule is one (keyword, weight) entry of a sub-score table, evaluated
// top-to-bottom with first match winning. Tables are plain data so weights
// and term lists can be retuned without touching control flow.
type scoreRule struct {
	term   string
	weight float64
}

// timingScores rank how soon the respondent plans to start. Max 30.
var timingScores = []scoreRule{
	{"within 1 week", 30},
	{"1 week", 30},
	{"within 1 month", 25},
	{"1 month", 25},
	{"within 3 months", 20},
	{"3 months", 20},
	{"within 6 months", 15},
	{"6 months", 15},
	{"this year", 10},
	{"within a year", 10},
	{"undecided", 5},
	{"no plan", 0},
}

// followupScores rank the commitment level of the requested channel. Max 40;
// explicit disinterest is a hard penalty.
var followupScores = []scoreRule{
	{"not interested", -30},
	{"no follow", -30},
	{"site visit", 40},
	{"visit", 40},
	{"online meeting", 30},
	{"video call", 30},
	{"phone", 20},
	{"call", 20},
	{"email", 10},
	{"send materials", 10},
}

// projectTypeScores weight project topics by expected deal value. Max 30.
var projectTypeScores = []scoreRule{
	{"not applicable", 0},
	{"none", 0},
	{"infrastructure", 30},
	{"security", 30},
	{"data platform", 25},
	{"ai", 25},
	{"cloud migration", 20},
	{"cloud", 20},
	{"web", 15},
	{"app", 15},
	{"other", 10},
}

// Reason thresholds: a sub-score crossing one of these adds a human-readable
// justification to the signal.
const (
	timingReasonMin   = 20
	followupReasonMin = 30
	projectReasonMin  = 25
)

// nextStepByTier is the fixed SLA string per tier.
var nextStepByTier = map[model.LeadTier]string{
	model.TierP0: "Sales contact within 24 hours",
	model.TierP1: "Sales contact within 48 hours",
	model.TierP2: "Nurture email within 1 week",
	model.TierP3: "Add to monthly newsletter",
	model.TierP4: "No outreach; keep on record",
}

// scoreLeads produces the per-submission lead queue. Scoring activates only
// when distinct timeframe and followup_intent questions exist; otherwise the
// queue and distributions come back empty rather than partially filled.
func scoreLeads(questions []*model.Question, submissions []model.Submission, keys map[string]map[string]string) *model.LeadQueue {
	queue := &model.LeadQueue{
		TierDistribution:    make(map[string]int),
		ChannelDistribution: make(map[string]int),
		Queue:               []model.LeadSignal{},
	}

	timeframeQ := questionByRole(questions, model.RoleTimeframe)
	followupQ := questionByRole(questions, model.RoleFollowupIntent)
	if timeframeQ == nil || followupQ == nil || timeframeQ.ID == followupQ.ID {
		return queue
	}
	projectQ := questionByRole(questions, model.RoleProjectType)

	queue.Active = true
	for _, sub := range submissions {
		signal := scoreSubmission(sub.ID, keys[sub.ID], timeframeQ, followupQ, projectQ)
		queue.Queue = append(queue.Queue, signal)
		queue.TierDistribution[string(signal.Tier)]++
		if channel := keys[sub.ID][followupQ.ID]; channel != "" {
			queue.ChannelDistribution[channel]++
		}
	}

	sort.SliceStable(queue.Queue, func(i, j int) bool {
		if queue.Queue[i].LeadScore != queue.Queue[j].LeadScore {
			return queue.Queue[i].LeadScore > queue.Queue[j].LeadScore
		}
		return queue.Queue[i].SubmissionID < queue.Queue[j].SubmissionID
	})

	return queue
}

func scoreSubmission(subID string, answers map[string]string, timeframeQ, followupQ, projectQ *model.Question) model.LeadSignal {
	signal := model.LeadSignal{SubmissionID: subID, Reasons: []string{}}

	timingAnswer := answers[timeframeQ.ID]
	signal.TimingScore = matchScore(timingScores, timingAnswer)
	if signal.TimingScore >= timingReasonMin {
		signal.Reasons = append(signal.Reasons, fmt.Sprintf("plans to start soon (%q)", timingAnswer))
	}

	followupAnswer := answers[followupQ.ID]
	signal.FollowupScore = matchScore(followupScores, followupAnswer)
	if signal.FollowupScore >= followupReasonMin {
		signal.Reasons = append(signal.Reasons, fmt.Sprintf("asked for high-touch follow-up (%q)", followupAnswer))
	} else if signal.FollowupScore < 0 {
		signal.Reasons = append(signal.Reasons, "explicitly not interested in follow-up")
	}

	if projectQ != nil {
		projectAnswer := answers[projectQ.ID]
		signal.ProjectTypeScore = matchScore(projectTypeScores, projectAnswer)
		if signal.ProjectTypeScore >= projectReasonMin {
			signal.Reasons = append(signal.Reasons, fmt.Sprintf("high-value project area (%q)", projectAnswer))
		}
	}

	signal.LeadScore = clampScore(signal.TimingScore + signal.FollowupScore + signal.ProjectTypeScore)
	signal.Tier = tierFor(signal.LeadScore)
	signal.RecommendedNextStep = nextStepByTier[signal.Tier]
	return signal
}

// matchScore returns the weight of the first rule whose term the answer
// contains; 0 when the answer is absent or nothing matches.
func matchScore(rules []scoreRule, answer string) float64 {
	if answer == "" {
		return 0
	}
	lower := strings.ToLower(answer)
	for _, rule := range rules {
		if strings.Contains(lower, rule.term) {
			return rule.weight
		}
	}
	return 0
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// tierFor maps a clamped score onto the contiguous P0-P4 bands.
func tierFor(score float64) model.LeadTier {
	switch {
	case score >= 80:
		return model.TierP0
	case score >= 60:
		return model.TierP1
	case score >= 40:
		return model.TierP2
	case score >= 20:
		return model.TierP3
	default:
		return model.TierP4
	}
}
