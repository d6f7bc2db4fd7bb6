package model

// LeadTier is the priority banding of a lead score
type LeadTier string

const (
	TierP0 LeadTier = "P0" // score >= 80
	TierP1 LeadTier = "P1" // score >= 60
	TierP2 LeadTier = "P2" // score >= 40
	TierP3 LeadTier = "P3" // score >= 20
	TierP4 LeadTier = "P4"
)

// LeadSignal is one submission's composite follow-up-worthiness score.
type LeadSignal struct {
	SubmissionID        string   `json:"submissionId"`
	LeadScore           float64  `json:"leadScore"` // clamped to [0,100]
	Tier                LeadTier `json:"tier"`
	TimingScore         float64  `json:"timingScore"`
	FollowupScore       float64  `json:"followupScore"`
	ProjectTypeScore    float64  `json:"projectTypeScore"`
	Reasons             []string `json:"reasons"`
	RecommendedNextStep string   `json:"recommendedNextStep"`
}

// LeadQueue is the scored submission queue plus its derived distributions.
// When lead scoring is inactive for a campaign the distributions and queue
// are empty rather than partially filled.
type LeadQueue struct {
	Active              bool           `json:"active"`
	TierDistribution    map[string]int `json:"tierDistribution"`
	ChannelDistribution map[string]int `json:"channelDistribution"`
	Queue               []LeadSignal   `json:"queue"`
}
