package model

// PackVersion identifies the AnalysisPack schema. Consumers must treat
// unknown versions as incompatible.
const PackVersion = "ap-1.0"

// AnalysisPack is the versioned output artifact of one analysis run.
type AnalysisPack struct {
	Version         string               `json:"version"`
	Campaign        CampaignSummary      `json:"campaign"`
	Questions       []QuestionStats      `json:"questions"`
	EvidenceCatalog []EvidenceItem       `json:"evidenceCatalog"`
	Crosstabs       []Crosstab           `json:"crosstabs"`
	Highlights      []Highlight          `json:"highlights"`
	DataQuality     []DataQualityMessage `json:"dataQuality"`
	LeadQueue       *LeadQueue           `json:"leadQueue,omitempty"`
}

// CampaignSummary is the campaign header of a pack.
type CampaignSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SampleCount   int    `json:"sampleCount"`
	QuestionCount int    `json:"questionCount"`
	AnswerCount   int    `json:"answerCount"`
	AnalyzedAtISO string `json:"analyzedAtISO"`
}

// ChoiceCount is one entry of a choice distribution.
type ChoiceCount struct {
	Choice     string  `json:"choice"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// QuestionStats holds per-question response statistics.
type QuestionStats struct {
	QuestionID      string         `json:"questionId"`
	OrderNo         int            `json:"orderNo"`
	Body            string         `json:"body"`
	Type            QuestionType   `json:"type"`
	Role            QuestionRole   `json:"role"`
	RoleSource      RoleSource     `json:"roleSource"`
	ResponseCount   int            `json:"responseCount"`
	Distribution    map[string]int `json:"distribution,omitempty"`
	TopChoices      []ChoiceCount  `json:"topChoices,omitempty"`
	TextAnswerCount int            `json:"textAnswerCount,omitempty"`
	TextSamples     []string       `json:"textSamples,omitempty"`
}

// CrosstabCell is one cell of a cross-tabulation.
type CrosstabCell struct {
	RowKey     string  `json:"rowKey"`
	ColKey     string  `json:"colKey"`
	Count      int     `json:"count"`
	RowPct     float64 `json:"rowPct"`
	ColPct     float64 `json:"colPct"`
	OverallPct float64 `json:"overallPct"`
	Lift       float64 `json:"lift"`
}

// Crosstab is a two-question cross-tabulation of answer-key co-occurrence.
type Crosstab struct {
	ID               string         `json:"id"`
	RowQuestionID    string         `json:"rowQuestionId"`
	ColQuestionID    string         `json:"colQuestionId"`
	RowQuestionBody  string         `json:"rowQuestionBody"`
	ColQuestionBody  string         `json:"colQuestionBody"`
	RowTotals        map[string]int `json:"rowTotals"`
	ColTotals        map[string]int `json:"colTotals"`
	Cells            []CrosstabCell `json:"cells"`
	SampleCount      int            `json:"sampleCount"` // submissions with both answers
	LowSampleWarning bool           `json:"lowSampleWarning"`
}

// Confidence labels how firmly a highlight's claim is supported.
type Confidence string

const (
	ConfidenceConfirmed   Confidence = "Confirmed"
	ConfidenceDirectional Confidence = "Directional"
	ConfidenceHypothesis  Confidence = "Hypothesis"
)

// CrosstabHighlight is a crosstab cell promoted to narrative form.
type CrosstabHighlight struct {
	CrosstabID      string     `json:"crosstabId"`
	RowQuestionBody string     `json:"rowQuestionBody"`
	ColQuestionBody string     `json:"colQuestionBody"`
	RowKey          string     `json:"rowKey"`
	ColKey          string     `json:"colKey"`
	Count           int        `json:"count"`
	RowTotal        int        `json:"rowTotal"`
	Lift            float64    `json:"lift"`
	Highlight       string     `json:"highlight"`
	Confidence      Confidence `json:"confidence"`
}

// EvidenceSource identifies which analyzer produced an evidence item.
type EvidenceSource string

const (
	SourceQuestionStats EvidenceSource = "qStats"
	SourceCrosstab      EvidenceSource = "crosstab"
	SourceDerived       EvidenceSource = "derived"
	SourceDataQuality   EvidenceSource = "dataQuality"
)

// Evidence metric labels, kept in the campaign team's reporting language.
const (
	MetricDistribution = "분포"
	MetricCrosstab     = "교차표"
	MetricLeadScore    = "리드 스코어"
	MetricDataQuality  = "데이터 품질"
)

// EvidenceItem is one atomic, ID-addressable computed number.
type EvidenceItem struct {
	ID        string         `json:"id"` // E1, E2, ... unique within one pack
	Title     string         `json:"title"`
	Metric    string         `json:"metric"`
	ValueText string         `json:"valueText"`
	N         int            `json:"n"`
	Source    EvidenceSource `json:"source"`
	Notes     string         `json:"notes,omitempty"`
}

// Highlight is a narrative, evidence-backed claim.
type Highlight struct {
	ID          string     `json:"id"` // H1, H2, ...
	Title       string     `json:"title"`
	EvidenceIDs []string   `json:"evidenceIds"` // 1-2, never empty
	Statement   string     `json:"statement"`
	Confidence  Confidence `json:"confidence"`
}

// QualityLevel is the severity of a data-quality message.
type QualityLevel string

const (
	QualityInfo    QualityLevel = "info"
	QualityWarning QualityLevel = "warning"
)

// DataQualityMessage is one heuristic note about the dataset.
type DataQualityMessage struct {
	Level   QualityLevel `json:"level"`
	Message string       `json:"message"`
}
