// Package analysis implements the survey response analysis engine: it
// normalizes raw question/answer records, infers question roles, computes
// distributions, crosstabs with lift, lead scores and data-quality notes,
// and assembles them into a versioned, evidence-linked analysis pack.
//
// The engine is a synchronous pure computation: it performs no I/O, holds no
// state across builds, and is deterministic except for text-answer sampling,
// which a seeded builder makes reproducible.
package analysis

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"campaignlens/internal/model"
)

// Input is everything one build consumes. The caller resolves the campaign
// to its question set and fetches the three raw record sets; the engine
// performs no authentication, routing, or persistence.
type Input struct {
	Campaign    model.Campaign
	Questions   []map[string]any // raw store records, heterogeneous shapes
	Submissions []model.Submission
	Answers     []map[string]any // raw store records, heterogeneous shapes
}

// Builder configures analysis builds. The zero value is not usable; create
// one with NewBuilder.
type Builder struct {
	now       func() time.Time
	seed      int64
	seedSet   bool // unset means entropy-derived per build
	sampleCap int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSeed fixes the pseudo-random source so text-answer samples are
// reproducible. Intended for tests.
func WithSeed(seed int64) BuilderOption {
	return func(b *Builder) {
		b.seed = seed
		b.seedSet = true
	}
}

// WithClock replaces the wall clock used for the analyzedAt stamp.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// WithTextSampleCap overrides the bound on sampled free-text answers.
func WithTextSampleCap(limit int) BuilderOption {
	return func(b *Builder) {
		if limit > 0 {
			b.sampleCap = limit
		}
	}
}

// NewBuilder returns a configured analysis builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		now:       time.Now,
		sampleCap: defaultTextSampleCap,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build recomputes the full analysis pack from the raw record sets. It fails
// with ErrNoFormAssigned, ErrNoQuestions or ErrNoSubmissions and never
// returns a partial pack. Every counter it uses is scoped to this one call.
func (b *Builder) Build(in Input) (*model.AnalysisPack, error) {
	if in.Campaign.FormID == "" {
		return nil, ErrNoFormAssigned
	}

	questions, overrides := normalizeQuestions(in.Questions)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if len(in.Submissions) == 0 {
		return nil, ErrNoSubmissions
	}

	answers := normalizeAnswers(in.Answers)
	inferRoles(questions, overrides)

	seed := b.seed
	if !b.seedSet {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// The four analyzers are independent of one another; they run
	// sequentially because each pass is sub-second at survey scale.
	stats := calcQuestionStats(questions, answers, rng, b.sampleCap)
	keys := answerKeys(questions, answers)
	crosstabs := buildCrosstabs(questions, in.Submissions, keys)
	leads := scoreLeads(questions, in.Submissions, keys)
	quality := assessDataQuality(len(in.Submissions), len(questions), len(answers))

	ranked := rankCrosstabCells(crosstabs)
	catalog := buildEvidenceCatalog(stats, ranked, leads, quality, len(in.Submissions))
	highlights := linkHighlights(ranked, catalog)

	pack := &model.AnalysisPack{
		Version: model.PackVersion,
		Campaign: model.CampaignSummary{
			ID:            in.Campaign.ID,
			Name:          in.Campaign.Name,
			SampleCount:   len(in.Submissions),
			QuestionCount: len(questions),
			AnswerCount:   len(answers),
			AnalyzedAtISO: b.now().UTC().Format(time.RFC3339),
		},
		Questions:       stats,
		EvidenceCatalog: catalog,
		Crosstabs:       crosstabs,
		Highlights:      highlights,
		DataQuality:     quality,
	}
	if leads.Active {
		pack.LeadQueue = leads
	}
	return pack, nil
}

// normalizeQuestions canonicalizes the raw records, silently dropping the
// ones missing an id, and collects role overrides keyed by question id.
func normalizeQuestions(raw []map[string]any) ([]*model.Question, map[string]string) {
	questions := make([]*model.Question, 0, len(raw))
	overrides := make(map[string]string)
	for _, rec := range raw {
		q := normalizeQuestion(rec)
		if q == nil {
			continue
		}
		questions = append(questions, q)
		if ov := strings.TrimSpace(asString(rec["analysis_role_override"])); ov != "" {
			overrides[q.ID] = ov
		}
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].OrderNo < questions[j].OrderNo
	})
	return questions, overrides
}

func normalizeAnswers(raw []map[string]any) []*model.Answer {
	answers := make([]*model.Answer, 0, len(raw))
	for _, rec := range raw {
		if a := normalizeAnswer(rec); a != nil {
			answers = append(answers, a)
		}
	}
	return answers
}
