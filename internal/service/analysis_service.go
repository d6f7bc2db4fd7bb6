package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"campaignlens/internal/analysis"
	"campaignlens/internal/cache"
	"campaignlens/internal/model"
	"campaignlens/internal/repository"
)

// Notifier pushes analysis lifecycle events to connected hosts. The ws hub
// implements this.
type Notifier interface {
	NotifyAnalysisReady(campaignID string, summary model.CampaignSummary)
	NotifyAnalysisFailed(campaignID string, reason string)
}

// AnalysisService orchestrates one analysis build: it resolves the campaign,
// fetches the three raw record sets, runs the analysis engine, and mirrors
// the resulting lead queue into Redis. The pack itself is returned to the
// caller and never persisted.
type AnalysisService struct {
	campaignRepo   repository.CampaignRepo
	questionRepo   repository.QuestionRepo
	submissionRepo repository.SubmissionRepo
	answerRepo     repository.AnswerRepo
	leadQueue      cache.LeadQueueCache
	statusCache    cache.PackStatusCache
	builder        *analysis.Builder
	notifier       Notifier
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	campaignRepo repository.CampaignRepo,
	questionRepo repository.QuestionRepo,
	submissionRepo repository.SubmissionRepo,
	answerRepo repository.AnswerRepo,
	leadQueue cache.LeadQueueCache,
	statusCache cache.PackStatusCache,
	builder *analysis.Builder,
) *AnalysisService {
	return &AnalysisService{
		campaignRepo:   campaignRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		answerRepo:     answerRepo,
		leadQueue:      leadQueue,
		statusCache:    statusCache,
		builder:        builder,
	}
}

// SetNotifier injects the event notifier (the ws hub implements it)
func (s *AnalysisService) SetNotifier(n Notifier) {
	s.notifier = n
}

// BuildPack runs a full analysis for the campaign. Builds are all-or-
// nothing: any failure yields an error and no partial pack.
func (s *AnalysisService) BuildPack(ctx context.Context, campaignID string) (*model.AnalysisPack, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("resolve campaign %s: %w", campaignID, err)
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	started := time.Now()
	s.setStatus(ctx, &cache.PackStatus{
		CampaignID: campaignID,
		Status:     cache.PackStatusPending,
		StartedAt:  started,
	})

	in, err := s.fetchRecords(ctx, campaign)
	if err != nil {
		return nil, s.failBuild(ctx, campaignID, started, fmt.Errorf("fetch records for campaign %s: %w", campaignID, err))
	}

	pack, err := s.builder.Build(*in)
	if err != nil {
		return nil, s.failBuild(ctx, campaignID, started, fmt.Errorf("analysis build for campaign %s: %w", campaignID, err))
	}

	if pack.LeadQueue != nil {
		if err := s.leadQueue.Rebuild(ctx, campaignID, pack.LeadQueue.Queue); err != nil {
			// The pack is already complete; a stale lead ZSET is not fatal.
			log.Printf("lead queue rebuild failed for campaign %s: %v", campaignID, err)
		}
	}

	finished := time.Now()
	s.setStatus(ctx, &cache.PackStatus{
		CampaignID: campaignID,
		Status:     cache.PackStatusReady,
		StartedAt:  started,
		FinishedAt: &finished,
	})
	if s.notifier != nil {
		s.notifier.NotifyAnalysisReady(campaignID, pack.Campaign)
	}

	log.Printf("analysis pack built for campaign %s: %d submissions, %d highlights, %d evidence items",
		campaignID, pack.Campaign.SampleCount, len(pack.Highlights), len(pack.EvidenceCatalog))
	return pack, nil
}

// GetStatus returns the latest build status for the campaign, if any.
func (s *AnalysisService) GetStatus(ctx context.Context, campaignID string) (*cache.PackStatus, error) {
	return s.statusCache.Get(ctx, campaignID)
}

// TopLeads reads the ranked lead queue mirrored into Redis.
func (s *AnalysisService) TopLeads(ctx context.Context, campaignID string, limit int) ([]cache.LeadEntry, error) {
	return s.leadQueue.GetTop(ctx, campaignID, limit)
}

// LeadRank returns a submission's 1-indexed position in the lead queue, or
// -1 when the submission is not ranked.
func (s *AnalysisService) LeadRank(ctx context.Context, campaignID, submissionID string) (int64, error) {
	return s.leadQueue.GetRank(ctx, campaignID, submissionID)
}

// fetchRecords issues the three read-only store queries in parallel and
// joins them before normalization begins.
func (s *AnalysisService) fetchRecords(ctx context.Context, campaign *model.Campaign) (*analysis.Input, error) {
	in := &analysis.Input{Campaign: *campaign}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in.Questions, err = s.questionRepo.GetByFormID(gctx, campaign.FormID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Submissions, err = s.submissionRepo.GetByCampaignID(gctx, campaign.ID)
		return err
	})
	g.Go(func() error {
		var err error
		in.Answers, err = s.answerRepo.GetByCampaignID(gctx, campaign.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *AnalysisService) failBuild(ctx context.Context, campaignID string, started time.Time, err error) error {
	finished := time.Now()
	s.setStatus(ctx, &cache.PackStatus{
		CampaignID: campaignID,
		Status:     cache.PackStatusFailed,
		Error:      err.Error(),
		StartedAt:  started,
		FinishedAt: &finished,
	})
	if s.notifier != nil {
		s.notifier.NotifyAnalysisFailed(campaignID, err.Error())
	}
	return err
}

func (s *AnalysisService) setStatus(ctx context.Context, status *cache.PackStatus) {
	if err := s.statusCache.Set(ctx, status); err != nil {
		log.Printf("pack status update failed for campaign %s: %v", status.CampaignID, err)
	}
}
