package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"campaignlens/internal/model"
	"campaignlens/internal/repository"
)

var ErrCampaignNotOpen = errors.New("campaign is not accepting submissions")

// SubmissionService handles respondent intake: one submission per respondent
// session plus its raw answer records. Answer records are stored as-is;
// the analysis engine normalizes them at its own boundary.
type SubmissionService struct {
	campaignRepo   repository.CampaignRepo
	submissionRepo repository.SubmissionRepo
	answerRepo     repository.AnswerRepo
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	campaignRepo repository.CampaignRepo,
	submissionRepo repository.SubmissionRepo,
	answerRepo repository.AnswerRepo,
) *SubmissionService {
	return &SubmissionService{
		campaignRepo:   campaignRepo,
		submissionRepo: submissionRepo,
		answerRepo:     answerRepo,
	}
}

// Intake records one respondent session. Only active campaigns accept
// submissions. Each answer record is stamped with the campaign and
// submission ids before storage.
func (s *SubmissionService) Intake(ctx context.Context, campaignID string, answers []map[string]any) (string, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return "", err
	}
	if campaign == nil {
		return "", ErrCampaignNotFound
	}
	if campaign.Status != model.CampaignActive {
		return "", ErrCampaignNotOpen
	}

	sub := &model.Submission{
		ID:         "sub_" + uuid.New().String()[:8],
		CampaignID: campaignID,
	}
	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		return "", err
	}

	for _, answer := range answers {
		answer["campaign_id"] = campaignID
		answer["submission_id"] = sub.ID
		if err := s.answerRepo.Insert(ctx, answer); err != nil {
			return "", err
		}
	}
	return sub.ID, nil
}

// CampaignCounts reports how many submissions and answers a campaign has
// collected so far.
type CampaignCounts struct {
	Submissions int64 `json:"submissionCount"`
	Answers     int64 `json:"answerCount"`
}

// Counts returns the intake counters for a campaign.
func (s *SubmissionService) Counts(ctx context.Context, campaignID string) (*CampaignCounts, error) {
	subs, err := s.submissionRepo.CountByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.CountByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return &CampaignCounts{Submissions: subs, Answers: answers}, nil
}
