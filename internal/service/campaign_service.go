package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"campaignlens/internal/model"
	"campaignlens/internal/repository"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignService handles campaign and survey-form management
type CampaignService struct {
	campaignRepo repository.CampaignRepo
	questionRepo repository.QuestionRepo
}

// NewCampaignService creates a new campaign service
func NewCampaignService(campaignRepo repository.CampaignRepo, questionRepo repository.QuestionRepo) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		questionRepo: questionRepo,
	}
}

// Create creates a new campaign
func (s *CampaignService) Create(ctx context.Context, campaign *model.Campaign) (string, error) {
	return s.campaignRepo.Create(ctx, campaign)
}

// GetByID retrieves a campaign by ID
func (s *CampaignService) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

// GetByHostID retrieves all campaigns for a host
func (s *CampaignService) GetByHostID(ctx context.Context, hostID string) ([]*model.Campaign, error) {
	return s.campaignRepo.GetByHostID(ctx, hostID)
}

// Update updates an existing campaign
func (s *CampaignService) Update(ctx context.Context, campaign *model.Campaign) error {
	return s.campaignRepo.Update(ctx, campaign)
}

// SetQuestions replaces the campaign's survey form with the given question
// records, assigning a form id on first use. Question records stay raw maps
// end to end; the analysis engine normalizes them at its own boundary.
func (s *CampaignService) SetQuestions(ctx context.Context, campaignID string, questions []map[string]any) (string, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return "", err
	}
	if campaign == nil {
		return "", ErrCampaignNotFound
	}

	formID := campaign.FormID
	if formID == "" {
		formID = "form_" + uuid.New().String()[:8]
	}

	if err := s.questionRepo.DeleteByFormID(ctx, formID); err != nil {
		return "", err
	}
	if err := s.questionRepo.InsertMany(ctx, formID, questions); err != nil {
		return "", err
	}
	if campaign.FormID != formID {
		if err := s.campaignRepo.SetForm(ctx, campaignID, formID); err != nil {
			return "", err
		}
	}
	return formID, nil
}
