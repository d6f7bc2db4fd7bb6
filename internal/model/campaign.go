package model

import "time"

// CampaignStatus is the lifecycle state of a campaign
type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "draft"
	CampaignActive CampaignStatus = "active"
	CampaignClosed CampaignStatus = "closed"
)

// Campaign is a marketing/event campaign collecting survey responses
type Campaign struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	HostID    string         `json:"hostId" bson:"hostId"`
	Name      string         `json:"name" bson:"name"`
	FormID    string         `json:"formId" bson:"formId"` // survey form holding the question set; empty until assigned
	Status    CampaignStatus `json:"status" bson:"status"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Submission is one respondent session linked to a campaign
type Submission struct {
	ID          string    `json:"id" bson:"id"`
	CampaignID  string    `json:"campaignId" bson:"campaignId"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}
