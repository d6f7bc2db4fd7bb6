package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaignlens/internal/cache"
	"campaignlens/internal/model"
)

type fakeCampaignRepo struct {
	campaigns map[string]*model.Campaign
}

func (f *fakeCampaignRepo) Create(_ context.Context, c *model.Campaign) (string, error) {
	f.campaigns[c.ID] = c
	return c.ID, nil
}

func (f *fakeCampaignRepo) GetByID(_ context.Context, id string) (*model.Campaign, error) {
	return f.campaigns[id], nil
}

func (f *fakeCampaignRepo) GetByHostID(_ context.Context, hostID string) ([]*model.Campaign, error) {
	var out []*model.Campaign
	for _, c := range f.campaigns {
		if c.HostID == hostID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) Update(_ context.Context, c *model.Campaign) error {
	f.campaigns[c.ID] = c
	return nil
}

func (f *fakeCampaignRepo) SetForm(_ context.Context, id, formID string) error {
	f.campaigns[id].FormID = formID
	return nil
}

type fakeSubmissionRepo struct {
	subs []model.Submission
}

func (f *fakeSubmissionRepo) Create(_ context.Context, sub *model.Submission) error {
	f.subs = append(f.subs, *sub)
	return nil
}

func (f *fakeSubmissionRepo) GetByCampaignID(_ context.Context, campaignID string) ([]model.Submission, error) {
	var out []model.Submission
	for _, s := range f.subs {
		if s.CampaignID == campaignID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) CountByCampaignID(_ context.Context, campaignID string) (int64, error) {
	var n int64
	for _, s := range f.subs {
		if s.CampaignID == campaignID {
			n++
		}
	}
	return n, nil
}

type fakeAnswerRepo struct {
	answers []map[string]any
}

func (f *fakeAnswerRepo) Insert(_ context.Context, answer map[string]any) error {
	f.answers = append(f.answers, answer)
	return nil
}

func (f *fakeAnswerRepo) GetByCampaignID(_ context.Context, campaignID string) ([]map[string]any, error) {
	var out []map[string]any
	for _, a := range f.answers {
		if a["campaign_id"] == campaignID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) CountByCampaignID(_ context.Context, campaignID string) (int64, error) {
	var n int64
	for _, a := range f.answers {
		if a["campaign_id"] == campaignID {
			n++
		}
	}
	return n, nil
}

type fakeLeadQueue struct {
	ranks map[string]int64
}

func (f *fakeLeadQueue) Rebuild(_ context.Context, _ string, signals []model.LeadSignal) error {
	f.ranks = make(map[string]int64)
	for i, s := range signals {
		f.ranks[s.SubmissionID] = int64(i + 1)
	}
	return nil
}

func (f *fakeLeadQueue) GetTop(_ context.Context, _ string, _ int) ([]cache.LeadEntry, error) {
	return nil, nil
}

func (f *fakeLeadQueue) GetRank(_ context.Context, _ string, submissionID string) (int64, error) {
	if rank, ok := f.ranks[submissionID]; ok {
		return rank, nil
	}
	return -1, nil
}

func submissionFixture() (*SubmissionService, *fakeCampaignRepo, *fakeSubmissionRepo, *fakeAnswerRepo) {
	campaigns := &fakeCampaignRepo{campaigns: map[string]*model.Campaign{
		"c1": {ID: "c1", HostID: "h1", Name: "Expo", Status: model.CampaignActive},
		"c2": {ID: "c2", HostID: "h1", Name: "Closed", Status: model.CampaignClosed},
	}}
	subs := &fakeSubmissionRepo{}
	answers := &fakeAnswerRepo{}
	return NewSubmissionService(campaigns, subs, answers), campaigns, subs, answers
}

func TestIntakeStampsAndStoresRecords(t *testing.T) {
	svc, _, subs, answers := submissionFixture()

	subID, err := svc.Intake(context.Background(), "c1", []map[string]any{
		{"question_id": "q_timing", "choice_ids": []string{"o_now"}},
		{"question_id": "q_note", "text_answer": "call me"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, subID)

	require.Len(t, subs.subs, 1)
	assert.Equal(t, subID, subs.subs[0].ID)
	assert.Equal(t, "c1", subs.subs[0].CampaignID)

	require.Len(t, answers.answers, 2)
	for _, a := range answers.answers {
		assert.Equal(t, "c1", a["campaign_id"])
		assert.Equal(t, subID, a["submission_id"])
	}
}

func TestIntakeRejectsUnavailableCampaigns(t *testing.T) {
	svc, _, _, _ := submissionFixture()

	_, err := svc.Intake(context.Background(), "missing", []map[string]any{{"question_id": "q1"}})
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	_, err = svc.Intake(context.Background(), "c2", []map[string]any{{"question_id": "q1"}})
	assert.ErrorIs(t, err, ErrCampaignNotOpen)
}

func TestCountsTrackIntake(t *testing.T) {
	svc, _, _, _ := submissionFixture()

	for i := 0; i < 3; i++ {
		_, err := svc.Intake(context.Background(), "c1", []map[string]any{
			{"question_id": "q_timing", "choice_ids": []string{"o_now"}},
			{"question_id": "q_follow", "choice_ids": []string{"o_mail"}},
		})
		require.NoError(t, err)
	}

	counts, err := svc.Counts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Submissions)
	assert.Equal(t, int64(6), counts.Answers)

	empty, err := svc.Counts(context.Background(), "c2")
	require.NoError(t, err)
	assert.Zero(t, empty.Submissions)
	assert.Zero(t, empty.Answers)
}

func TestLeadRankLookup(t *testing.T) {
	queue := &fakeLeadQueue{}
	require.NoError(t, queue.Rebuild(context.Background(), "c1", []model.LeadSignal{
		{SubmissionID: "sub_hot", LeadScore: 90},
		{SubmissionID: "sub_warm", LeadScore: 55},
	}))

	svc := NewAnalysisService(nil, nil, nil, nil, queue, nil, nil)

	rank, err := svc.LeadRank(context.Background(), "c1", "sub_warm")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rank)

	rank, err = svc.LeadRank(context.Background(), "c1", "sub_unknown")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), rank)
}
