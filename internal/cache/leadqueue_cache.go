package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"campaignlens/internal/model"
)

// LeadQueueCache handles Redis ZSET operations for the per-campaign lead
// queue, so sales tooling can read ranked leads without rebuilding the pack.
type LeadQueueCache interface {
	Rebuild(ctx context.Context, campaignID string, signals []model.LeadSignal) error
	GetTop(ctx context.Context, campaignID string, limit int) ([]LeadEntry, error)
	GetRank(ctx context.Context, campaignID, submissionID string) (int64, error)
}

// LeadEntry is a single ranked lead
type LeadEntry struct {
	SubmissionID string  `json:"submissionId"`
	LeadScore    float64 `json:"leadScore"`
	Rank         int     `json:"rank"`
}

type leadQueueCache struct {
	client *redis.Client
}

// NewLeadQueueCache creates a new lead queue cache
func NewLeadQueueCache(client *redis.Client) LeadQueueCache {
	return &leadQueueCache{
		client: client,
	}
}

func (c *leadQueueCache) key(campaignID string) string {
	return fmt.Sprintf("campaign:%s:leads", campaignID)
}

// Rebuild replaces the whole queue; packs are full recomputes, so the ZSET
// must not accumulate entries from earlier builds.
func (c *leadQueueCache) Rebuild(ctx context.Context, campaignID string, signals []model.LeadSignal) error {
	key := c.key(campaignID)
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	for _, s := range signals {
		pipe.ZAdd(ctx, key, redis.Z{
			Score:  s.LeadScore,
			Member: s.SubmissionID,
		})
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *leadQueueCache) GetTop(ctx context.Context, campaignID string, limit int) ([]LeadEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(campaignID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeadEntry, len(results))
	for i, z := range results {
		entries[i] = LeadEntry{
			SubmissionID: z.Member.(string),
			LeadScore:    z.Score,
			Rank:         i + 1,
		}
	}
	return entries, nil
}

func (c *leadQueueCache) GetRank(ctx context.Context, campaignID, submissionID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(campaignID), submissionID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}
