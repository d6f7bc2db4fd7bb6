package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Pack build states
const (
	PackStatusPending = "pending"
	PackStatusReady   = "ready"
	PackStatusFailed  = "failed"
)

// PackStatus records the outcome of the latest analysis build for a
// campaign. Only the status is cached; the pack itself is never persisted.
type PackStatus struct {
	CampaignID string     `json:"campaignId"`
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// PackStatusCache handles Redis operations for analysis build status
type PackStatusCache interface {
	Get(ctx context.Context, campaignID string) (*PackStatus, error)
	Set(ctx context.Context, status *PackStatus) error
}

type packStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPackStatusCache creates a new pack status cache
func NewPackStatusCache(client *redis.Client) PackStatusCache {
	return &packStatusCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *packStatusCache) key(campaignID string) string {
	return fmt.Sprintf("campaign:%s:analysis", campaignID)
}

func (c *packStatusCache) Get(ctx context.Context, campaignID string) (*PackStatus, error) {
	data, err := c.client.Get(ctx, c.key(campaignID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var status PackStatus
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *packStatusCache) Set(ctx context.Context, status *PackStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(status.CampaignID), data, c.ttl).Err()
}
