package cache

import (
	"context"
	"encoding/json"
	"time"

	"ledgerhub/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// SummaryCache keeps per-user expense summaries in Redis so GET /summary
// does not hit Postgres on every call. Entries are short-lived and dropped
// on any expense write for the owner.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

func (c *SummaryCache) key(ownerID string) string {
	return "summary:" + ownerID
}

func (c *SummaryCache) Get(ctx context.Context, ownerID string) (*model.ExpenseSummary, bool) {
	data, err := c.rdb.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		return nil, false
	}
	summary := &model.ExpenseSummary{}
	if err := json.Unmarshal(data, summary); err != nil {
		return nil, false
	}
	return summary, true
}

func (c *SummaryCache) Set(ctx context.Context, ownerID string, summary *model.ExpenseSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(ownerID), data, c.ttl).Err()
}

func (c *SummaryCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.rdb.Del(ctx, c.key(ownerID)).Err()
}
