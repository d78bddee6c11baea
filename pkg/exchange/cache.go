package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/paec-registry/platform/pkg/common/models"
)

const summaryKeyPrefix = "exchange:run:"

// RedisSummaryCache keeps import summaries in Redis under a TTL, so a client
// that fired an import can poll its outcome without the service holding run
// state in memory.
type RedisSummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSummaryCache(rdb *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{rdb: rdb, ttl: ttl}
}

func (c *RedisSummaryCache) Put(ctx context.Context, summary *models.ImportSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary %s: %w", summary.RunID, err)
	}
	if err := c.rdb.Set(ctx, summaryKeyPrefix+summary.RunID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache summary %s: %w", summary.RunID, err)
	}
	return nil
}

func (c *RedisSummaryCache) Get(ctx context.Context, runID string) (*models.ImportSummary, error) {
	raw, err := c.rdb.Get(ctx, summaryKeyPrefix+runID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read summary %s: %w", runID, err)
	}
	var summary models.ImportSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode summary %s: %w", runID, err)
	}
	return &summary, nil
}
