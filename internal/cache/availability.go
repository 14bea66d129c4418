package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/TrainFitServices/training-scheduler/internal/dto"
)

// AvailabilityCache keeps the public per-date availability listing in redis
// for a short TTL. The TTL is the only invalidation: a just-admitted booking
// may be visible up to 30s late on the public page, which is acceptable
// because admission itself always re-checks capacity against the store.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: 30 * time.Second,
	}
}

func key(date string) string {
	return "availability:" + date
}

// Get returns the cached listing for a date, or false on miss. A nil cache
// (redis not configured) always misses.
func (c *AvailabilityCache) Get(ctx context.Context, date string) ([]dto.PublicSessionDTO, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(date)).Bytes()
	if err != nil {
		return nil, false
	}

	var items []dto.PublicSessionDTO
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	return items, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date string, items []dto.PublicSessionDTO) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}

	// best-effort; a failed write just means a cache miss later
	c.rdb.Set(ctx, key(date), raw, c.ttl)
}
