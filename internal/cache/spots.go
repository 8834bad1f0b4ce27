package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const availableSpotsKey = "parkspot:spots:available"

// SpotCache keeps the public available-spot listing in redis. A nil client
// or a non-positive TTL turns every call into a no-op.
type SpotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewSpotCache(client *redis.Client, ttl time.Duration, logger logger.Logger) *SpotCache {
	return &SpotCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *SpotCache) enabled() bool {
	return c.client != nil && c.ttl > 0
}

func (c *SpotCache) GetAvailable(ctx context.Context) ([]*domain.ParkingSpot, bool) {
	if !c.enabled() {
		return nil, false
	}

	val, err := c.client.Get(ctx, availableSpotsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("spot cache read failed", logger.String("error", err.Error()))
		}
		return nil, false
	}

	var spots []*domain.ParkingSpot
	if err = json.Unmarshal(val, &spots); err != nil {
		c.logger.Warn("spot cache entry is corrupt", logger.String("error", err.Error()))
		return nil, false
	}

	return spots, true
}

func (c *SpotCache) SetAvailable(ctx context.Context, spots []*domain.ParkingSpot) {
	if !c.enabled() {
		return
	}

	data, err := json.Marshal(spots)
	if err != nil {
		return
	}
	if err = c.client.Set(ctx, availableSpotsKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("spot cache write failed", logger.String("error", err.Error()))
	}
}

// Invalidate drops the listing; called after any change to a spot's counters.
func (c *SpotCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}

	if err := c.client.Del(ctx, availableSpotsKey).Err(); err != nil {
		c.logger.Warn("spot cache invalidate failed", logger.String("error", err.Error()))
	}
}
