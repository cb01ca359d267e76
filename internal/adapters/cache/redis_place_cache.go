package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const placeKeyPrefix = "places:"

// RedisPlaceCache is a Redis-backed cache for place search results.
// Query keys are expected to be normalized by the caller.
type RedisPlaceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlaceCache(client *redis.Client, ttl time.Duration) *RedisPlaceCache {
	return &RedisPlaceCache{Client: client, TTL: ttl}
}

func placeKey(query string) string {
	return placeKeyPrefix + query
}

// Fetch cached places for a query.
func (c *RedisPlaceCache) Get(ctx context.Context, query string) (_ []domain.Landmark, ok bool, err error) {
	defer obs.Time(ctx, "places.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("place cache: client is nil")
	}

	if strings.TrimSpace(query) == "" {
		return nil, false, errors.New("get place cache: query must not be empty")
	}

	raw, err := c.Client.Get(ctx, placeKey(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get place cache: redis get: %w", err)
	}

	var places []domain.Landmark
	if err := json.Unmarshal(raw, &places); err != nil {
		return nil, false, fmt.Errorf("get place cache: decode %q: %w", query, err)
	}

	return places, true, nil
}

// Store places for a query, expiring after TTL (no expiry when TTL is zero).
func (c *RedisPlaceCache) Put(ctx context.Context, query string, places []domain.Landmark) (err error) {
	defer obs.Time(ctx, "places.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("place cache: client is nil")
	}

	if strings.TrimSpace(query) == "" {
		return errors.New("insert place cache: query must not be empty")
	}

	if places == nil {
		places = []domain.Landmark{}
	}

	payload, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("insert place cache: encode %q: %w", query, err)
	}

	if err := c.Client.Set(ctx, placeKey(query), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert place cache: redis set: %w", err)
	}

	return nil
}
