package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskhive/taskhive/internal/api/metrics"
	"github.com/taskhive/taskhive/internal/core/ports"
)

const defaultStatsTTL = 30 * time.Second

// StatsCache caches task statistics per ownership scope.
// Key format: stats:<scope> where scope is a user id or "all".
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached stats for scope, or (nil, nil) on a miss.
func (c *StatsCache) Get(ctx context.Context, scope string) (*ports.TaskStats, error) {
	raw, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.TaskStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return &stats, nil
}

// Set stores the stats for scope with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, scope string, stats *ports.TaskStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(scope), raw, c.ttl).Err()
}

// Invalidate drops the cached stats for the given scopes.
func (c *StatsCache) Invalidate(ctx context.Context, scopes ...string) error {
	keys := make([]string, 0, len(scopes))
	for _, s := range scopes {
		keys = append(keys, c.key(s))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *StatsCache) key(scope string) string {
	return "stats:" + scope
}
