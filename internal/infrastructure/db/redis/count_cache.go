package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

const (
	countsKey       = "dashboard:counts"
	generationKey   = "dashboard:counts:gen"
	DefaultCountTTL = 30 * time.Second
)

// CountCache keeps the latest dashboard counts under a single key.
// Invalidate bumps a generation counter alongside the delete; Set only stores
// counts computed under the current generation. The TTL bounds staleness when
// an invalidation is lost.
type CountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCountCache wraps client. A non-positive ttl falls back to DefaultCountTTL.
func NewCountCache(client *redis.Client, ttl time.Duration) *CountCache {
	if ttl <= 0 {
		ttl = DefaultCountTTL
	}
	return &CountCache{client: client, ttl: ttl}
}

func (c *CountCache) Get(ctx context.Context) (domain.DashboardStats, bool, error) {
	raw, err := c.client.Get(ctx, countsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DashboardStats{}, false, nil
	}
	if err != nil {
		return domain.DashboardStats{}, false, fmt.Errorf("read cached counts: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return domain.DashboardStats{}, false, fmt.Errorf("decode cached counts: %w", err)
	}
	return stats, true, nil
}

func (c *CountCache) Generation(ctx context.Context) (int64, error) {
	gen, err := generation(ctx, c.client)
	if err != nil {
		return 0, fmt.Errorf("read counts generation: %w", err)
	}
	return gen, nil
}

// Set stores stats when gen is still the current generation. A stale
// generation, or an Invalidate racing with the write, is a silent no-op.
func (c *CountCache) Set(ctx context.Context, stats domain.DashboardStats, gen int64) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode counts: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, countsKey, raw, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cache counts: %w", err)
	}
	return nil
}

func (c *CountCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, countsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate counts: %w", err)
	}
	return nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func generation(ctx context.Context, g getter) (int64, error) {
	gen, err := g.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
