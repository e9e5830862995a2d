package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/bloom/internal/config"
)

// RedisCache holds the ephemeral, non-authoritative state of the signal
// engine. Losing it never breaks an invariant: persisted Interactions remain
// the source of truth for who may be shown to whom.
type RedisCache struct {
	Client  *redis.Client
	seenTTL time.Duration
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	ttl := cfg.Redis.SeenTTL
	if ttl <= 0 {
		ttl = 100 * time.Minute
	}
	return &RedisCache{Client: redis.NewClient(opts), seenTTL: ttl}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForSeenSignals generates the Redis hash key holding, for one user,
// otherUserID -> last delivery time (unix millis).
func (c *RedisCache) KeyForSeenSignals(userID uint64) string {
	return fmt.Sprintf("signals:seen:%d", userID)
}

// LastDelivered returns when each of others was last delivered to userID.
// Users never delivered are absent from the result.
func (c *RedisCache) LastDelivered(ctx context.Context, userID uint64, others []uint64) (map[uint64]time.Time, error) {
	out := make(map[uint64]time.Time, len(others))
	if len(others) == 0 {
		return out, nil
	}

	fields := make([]string, len(others))
	for i, id := range others {
		fields[i] = strconv.FormatUint(id, 10)
	}

	vals, err := c.Client.HMGet(ctx, c.KeyForSeenSignals(userID), fields...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue // never delivered
		}
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		out[others[i]] = time.UnixMilli(ms).UTC()
	}
	return out, nil
}

// MarkDelivered records that others were shown to userID at `at` and
// refreshes the hash TTL. The whole hash expires after the seen TTL of
// inactivity.
func (c *RedisCache) MarkDelivered(ctx context.Context, userID uint64, others []uint64, at time.Time) error {
	if len(others) == 0 {
		return nil
	}
	key := c.KeyForSeenSignals(userID)

	values := make([]any, 0, len(others)*2)
	for _, id := range others {
		values = append(values, strconv.FormatUint(id, 10), at.UnixMilli())
	}

	pipe := c.Client.TxPipeline()
	pipe.HSet(ctx, key, values...)
	pipe.Expire(ctx, key, c.seenTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Forget drops a single delivered entry, used once a signal is consumed by a
// swipe.
func (c *RedisCache) Forget(ctx context.Context, userID, otherID uint64) error {
	return c.Client.HDel(ctx, c.KeyForSeenSignals(userID), strconv.FormatUint(otherID, 10)).Err()
}
