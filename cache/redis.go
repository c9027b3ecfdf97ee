package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis caches through a shared redis instance so multiple api replicas
// reuse each other's computations. Every operation is best-effort: redis
// being down degrades to cache misses, never to request failures.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("redis cache read failed", "key", key, "err", err)
		}
		return nil, false
	}
	return val, true
}

func (r *Redis) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.SetEx(ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("redis cache write failed", "key", key, "err", err)
	}
}

func (r *Redis) Del(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("redis cache delete failed", "key", key, "err", err)
	}
}
