package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the shared Store used when REDIS_URL is configured, so cached
// payloads survive restarts and are visible across instances.
type Redis struct {
	conn *redis.Client
}

func NewRedis(rawURL string) (*Redis, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	conn := redis.NewClient(opts)
	if err := conn.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Redis{conn: conn}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.conn.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("Redis Get error:", err)
		}
		return nil, false
	}
	return val, true
}

// Set failures degrade to a cache miss on the next read; the request that
// produced the payload still succeeds.
func (r *Redis) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := r.conn.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Println("Redis Set error:", err)
	}
}

var _ Store = (*Redis)(nil)
