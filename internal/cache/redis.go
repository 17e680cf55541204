package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shapeshifter/internal/model"
)

// Redis is a ResponseCache backed by a shared redis instance, for running
// more than one API replica. Expiry is native redis TTL.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (*model.TransformResponse, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var res model.TransformResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false, fmt.Errorf("redis decode: %w", err)
	}
	return &res, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, res *model.TransformResponse, ttl time.Duration) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}

	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
