package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"banksystem/internal/model"
)

const pendingMarker = "pending"

// IdempotencyRepo stores API responses in Redis under idem:<key>. A key
// holds pendingMarker while its request is in flight.
type IdempotencyRepo struct {
	redisClient *redis.Client
}

func NewIdempotencyRepo(rdb *redis.Client) *IdempotencyRepo {
	return &IdempotencyRepo{redisClient: rdb}
}

func (r *IdempotencyRepo) Load(ctx context.Context, key string) (*model.IdempotentResponse, error) {
	val, err := r.redisClient.Get(ctx, idemKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load idempotency key: %w", err)
	}
	if string(val) == pendingMarker {
		return &model.IdempotentResponse{Pending: true}, nil
	}

	var resp model.IdempotentResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, fmt.Errorf("decode stored response: %w", err)
	}
	return &resp, nil
}

// Reserve claims key for the calling request. It reports false when the key
// is already taken.
func (r *IdempotencyRepo) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, idemKey(key), pendingMarker, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

func (r *IdempotencyRepo) Save(ctx context.Context, key string, resp model.IdempotentResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if err := r.redisClient.Set(ctx, idemKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("save idempotency key: %w", err)
	}
	return nil
}

func (r *IdempotencyRepo) Release(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, idemKey(key)).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}

func idemKey(key string) string {
	return fmt.Sprintf("idem:%s", key)
}
