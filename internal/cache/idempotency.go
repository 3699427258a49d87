package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckoutResult is the replayable outcome of a finalized checkout.
type CheckoutResult struct {
	PaymentID    string `json:"payment_id"`
	RemovedCount int64  `json:"removed_count"`
}

// IdempotencyStore remembers checkout outcomes keyed by the owner and a
// client-generated token so a retried request replays the original response
// instead of finalizing twice. Keys are scoped per owner: the same token from
// two different owners never collides.
type IdempotencyStore interface {
	Lookup(ctx context.Context, ownerEmail, key string) (*CheckoutResult, error)
	Remember(ctx context.Context, ownerEmail, key string, result CheckoutResult) error
}

type redisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore returns a Redis-backed store.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) IdempotencyStore {
	return &redisIdempotencyStore{client: client, ttl: ttl}
}

func (s *redisIdempotencyStore) Lookup(ctx context.Context, ownerEmail, key string) (*CheckoutResult, error) {
	raw, err := s.client.Get(ctx, idempotencyKey(ownerEmail, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var result CheckoutResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *redisIdempotencyStore) Remember(ctx context.Context, ownerEmail, key string, result CheckoutResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, idempotencyKey(ownerEmail, key), raw, s.ttl).Err()
}

func idempotencyKey(ownerEmail, key string) string {
	return "checkout:idem:" + ownerEmail + ":" + key
}
