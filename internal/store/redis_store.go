package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// updateMaxRetries bounds optimistic-transaction retries before giving up.
const updateMaxRetries = 5

// RedisStore is a path-addressed document store over redis. Values are
// JSON documents at path-shaped keys; Update merges fields into the
// existing document inside a WATCH transaction, so concurrent updates to
// one path cannot interleave their field merges.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the raw document at path, or nil when the path is absent.
func (s *RedisStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	data, err := s.client.Get(ctx, path).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return json.RawMessage(data), nil
}

// Set replaces the document at path.
func (s *RedisStore) Set(ctx context.Context, path string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for %s: %w", path, err)
	}
	if err := s.client.Set(ctx, path, data, 0).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Update merges fields into the document at path, creating it when absent.
// Explicit nil values are stored as JSON null.
func (s *RedisStore) Update(ctx context.Context, path string, fields map[string]any) error {
	txn := func(tx *redis.Tx) error {
		current := map[string]any{}

		data, err := tx.Get(ctx, path).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &current); err != nil {
				return fmt.Errorf("decoding document at %s: %w", path, err)
			}
		}

		for k, v := range fields {
			current[k] = v
		}

		merged, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("encoding document at %s: %w", path, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, path, merged, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < updateMaxRetries; attempt++ {
		err := s.client.Watch(ctx, txn, path)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("updating %s: %w", path, err)
	}

	return fmt.Errorf("updating %s: too many concurrent writes", path)
}
