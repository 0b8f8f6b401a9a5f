package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	platformredis "intake-gateway/internal/platform/redis"
	"intake-gateway/internal/wizard"
	"intake-gateway/pkg/platform/sentinel"
)

const draftKeyPrefix = "wizard:draft:"

// RedisStore persists drafts in Redis so resumption works across instances.
// Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	client *platformredis.Client
	ttl    time.Duration
}

// NewRedisStore returns a store writing drafts with the given TTL.
func NewRedisStore(client *platformredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func draftKey(id string) string { return draftKeyPrefix + id }

func (s *RedisStore) Save(ctx context.Context, state *wizard.State) error {
	draft := sanitize(state)
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(state.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Find(ctx context.Context, id string) (*wizard.State, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var state wizard.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
