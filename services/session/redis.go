package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lamaison/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:session:"

// RedisStore shares conversation state across instances, expiring idle
// sessions via TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (models.ConversationState, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewConversationState(), nil
	}
	if err != nil {
		return models.ConversationState{}, fmt.Errorf("load session: %w", err)
	}

	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.ConversationState{}, fmt.Errorf("decode session: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, state models.ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, sessionPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}
