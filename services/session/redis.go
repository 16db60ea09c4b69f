package session

import (
	"context"
	"encoding/json"
	"time"

	"legalease/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL. Redis handles expiry,
// so unlike the memory store there are no eviction timers to manage.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Put writes the session. Updates to an existing key keep its remaining
// TTL so sessions expire a fixed duration after creation, matching the
// memory store's timers.
func (s *RedisStore) Put(ctx context.Context, session *models.UserSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	key := sessionKeyPrefix + session.ID
	updated, err := s.client.SetXX(ctx, key, b, redis.KeepTTL).Result()
	if err != nil {
		return err
	}
	if !updated {
		return s.client.Set(ctx, key, b, s.ttl).Err()
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.UserSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.UserSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	n, err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
