package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/session"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) session.Store {
	return &sessionStore{client: client}
}

func sessionKey(actorID string) string {
	return sessionKeyPrefix + actorID
}

func (s *sessionStore) Set(ctx context.Context, actorID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(actorID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session for actor %s: %w", actorID, err)
	}
	return nil
}

func (s *sessionStore) Get(ctx context.Context, actorID string) (string, error) {
	token, err := s.client.Get(ctx, sessionKey(actorID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", session.ErrNotFound
		}
		return "", fmt.Errorf("failed to get session for actor %s: %w", actorID, err)
	}
	return token, nil
}

func (s *sessionStore) Clear(ctx context.Context, actorID string) error {
	if err := s.client.Del(ctx, sessionKey(actorID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session for actor %s: %w", actorID, err)
	}
	return nil
}
