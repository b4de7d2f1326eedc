package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/cache"
	"github.com/redis/go-redis/v9"
)

type cacheRepository struct {
	client *redis.Client
	log    logger.Logger
}

func NewCacheRepository(client *redis.Client, log logger.Logger) cache.CacheRepository {
	return &cacheRepository{client: client, log: log}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cache.ErrNotFound
		}
		r.log.Errorf("Redis Get failed for key %s: %v", key, err)
		return nil, fmt.Errorf("cacheRepository.Get for key %q: %w", key, err)
	}
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.log.Errorf("Redis Set failed for key %s: %v", key, err)
		return fmt.Errorf("cacheRepository.Set for key %q: %w", key, err)
	}
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.log.Errorf("Redis Del failed for key %s: %v", key, err)
		return fmt.Errorf("cacheRepository.Delete for key %q: %w", key, err)
	}
	return nil
}
