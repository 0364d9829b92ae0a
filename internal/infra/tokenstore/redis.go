package tokenstore

import (
	"context"
	"encoding/json"
	"time"

	"nosh/config"
	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "refresh:"

// redisStore keeps sessions as TTL'd keys. DEL returns the number of keys
// it removed, which gives the same exactly-one-winner semantics as the
// memory store without any client-side locking.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and returns a refresh-token store backed
// by it.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig) (repository.RefreshTokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}

	return &redisStore{client: client}, nil
}

// Save records a session under the token's key with the given TTL; Redis
// expires the entry on its own afterwards.
func (s *redisStore) Save(ctx context.Context, token string, session entity.RefreshSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	if err := s.client.Set(ctx, redisKeyPrefix+token, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "set refresh session")
	}

	return nil
}

// Remove deletes the token's key. The deleted-key count from DEL reports
// whether this call was the one that removed it.
func (s *redisStore) Remove(ctx context.Context, token string) (bool, error) {
	removed, err := s.client.Del(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return false, errors.Wrap(err, "delete refresh session")
	}

	return removed > 0, nil
}
