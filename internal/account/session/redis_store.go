package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/pkg/apperror"
)

const keyPrefix = "session:"

// RedisSessionStore keeps session id -> user id mappings in Redis
type RedisSessionStore struct {
	client redis.Cmdable
}

// NewRedisSessionStore creates a new session store
func NewRedisSessionStore(client redis.Cmdable) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	sid := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+sid, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sid, nil
}

// Resolve returns the user bound to sessionID. Unknown or expired sessions
// are Unauthorized.
func (s *RedisSessionStore) Resolve(ctx context.Context, sessionID string) (uint, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperror.Unauthorized()
		}
		return 0, fmt.Errorf("failed to read session: %w", err)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("corrupt session %s: %w", sessionID, err)
	}
	return uint(id), nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
