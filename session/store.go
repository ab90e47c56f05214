package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps every Redis transport failure returned by the
// store. Callers map it to a 5xx-class response.
var ErrRedisUnavailable = errors.New("redis unavailable")

// DefaultKeyPrefix is the key namespace used when no prefix is configured.
const DefaultKeyPrefix = "session:users"

// Store is a Redis-backed session store holding at most one record per
// user id.
type Store struct {
	redis  redis.UniversalClient
	prefix string
}

// NewStore creates a session Store backed by the given Redis client.
// prefix sets the key namespace; empty means [DefaultKeyPrefix].
func NewStore(redisClient redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{
		redis:  redisClient,
		prefix: prefix,
	}
}

// Key returns the Redis key for a user's session record.
func (s *Store) Key(userID string) string {
	return s.prefix + ":" + userID
}

// Save writes the record and its TTL in one transactional pipeline,
// replacing any existing record for the user. The delete inside the
// pipeline guarantees no stale fields survive an overwrite.
func (s *Store) Save(ctx context.Context, record *Record, ttl time.Duration) error {
	if record == nil || record.UserID == "" {
		return errors.New("session record requires a user id")
	}
	if ttl <= 0 {
		return errors.New("session ttl must be positive")
	}

	key := s.Key(record.UserID)

	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]interface{}{
		fieldID:    record.UserID,
		fieldName:  record.Name,
		fieldEmail: record.Email,
		fieldToken: record.Token,
	})
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// Get loads the record for the user id. A missing or expired session is
// (nil, nil).
func (s *Store) Get(ctx context.Context, userID string) (*Record, error) {
	fields, err := s.redis.HGetAll(ctx, s.Key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return &Record{
		UserID: fields[fieldID],
		Name:   fields[fieldName],
		Email:  fields[fieldEmail],
		Token:  fields[fieldToken],
	}, nil
}

// Delete removes the record for the user id. Deleting a session that does
// not exist is not an error.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.redis.Del(ctx, s.Key(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
