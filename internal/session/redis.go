package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/google/uuid"       // Random session ids
	"github.com/redis/go-redis/v9" // Redis client
)

// DefaultTTL is how long a session stays valid without a fresh login.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "session:"

// RedisStore implements Store on a Redis client
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore constructs a RedisStore; ttl <= 0 means DefaultTTL
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Create stores a new session for userID under a random id
func (s *RedisStore) Create(ctx context.Context, userID uint) (*Session, error) {
	sess := &Session{ID: uuid.NewString(), UserID: userID}
	b, err := json.Marshal(sess) // Marshal session to JSON
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, keyPrefix+sess.ID, b, s.ttl).Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get fetches a session by id, ErrNotFound on miss
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+id).Result() // Get value from Redis
	if err == redis.Nil {
		return nil, ErrNotFound // Key does not exist
	} else if err != nil {
		return nil, err // Other Redis error
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes a session; unknown ids are a no-op
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err() // Delete key from Redis
}
