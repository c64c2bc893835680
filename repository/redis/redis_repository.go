package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a session or refresh token does not exist or has expired.
var ErrNotFound = errors.New("redis key not found")

const (
	sessionPrefix = "session:"
	refreshPrefix = "refresh:"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetRefreshToken(ctx context.Context, token string, userID uint64, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, token string) (uint64, error)
	DeleteRefreshToken(ctx context.Context, token string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", redisclient.ErrNotInitialized
	}
	val, err := client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return redisclient.ErrNotInitialized
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return redisclient.ErrNotInitialized
	}
	return client.Del(ctx, key).Err()
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	return r.setUserID(ctx, sessionPrefix+sessionID, userID, ttl)
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	return r.getUserID(ctx, sessionPrefix+sessionID)
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, sessionPrefix+sessionID)
}

func (r *redis) SetRefreshToken(ctx context.Context, token string, userID uint64, ttl time.Duration) error {
	return r.setUserID(ctx, refreshPrefix+token, userID, ttl)
}

func (r *redis) GetRefreshToken(ctx context.Context, token string) (uint64, error) {
	return r.getUserID(ctx, refreshPrefix+token)
}

// DeleteRefreshToken invalidates a refresh token so it can be used once.
func (r *redis) DeleteRefreshToken(ctx context.Context, token string) error {
	return r.Delete(ctx, refreshPrefix+token)
}

func (r *redis) setUserID(ctx context.Context, key string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return redisclient.ErrNotInitialized
	}
	return client.Set(ctx, key, userID, ttl).Err()
}

func (r *redis) getUserID(ctx context.Context, key string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, redisclient.ErrNotInitialized
	}
	val, err := client.Get(ctx, key).Uint64()
	if errors.Is(err, goredis.Nil) {
		return 0, ErrNotFound
	}
	return val, err
}
