package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mskustudx/studx/internal/app/models"
)

// RedisStore keeps the snapshot under a single key
type RedisStore struct {
	client *redis.Client
	key    string
}

// RedisConfig holds the connection settings for a RedisStore
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client, cfg.Key), nil
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "studx:users"
	}
	return &RedisStore{client: client, key: key}
}

// Name implements Store
func (s *RedisStore) Name() string {
	return "redis"
}

// Load implements Store
func (s *RedisStore) Load(ctx context.Context) ([]*models.User, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []*models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot key %s: %w", s.key, err)
	}

	users, err := decodeUsers(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot key %s: %w", s.key, err)
	}
	return users, nil
}

// Save implements Store
func (s *RedisStore) Save(ctx context.Context, users []*models.User) error {
	data, err := encodeUsers(users)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot key %s: %w", s.key, err)
	}
	return nil
}

// Close implements Store
func (s *RedisStore) Close() error {
	return s.client.Close()
}
