package settings

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the redis backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisBackend stores each document as a Redis string.
type RedisBackend struct {
	client *redis.Client
	addr   string
	db     int
}

// NewRedisBackend connects to Redis and checks the connection with PING.
func NewRedisBackend(ctx context.Context, o RedisOptions) (*RedisBackend, error) {
	if o.Addr == "" {
		return nil, fmt.Errorf("redis store: address required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     o.Addr,
		Password: o.Password,
		DB:       o.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, &RetryableError{Err: fmt.Errorf("ping redis at %s: %w", o.Addr, err)}
	}
	return NewRedisBackendFromClient(client, o.Addr, o.DB), nil
}

// NewRedisBackendFromClient wraps an existing client.
func NewRedisBackendFromClient(client *redis.Client, addr string, db int) *RedisBackend {
	return &RedisBackend{client: client, addr: addr, db: db}
}

func (b *RedisBackend) Name() string { return BackendRedis }

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Put stores data without expiration.
func (b *RedisBackend) Put(ctx context.Context, key string, data []byte) error {
	return b.client.Set(ctx, key, data, 0).Err()
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

func (b *RedisBackend) Location(key string) string {
	return fmt.Sprintf("redis://%s/%d %s", b.addr, b.db, key)
}

// Close closes the client.
func (b *RedisBackend) Close() error { return b.client.Close() }

// Ensure RedisBackend implements Backend.
var _ Backend = (*RedisBackend)(nil)
