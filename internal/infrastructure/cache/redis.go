package cache

import (
	"context"
	"errors"
	"fmt"

	"gpa-tracker/internal/config"
	interfaces "gpa-tracker/internal/interfaces/infrastructure"

	"github.com/go-redis/redis/v8"
)

// RedisStore implements KVStore on Redis. Every key is namespaced with prefix
// so several records can share one database.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(addr, password string, db int, prefix string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return NewRedisStoreFromClient(rdb, prefix)
}

func NewRedisStoreWithConfig(cfg *config.CacheConfig, prefix string) *RedisStore {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return NewRedisStore(addr, cfg.Password, cfg.DB, prefix)
}

func NewRedisStoreFromClient(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", interfaces.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return val, nil
}

// Set stores value without expiry
func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}

	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var _ interfaces.KVStore = (*RedisStore)(nil)
