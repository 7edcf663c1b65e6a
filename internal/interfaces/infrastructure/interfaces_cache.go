package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when nothing is stored under a key
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the key-value persistence collaborator. Values are opaque strings.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// Health and connection management
	Health(ctx context.Context) error
	Close() error
}
