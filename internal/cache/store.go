package cache

import (
	"context"
	"time"
)

// Store represents the shared cache interface used across the application.
// Implementations own expiry: a value past its TTL is reported as absent.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, keys ...string) error
}
