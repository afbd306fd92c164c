// Package cache provides a small TTL cache used to memoize rendered chat
// content. Re-rendering markdown on every viewport update is the expensive
// path in the UI, so rendered strings are cached per message.
package cache

import (
	"context"
	"time"
)

type Manager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
