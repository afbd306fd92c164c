package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	_, found := c.Get(ctx, "missing")
	require.False(t, found)

	c.Set(ctx, "msg-1", "rendered text", time.Minute)
	got, found := c.Get(ctx, "msg-1")
	require.True(t, found)
	require.Equal(t, "rendered text", got)
}

func TestInMemory_Expiration(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory[string, int]("render", DefaultExpiration, DefaultCleanupInterval)

	c.Set(ctx, "k", 42, 20*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	_, found := c.Get(ctx, "k")
	require.False(t, found, "entry should expire after its ttl")
}

func TestInMemory_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	c.Set(ctx, "a", "1", time.Minute)
	c.Set(ctx, "b", "2", time.Minute)

	require.NoError(t, c.Delete(ctx, "a"))
	_, found := c.Get(ctx, "a")
	require.False(t, found)
	_, found = c.Get(ctx, "b")
	require.True(t, found)

	require.NoError(t, c.Flush(ctx))
	_, found = c.Get(ctx, "b")
	require.False(t, found)
}

func TestReadThrough_CachesLoaderResult(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	calls := 0
	rt := NewReadThrough(Manager[string, string](c), func(ctx context.Context, input string) (string, error) {
		calls++
		return "rendered:" + input, nil
	}, false)

	got, err := rt.Get(ctx, "msg-1", "# Hello", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "rendered:# Hello", got)
	require.Equal(t, 1, calls)

	// Second get hits the cache, not the loader.
	got, err = rt.Get(ctx, "msg-1", "# Hello", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "rendered:# Hello", got)
	require.Equal(t, 1, calls)
}

func TestReadThrough_SkipCache(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	calls := 0
	rt := NewReadThrough(Manager[string, string](c), func(ctx context.Context, input string) (string, error) {
		calls++
		return input, nil
	}, true)

	for i := 0; i < 3; i++ {
		_, err := rt.Get(ctx, "k", "v", time.Minute)
		require.NoError(t, err)
	}
	require.Equal(t, 3, calls, "skip-cache mode always calls the loader")
}

func TestReadThrough_LoaderErrorNotCached(t *testing.T) {
	ctx := context.Background()
	c := NewInMemory[string, string]("render", DefaultExpiration, DefaultCleanupInterval)

	boom := errors.New("render failed")
	rt := NewReadThrough(Manager[string, string](c), func(ctx context.Context, input string) (string, error) {
		return "", boom
	}, false)

	_, err := rt.Get(ctx, "k", "v", time.Minute)
	require.ErrorIs(t, err, boom)

	_, found := c.Get(ctx, "k")
	require.False(t, found, "errors are not cached")
}
