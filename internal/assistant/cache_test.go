package assistant_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/assistant"
	"github.com/awf1337/instantly/internal/model"
)

func newTestCache(t *testing.T) (*assistant.ClassifyCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return assistant.NewClassifyCache(rdb, time.Minute, zap.NewNop()), mr
}

// newUnreachableCache returns a cache whose redis is not there at all, so
// every cache operation fails.
func newUnreachableCache(t *testing.T) *assistant.ClassifyCache {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return assistant.NewClassifyCache(rdb, time.Minute, zap.NewNop())
}

func TestClassifyCachePutGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "pitch our CRM")
	assert.False(t, ok)

	cache.Put(ctx, "pitch our CRM", "sales")

	val, ok := cache.Get(ctx, "pitch our CRM")
	require.True(t, ok)
	assert.Equal(t, "sales", val)

	// distinct prompts hash to distinct keys
	_, ok = cache.Get(ctx, "follow up with the client")
	assert.False(t, ok)
}

func TestClassifyCacheHitSkipsModelCall(t *testing.T) {
	cache, _ := newTestCache(t)

	calls := 0
	client := &clientMock{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float64) (string, error) {
			calls++
			return "sales", nil
		},
	}

	r := assistant.NewRouter(client, cache, zap.NewNop())

	category, _, err := r.Classify(context.Background(), "pitch our CRM")
	require.NoError(t, err)
	assert.Equal(t, model.CategorySales, category)
	require.Equal(t, 1, calls)

	category, raw, err := r.Classify(context.Background(), "pitch our CRM")
	require.NoError(t, err)
	assert.Equal(t, model.CategorySales, category)
	assert.Equal(t, "sales", raw)
	assert.Equal(t, 1, calls, "second classification must be served from the cache")
}

func TestClassifyUnrecognizedOutputNotCached(t *testing.T) {
	cache, mr := newTestCache(t)

	calls := 0
	client := &clientMock{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float64) (string, error) {
			calls++
			return "marketing", nil
		},
	}

	r := assistant.NewRouter(client, cache, zap.NewNop())

	for i := 0; i < 2; i++ {
		category, raw, err := r.Classify(context.Background(), "something ambiguous")
		require.NoError(t, err)
		assert.Equal(t, model.CategoryUnknown, category)
		assert.Equal(t, "marketing", raw)
	}

	assert.Equal(t, 2, calls, "unrecognized output must not be served from the cache")
	assert.Empty(t, mr.Keys())
}

func TestClassifyCacheFailOpen(t *testing.T) {
	cache := newUnreachableCache(t)

	calls := 0
	client := &clientMock{
		CompleteFunc: func(_ context.Context, _, _ string, _ int, _ float64) (string, error) {
			calls++
			return "followup", nil
		},
	}

	r := assistant.NewRouter(client, cache, zap.NewNop())

	// redis being down degrades to a cache miss, never an error
	category, raw, err := r.Classify(context.Background(), "follow up with the client")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFollowup, category)
	assert.Equal(t, "followup", raw)
	assert.Equal(t, 1, calls)
}
