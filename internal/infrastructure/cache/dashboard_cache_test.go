package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedView struct {
	Score int    `json:"score"`
	Grade string `json:"grade"`
}

func TestInMemoryDashboardCache(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryDashboardCache(time.Minute)
	userID := uuid.New()

	t.Run("miss on empty cache", func(t *testing.T) {
		var out cachedView
		err := cache.Get(ctx, userID, "financial", &out)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, userID, "financial", cachedView{Score: 82, Grade: "B"}))

		var out cachedView
		require.NoError(t, cache.Get(ctx, userID, "financial", &out))
		assert.Equal(t, 82, out.Score)
		assert.Equal(t, "B", out.Grade)
	})

	t.Run("views are isolated per user", func(t *testing.T) {
		var out cachedView
		err := cache.Get(ctx, uuid.New(), "financial", &out)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("invalidate removes the view", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, userID, "health", cachedView{Score: 70}))
		require.NoError(t, cache.Invalidate(ctx, userID, "health"))

		var out cachedView
		err := cache.Get(ctx, userID, "health", &out)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("invalidate with no views is a no-op", func(t *testing.T) {
		assert.NoError(t, cache.Invalidate(ctx, userID))
	})
}

func TestInMemoryDashboardCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryDashboardCache(time.Nanosecond)
	userID := uuid.New()

	require.NoError(t, cache.Set(ctx, userID, "wellbeing", cachedView{Score: 90}))
	time.Sleep(5 * time.Millisecond)

	var out cachedView
	err := cache.Get(ctx, userID, "wellbeing", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
