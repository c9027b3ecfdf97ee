package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get round trip", func(t *testing.T) {
		c := NewMemory()
		c.SetEx(ctx, "key", []byte("value"), time.Minute)

		val, ok := c.Get(ctx, "key")
		require.True(t, ok)
		assert.Equal(t, []byte("value"), val)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewMemory()

		_, ok := c.Get(ctx, "unknown")
		assert.False(t, ok)
	})

	t.Run("del removes the key across ttls", func(t *testing.T) {
		c := NewMemory()
		c.SetEx(ctx, "key", []byte("short"), time.Minute)
		c.SetEx(ctx, "other", []byte("long"), time.Hour)

		c.Del(ctx, "key")

		_, ok := c.Get(ctx, "key")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "other")
		assert.True(t, ok)
	})

	t.Run("entries expire after their ttl", func(t *testing.T) {
		c := NewMemory()
		c.SetEx(ctx, "key", []byte("value"), 10*time.Millisecond)

		time.Sleep(50 * time.Millisecond)

		_, ok := c.Get(ctx, "key")
		assert.False(t, ok)
	})
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoop()

	c.SetEx(ctx, "key", []byte("value"), time.Minute)
	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}
