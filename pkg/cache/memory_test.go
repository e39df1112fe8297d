package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ctx = context.Background()

func TestSetExAndGet(t *testing.T) {
	c := NewMemoryCache()

	assert.NoError(t, c.SetEx(ctx, "k", "v", time.Minute))

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", got)

	missing, err := c.Get(ctx, "absent")
	assert.NoError(t, err)
	assert.Empty(t, missing)
}

func TestExpiredEntryEvictedOnRead(t *testing.T) {
	c := NewMemoryCache()

	assert.NoError(t, c.SetEx(ctx, "k", "v", -time.Second))

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpire(t *testing.T) {
	c := NewMemoryCache()

	assert.NoError(t, c.SetEx(ctx, "k", "v", time.Minute))
	assert.NoError(t, c.Expire(ctx, "k", -time.Second))

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestCleanupExpired(t *testing.T) {
	c := NewMemoryCache()

	c.SetEx(ctx, "dead", "v", -time.Second)
	c.SetEx(ctx, "live", "v", time.Minute)

	assert.Equal(t, 1, c.CleanupExpired())

	got, _ := c.Get(ctx, "live")
	assert.Equal(t, "v", got)
}

func TestDelete(t *testing.T) {
	c := NewMemoryCache()

	c.SetEx(ctx, "k", "v", time.Minute)
	assert.NoError(t, c.Delete(ctx, "k"))

	got, _ := c.Get(ctx, "k")
	assert.Empty(t, got)
}
