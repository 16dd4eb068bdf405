package viewcache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventiqo/eventiqo-backend/internal/platform/viewcache"
)

func TestCache_SetGet(t *testing.T) {
	c := viewcache.New(time.Minute)
	key := viewcache.Key("owner-1", "panel")

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, 42)
	v, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestCache_Expiry(t *testing.T) {
	c := viewcache.New(time.Millisecond)
	key := viewcache.Key("owner-1", "panel")

	c.Set(key, "stale")
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestCache_InvalidateByOwnerPrefix(t *testing.T) {
	c := viewcache.New(time.Minute)
	c.Set(viewcache.Key("owner-1", "panel"), 1)
	c.Set(viewcache.Key("owner-1", "finance"), 2)
	c.Set(viewcache.Key("owner-2", "panel"), 3)

	c.Invalidate("owner-1")

	_, ok := c.Get(viewcache.Key("owner-1", "panel"))
	assert.False(t, ok)
	_, ok = c.Get(viewcache.Key("owner-1", "finance"))
	assert.False(t, ok)

	v, ok := c.Get(viewcache.Key("owner-2", "panel"))
	require.True(t, ok)
	assert.Equal(t, 3, v)
}
