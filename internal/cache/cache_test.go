package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	c := NewMemory()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	now = now.Add(24 * time.Hour)
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	value := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", value, 0))
	value[0] = 'z'

	got, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
	got[1] = 'z'

	again, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoop()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheSweepsExpiredOnSet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }

	for i := 0; i < 5000; i++ {
		require.NoError(t, c.Set(ctx, "case-studies:list:q="+strconv.Itoa(i), []byte("{}"), time.Minute))
	}
	require.Equal(t, 5000, c.Len())

	now = now.Add(time.Hour)
	require.NoError(t, c.Set(ctx, "fresh", []byte("{}"), time.Minute))
	assert.Equal(t, 1, c.Len())

	got, ok, err := c.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("{}"), got)
}

func TestMemoryCacheCapsEntries(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryWithLimit(3)

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Set(ctx, "k"+strconv.Itoa(i), []byte("v"), time.Hour))
		assert.LessOrEqual(t, c.Len(), 3)
	}
	_, ok, _ := c.Get(ctx, "k9")
	assert.True(t, ok)

	// Overwriting an existing key never evicts another one.
	require.NoError(t, c.Set(ctx, "k9", []byte("w"), time.Hour))
	assert.Equal(t, 3, c.Len())
}

func TestMemoryCacheGetKeepsRefreshedEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("old"), time.Minute))
	now = now.Add(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "k", []byte("new"), time.Minute))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", string(got))
}
