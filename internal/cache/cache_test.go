package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client), mr
}

func TestCache_SetGetDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "otp", "+989122222111", "12345", time.Minute))

	val, err := c.Get(ctx, "otp", "+989122222111")
	require.NoError(t, err)
	assert.Equal(t, "12345", val)

	ok, err := c.Exists(ctx, "otp", "+989122222111")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "otp", "+989122222111"))
	_, err = c.Get(ctx, "otp", "+989122222111")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCache_NamespacesAreIsolated(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "otp", "k", "1", 0))
	_, err := c.Get(ctx, "otp_verified", "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.True(t, mr.Exists("otp:k"))
}

func TestCache_SetNX(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	ok, err := c.SetNX(ctx, "otp", "phone", "11111", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetNX(ctx, "otp", "phone", "22222", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	val, err := c.Get(ctx, "otp", "phone")
	require.NoError(t, err)
	assert.Equal(t, "11111", val)
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "otp", "phone", "1", time.Minute))
	ttl, err := c.GetTTL(ctx, "otp", "phone")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(time.Minute + time.Second)

	ok, err := c.Exists(ctx, "otp", "phone")
	require.NoError(t, err)
	assert.False(t, ok)

	// the key is free again once it expired
	set, err := c.SetNX(ctx, "otp", "phone", "2", time.Minute)
	require.NoError(t, err)
	assert.True(t, set)
}
