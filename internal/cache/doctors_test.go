package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtour-server/internal/models"
)

func newTestCache(t *testing.T) (*RedisDoctorCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDoctorCache(client, time.Minute), mr
}

func TestDoctorCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Zero(t, gen)

	_, ok, err := c.Get(ctx, gen, "Beijing")
	require.NoError(t, err)
	assert.False(t, ok)

	doctors := []models.Doctor{{ID: 1, Name: "Dr. Wang", City: "Beijing", Price: 300}}
	require.NoError(t, c.Set(ctx, gen, "Beijing", doctors))
	require.NoError(t, c.Set(ctx, gen, "", []models.Doctor{}))

	got, ok, err := c.Get(ctx, gen, "Beijing")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, doctors, got)

	got, ok, err = c.Get(ctx, gen, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestDoctorCacheInvalidateAndExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, "Beijing", []models.Doctor{{ID: 1}}))
	require.NoError(t, c.Set(ctx, 0, "Shanghai", []models.Doctor{{ID: 2}}))
	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists("medtour:doctors:0"))

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, gen)

	for _, city := range []string{"Beijing", "Shanghai"} {
		_, ok, err := c.Get(ctx, gen, city)
		require.NoError(t, err)
		assert.False(t, ok, city)
	}

	require.NoError(t, c.Set(ctx, gen, "Beijing", []models.Doctor{{ID: 1}}))
	mr.FastForward(2 * time.Minute)
	_, ok, err := c.Get(ctx, gen, "Beijing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDoctorCacheIgnoresWritesFromOldGeneration(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	before, err := c.Generation(ctx)
	require.NoError(t, err)

	// an admin write lands between the reader's store query and its cache write
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, before, "All", []models.Doctor{{ID: 1, Name: "Dr. Old"}}))

	current, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before, current)

	_, ok, err := c.Get(ctx, current, "All")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
