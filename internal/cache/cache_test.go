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

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, time.Minute), mr
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	type payload struct {
		Brand string `json:"brand"`
	}

	require.NoError(t, c.SetJSON(ctx, "k", []payload{{Brand: "Baratza"}}))

	var got []payload
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, "Baratza", got[0].Brand)
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c, _ := newCache(t)

	var got []string
	hit, err := c.GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_EntriesExpire(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", "v"))
	mr.FastForward(2 * time.Minute)

	var got string
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Delete(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, UsedBeansKey("u1"), "v"))
	require.NoError(t, c.SetJSON(ctx, UsedEquipmentKey("u1"), "v"))
	require.NoError(t, c.Delete(ctx, InventoryKeys("u1")...))

	assert.False(t, mr.Exists(UsedBeansKey("u1")))
	assert.False(t, mr.Exists(UsedEquipmentKey("u1")))
}

func TestCache_NilIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	assert.NoError(t, c.SetJSON(ctx, "k", "v"))
	assert.NoError(t, c.Delete(ctx, "k"))

	var got string
	hit, err := c.GetJSON(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}
