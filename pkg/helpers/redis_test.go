package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisJSON(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rdb.Close() }()
	ctx := context.Background()

	type item struct {
		Name string `json:"name"`
	}

	var got item
	ok, err := RedisGetJSON(ctx, rdb, "catalog:planet:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, RedisSetJSON(ctx, rdb, "catalog:planet:1", item{Name: "Tatooine"}, time.Minute))
	ok, err = RedisGetJSON(ctx, rdb, "catalog:planet:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Tatooine", got.Name)

	mr.FastForward(2 * time.Minute)
	ok, err = RedisGetJSON(ctx, rdb, "catalog:planet:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisDeletePrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	defer func() { _ = rdb.Close() }()
	ctx := context.Background()

	require.NoError(t, mr.Set("catalog:planets", "[]"))
	require.NoError(t, mr.Set("catalog:planet:1", "{}"))
	require.NoError(t, mr.Set("session:1", "x"))

	n, err := RedisDeletePrefix(ctx, rdb, "catalog:")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.False(t, mr.Exists("catalog:planets"))
	assert.True(t, mr.Exists("session:1"))

	mr.Close()
	_, err = RedisDeletePrefix(ctx, rdb, "catalog:")
	assert.Error(t, err)
}
