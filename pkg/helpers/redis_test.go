package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cached struct {
	Name string `json:"name"`
}

func TestRedisJSONHelpers(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()

	require.NoError(t, PingRedis(ctx, rdb))
	require.NoError(t, RedisSetJSON(ctx, rdb, "k", cached{Name: "alice"}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	var got cached
	ok, err := RedisGetJSON(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", got.Name)

	n, err := RedisDel(ctx, rdb, "k")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	ok, err = RedisGetJSON(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSetJSON_RejectsNonPositiveTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })

	for _, ttl := range []time.Duration{0, -time.Second} {
		err := RedisSetJSON(context.Background(), rdb, "k", cached{Name: "x"}, ttl)
		assert.ErrorIs(t, err, ErrNonPositiveTTL)
	}
	assert.False(t, mr.Exists("k"))
}
