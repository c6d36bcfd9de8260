package redis

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLeaderboard connects to the Redis named by FLAGQUIZ_TEST_REDIS_ADDR
// and uses keys private to the test.
func newTestLeaderboard(t *testing.T) *Leaderboard {
	t.Helper()

	addr := os.Getenv("FLAGQUIZ_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FLAGQUIZ_TEST_REDIS_ADDR not set")
	}

	client, err := NewClient(context.Background(), ClientConfig{Addr: addr})
	require.NoError(t, err)

	l := &Leaderboard{
		client:   client,
		key:      "test:" + t.Name() + ":best",
		namesKey: "test:" + t.Name() + ":names",
	}
	t.Cleanup(func() {
		client.Del(context.Background(), l.key, l.namesKey)
		_ = client.Close()
	})

	return l
}

func TestLeaderboard_SameNameDifferentPlayers(t *testing.T) {
	l := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, l.SubmitScore(ctx, "tg:1", "Alex", 5))
	require.NoError(t, l.SubmitScore(ctx, "tg:2", "Alex", 7))

	top, err := l.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "tg:2", top[0].PlayerKey)
	assert.Equal(t, "Alex", top[0].Player)
	assert.Equal(t, int64(7), top[0].Score)
	assert.Equal(t, "tg:1", top[1].PlayerKey)
	assert.Equal(t, "Alex", top[1].Player)

	require.NoError(t, l.Remove(ctx, "http-x"))

	top, err = l.Top(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	rank, err := l.Rank(ctx, "tg:1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rank)
}

func TestLeaderboard_KeepsBestScoreAndLatestName(t *testing.T) {
	l := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, l.SubmitScore(ctx, "tg:1", "Alex", 9))
	require.NoError(t, l.SubmitScore(ctx, "tg:1", "Sasha", 3))

	top, err := l.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(9), top[0].Score)
	assert.Equal(t, "Sasha", top[0].Player)

	require.NoError(t, l.Remove(ctx, "tg:1"))

	rank, err := l.Rank(ctx, "tg:1")
	require.NoError(t, err)
	assert.Zero(t, rank)

	name, err := l.client.HGet(ctx, l.namesKey, "tg:1").Result()
	assert.ErrorIs(t, err, redis.Nil)
	assert.Empty(t, name)
}
