package redis_repo

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestGetRedisClient_Shared(t *testing.T) {
	mr := miniredis.RunT(t)

	c1, err := GetRedisClient(mr.Addr(), WithDB(0), WithPassword(""))
	require.NoError(t, err)
	c2, err := GetRedisClient(mr.Addr(), WithDB(0))
	require.NoError(t, err)
	require.Same(t, c1, c2)
}

func TestGetRedisClient_Unreachable(t *testing.T) {
	_, err := GetRedisClient("127.0.0.1:1", WithPassword("x"))
	require.Error(t, err)
}
