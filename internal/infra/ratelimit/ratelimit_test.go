package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func allowN(t *testing.T, l Limiter, key string, n int) int {
	t.Helper()
	allowed := 0
	for i := 0; i < n; i++ {
		ok, err := l.Allow(context.Background(), key)
		require.NoError(t, err)
		if ok {
			allowed++
		}
	}
	return allowed
}

func TestFixedWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	fw := NewFixedWindow(&LimiterConfig{Capacity: 3, Window: time.Second})
	fw.now = clock.Now

	require.Equal(t, 3, allowN(t, fw, "a", 5))
	// 其他 key 不受影響
	require.Equal(t, 3, allowN(t, fw, "b", 3))

	clock.Advance(time.Second)
	require.Equal(t, 3, allowN(t, fw, "a", 5))
}

func TestFixedWindow_SweepsExpiredKeys(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	fw := NewFixedWindow(&LimiterConfig{Capacity: 1, Window: time.Minute})
	fw.now = clock.Now

	allowN(t, fw, "a", 1)
	allowN(t, fw, "b", 1)
	clock.Advance(2 * time.Minute)
	allowN(t, fw, "c", 1)

	require.Len(t, fw.windows, 1)
}

func TestDefaultConfig(t *testing.T) {
	fw := NewFixedWindow(&LimiterConfig{})
	require.Equal(t, GetDefaultLimiterConfig(), fw.LimiterConfig)
}

func TestRedisTokenBucket(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	bucket := NewRedisTokenBucket(rdb, "ratelimit", &LimiterConfig{Capacity: 2, RatePS: 1})
	bucket.now = clock.Now

	require.Equal(t, 2, allowN(t, bucket, "sign-in:1.2.3.4", 4))
	require.True(t, mr.Exists("ratelimit:sign-in:1.2.3.4"))

	// 一秒補一個
	clock.Advance(time.Second)
	require.Equal(t, 1, allowN(t, bucket, "sign-in:1.2.3.4", 3))

	// 補充不會超過容量
	clock.Advance(10 * time.Second)
	require.Equal(t, 2, allowN(t, bucket, "sign-in:1.2.3.4", 3))

	require.Equal(t, 2, allowN(t, bucket, "sign-in:5.6.7.8", 2))
}

func TestRedisTokenBucket_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	bucket := NewRedisTokenBucket(rdb, "ratelimit", nil)
	ok, err := bucket.Allow(context.Background(), "k")
	require.Error(t, err)
	require.False(t, ok)
}

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	cfg := &LimiterConfig{Capacity: 1, RatePS: 1, Window: time.Minute}

	l, err := New(KindMemory, nil, "rl:", cfg)
	require.NoError(t, err)
	require.IsType(t, &FixedWindow{}, l)
	require.Equal(t, 1, allowN(t, l, "10.0.0.1", 3))

	l, err = New("", rdb, "rl:", cfg)
	require.NoError(t, err)
	require.IsType(t, &RedisTokenBucket{}, l)

	_, err = New(KindRedis, nil, "rl:", cfg)
	require.Error(t, err)

	_, err = New("leaky", rdb, "rl:", cfg)
	require.Error(t, err)
}
