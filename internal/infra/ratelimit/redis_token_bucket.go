package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient 只需要能跑 script
type RedisClient interface {
	redis.Scripter
}

// RedisTokenBucket 多台服務共用的 token bucket
type RedisTokenBucket struct {
	LimiterConfig
	client RedisClient
	prefix string
	now    func() time.Time
}

func NewRedisTokenBucket(client RedisClient, prefix string, config *LimiterConfig) *RedisTokenBucket {
	cfg := GetDefaultLimiterConfig()
	if config != nil {
		cfg = config.normalize()
	}
	return &RedisTokenBucket{
		LimiterConfig: cfg,
		client:        client,
		prefix:        prefix,
		now:           time.Now,
	}
}

var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local rate = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local ttl = tonumber(ARGV[4])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local tokens = tonumber(bucket[1])
	local lastRefill = tonumber(bucket[2])

	if tokens == nil then
		tokens = capacity
		lastRefill = now
	end

	-- now 與 lastRefill 單位為毫秒
	local elapsed = math.max(0, now - lastRefill) / 1000
	tokens = math.min(capacity, tokens + elapsed * rate)

	local allowed = 0
	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	end

	redis.call('HSET', key, 'tokens', tostring(tokens), 'last_refill', tostring(now))
	redis.call('PEXPIRE', key, ttl)
	return allowed
`)

func (b *RedisTokenBucket) bucketKey(key string) string {
	return fmt.Sprintf("%s:%s", b.prefix, key)
}

// Allow redis 出錯時回傳 error, 是否放行由呼叫端決定
func (b *RedisTokenBucket) Allow(ctx context.Context, key string) (bool, error) {
	// 桶從空到滿所需時間之後即可丟棄
	ttl := time.Duration(b.Capacity/b.RatePS+1) * time.Second

	result, err := tokenBucketScript.Run(ctx, b.client,
		[]string{b.bucketKey(key)},
		b.Capacity,
		b.RatePS,
		b.now().UnixMilli(),
		ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to run token bucket: %w", err)
	}
	return result == 1, nil
}

var (
	_ Limiter = (*FixedWindow)(nil)
	_ Limiter = (*RedisTokenBucket)(nil)
)
