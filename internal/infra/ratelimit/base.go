package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Limiter 以 key 區分流量來源, 例如 路由 + client ip
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type LimiterConfig struct {
	Capacity int           // 桶容量 / 窗口內最大請求數
	RatePS   int           // token bucket 每秒補充數
	Window   time.Duration // fixed window 長度
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity: 100,
		RatePS:   1,
		Window:   time.Second,
	}
}

func (c LimiterConfig) normalize() LimiterConfig {
	def := GetDefaultLimiterConfig()
	if c.Capacity <= 0 {
		c.Capacity = def.Capacity
	}
	if c.RatePS <= 0 {
		c.RatePS = def.RatePS
	}
	if c.Window <= 0 {
		c.Window = def.Window
	}
	return c
}

// Kind 限流實作
type Kind string

const (
	KindRedis  Kind = "redis"  // 多台服務共用, token bucket
	KindMemory Kind = "memory" // 單機, fixed window
)

// New 依 kind 建立 limiter, 空字串視為 redis
func New(kind Kind, client RedisClient, prefix string, config *LimiterConfig) (Limiter, error) {
	switch kind {
	case "", KindRedis:
		if client == nil {
			return nil, fmt.Errorf("ratelimit: %s limiter needs a redis client", KindRedis)
		}
		return NewRedisTokenBucket(client, prefix, config), nil
	case KindMemory:
		return NewFixedWindow(config), nil
	}
	return nil, fmt.Errorf("ratelimit: unknown limiter kind %q", kind)
}
