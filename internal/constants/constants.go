package constants

import "time"

// for api context
type ContextKey string

const (
	SessionKey ContextKey = "session"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey    RequestID = "request_id"
	RequestIDHeader           = "X-Request-Id"
)

const (
	// multipart 上傳上限
	MaxUploadSize int64 = 10 << 20
	// 登入/註冊限流的 redis key 前綴
	SignInRateLimitPrefix = "ratelimit:sign-in"

	ShutdownTimeout = 30 * time.Second
)
