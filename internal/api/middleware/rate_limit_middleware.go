package middleware

import (
	"net"
	"net/http"

	"github.com/RoyceAzure/lab/megano/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
	"github.com/RoyceAzure/lab/megano/internal/util"
	"github.com/rs/zerolog"
)

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware 以來源 IP 限流, 需放在 middleware.RealIP 之後
// limiter 故障時放行
func RateLimitMiddleware(limiter ratelimit.Limiter, logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.Warn().Err(err).Str("request_id", util.GetRequestIDFromContext(r.Context())).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn().Str("ip", ip).Str("url", r.URL.Path).Msg("rate limited")
				api.ErrorJSON(w, int(er.TooManyRequestsCode), nil, er.ErrStrMap[er.TooManyRequestsCode])
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
