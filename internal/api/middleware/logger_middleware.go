package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/util"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Status 沒有呼叫 WriteHeader 時視為 200
func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// 記錄request 請求
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recoder := &StatusRecoder{
				ResponseWriter: w,
			}
			// session middleware 在內層, 請求結束後從 holder 取回
			holder := &sessionHolder{}
			next.ServeHTTP(recoder, r.WithContext(withSessionHolder(r.Context(), holder)))

			event := logger.Info()
			if recoder.Status() >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event = event.
				Str("request_id", util.GetRequestIDFromContext(r.Context())).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recoder.Status()).
				Dur("latency", time.Since(start))
			if s := holder.session; s != nil {
				event = event.Str("session_id", s.ID).Uint("profile_id", s.ProfileID)
			}
			event.Msg("request completed")
		})
	}
}
