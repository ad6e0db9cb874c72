package middleware

import (
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/megano/internal/constants"
	"github.com/RoyceAzure/lab/megano/internal/util"
	"github.com/google/uuid"
)

// 外部帶入的 request id 過長就不採用
const maxRequestIDLen = 64

// RequestIdMiddleware 沿用 header 帶入的 request id, 沒有就產生一個, 並回寫到 response header
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(constants.RequestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}
		w.Header().Set(constants.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(util.WithRequestID(r.Context(), requestID)))
	})
}
