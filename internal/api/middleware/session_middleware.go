package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	er "github.com/RoyceAzure/lab/megano/internal/pkg/rj_error"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/RoyceAzure/lab/megano/internal/util"
	"github.com/rs/zerolog"
)

// SessionCookie session id 只放在 HttpOnly cookie
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (c *SessionCookie) Set(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type sessionHolderKey struct{}

type sessionHolder struct {
	session *model.Session
}

func withSessionHolder(ctx context.Context, h *sessionHolder) context.Context {
	return context.WithValue(ctx, sessionHolderKey{}, h)
}

func holdSession(ctx context.Context, s *model.Session) {
	if h, ok := ctx.Value(sessionHolderKey{}).(*sessionHolder); ok {
		h.session = s
	}
}

// SessionMiddleware 每個請求都帶 session, 沒有或已過期就建立匿名 session
func SessionMiddleware(sessions service.ISessionService, cookie *SessionCookie, logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var session *model.Session
			if c, err := r.Cookie(cookie.Name); err == nil && c.Value != "" {
				session, err = sessions.Get(ctx, c.Value)
				if err != nil && !errors.Is(err, redis_repo.ErrSessionNotFound) {
					logger.Error().Err(err).Str("request_id", util.GetRequestIDFromContext(ctx)).Msg("failed to load session")
					api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
					return
				}
			}

			if session == nil {
				var err error
				session, err = sessions.Start(ctx)
				if err != nil {
					logger.Error().Err(err).Str("request_id", util.GetRequestIDFromContext(ctx)).Msg("failed to start session")
					api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
					return
				}
				cookie.Set(w, session.ID)
			}

			holdSession(ctx, session)
			next.ServeHTTP(w, r.WithContext(util.WithSession(ctx, session)))
		})
	}
}

// 驗證 session 是否已登入
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !util.GetSessionFromContext(r.Context()).IsAuthenticated() {
			api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}
