package util

import (
	"context"

	"github.com/RoyceAzure/lab/megano/internal/constants"
	"github.com/RoyceAzure/lab/megano/internal/domain/model"
)

func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, constants.SessionKey, session)
}

// GetSessionFromContext 沒有 session 時回傳 nil
func GetSessionFromContext(ctx context.Context) *model.Session {
	if v, ok := ctx.Value(constants.SessionKey).(*model.Session); ok {
		return v
	}
	return nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return "unknown"
}
