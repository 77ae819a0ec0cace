package log

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type correlationIDType int

const sessionIDKey correlationIDType = iota

// WithSessionID returns a context which knows its session ID.
// A session spans everything done on behalf of one connection to a node: fetches,
// subscriptions, contract loads and vote submissions.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithNewSessionID does the same thing as WithSessionID but generates a new, random session ID.
func WithNewSessionID(ctx context.Context) context.Context {
	return WithSessionID(ctx, uuid.NewString())
}

// ExtractSessionID extracts the session id from a context object.
func ExtractSessionID(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id, true
	}
	return "", false
}

// ZContext returns the session id from ctx as a zap field, or a no-op field.
func ZContext(ctx context.Context) zap.Field {
	if id, ok := ExtractSessionID(ctx); ok {
		return zap.String("sessionId", id)
	}
	return zap.Skip()
}
