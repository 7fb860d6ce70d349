// Package contexthelpers carries per-request values through the context.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const (
	isAuthenticatedContextKey     = contextKey("isAuthenticated")
	authenticatedUserIDContextKey = contextKey("authenticatedUserID")
	traceIDContextKey             = contextKey("traceID")
)

// AuthenticateContext marks the request as belonging to the given user.
func AuthenticateContext(r *http.Request, userID int64) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, isAuthenticatedContextKey, true)
	ctx = context.WithValue(ctx, authenticatedUserIDContextKey, userID)
	return r.WithContext(ctx)
}

// WithAuthenticatedUserID returns a context carrying the user ID. Intended for
// tests and background jobs that bypass the HTTP middleware.
func WithAuthenticatedUserID(ctx context.Context, userID int64) context.Context {
	ctx = context.WithValue(ctx, isAuthenticatedContextKey, true)
	return context.WithValue(ctx, authenticatedUserIDContextKey, userID)
}

func IsAuthenticated(ctx context.Context) bool {
	isAuthenticated, ok := ctx.Value(isAuthenticatedContextKey).(bool)
	if !ok {
		return false
	}

	return isAuthenticated
}

func AuthenticatedUserID(ctx context.Context) int64 {
	userID, ok := ctx.Value(authenticatedUserIDContextKey).(int64)
	if !ok {
		return 0
	}

	return userID
}

// SetTraceID attaches a request trace identifier to the context.
func SetTraceID(r *http.Request, traceID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), traceIDContextKey, traceID))
}

func TraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDContextKey).(string)
	if !ok {
		return ""
	}

	return traceID
}
