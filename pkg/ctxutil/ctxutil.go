// Package ctxutil carries the request ID through contexts. HTTP requests
// and gateway events both get one.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithNewRequestID stores a fresh random request ID in the context.
func WithNewRequestID(ctx context.Context) context.Context {
	return WithRequestID(ctx, uuid.NewString())
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
