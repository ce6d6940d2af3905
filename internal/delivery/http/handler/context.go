package handler

import (
	"context"
)

// contextKey is the type for context keys
type contextKey string

// RequestIDContextKey is the key used to store the request ID in context
const RequestIDContextKey contextKey = "request_id"

// WithRequestID returns a copy of ctx carrying the request ID
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, id)
}

// GetRequestIDFromContext retrieves the request ID from request context
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}
