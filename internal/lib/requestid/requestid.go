// Package requestid carries the X-Request-ID of an incoming request through a context.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header holding the request id.
const Header = "X-Request-ID"

type contextKey struct{}

// WithRequestID returns a copy of ctx carrying rid.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, contextKey{}, rid)
}

// FromContext returns the request id stored in ctx, or an empty string.
func FromContext(ctx context.Context) string {
	if rid, ok := ctx.Value(contextKey{}).(string); ok {
		return rid
	}
	return ""
}

// Ensure returns rid, or a freshly generated id when rid is empty.
func Ensure(rid string) string {
	if rid == "" {
		return uuid.NewString()
	}
	return rid
}
