// Package context carries request-scoped values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from the request and echoed on every response.
const HeaderXRequestID = echo.HeaderXRequestID

// Scope is the per-request state attached by the request id middleware.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
}

type scopeKey struct{}

// WithScope attaches scope to ctx.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope attached to ctx, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)

	return scope, ok && scope != nil
}

// GetRequestID returns the id of the request behind c, or "" before the middleware ran.
func GetRequestID(c echo.Context) string {
	if scope, ok := ScopeFrom(c.Request().Context()); ok {
		return scope.RequestID
	}

	return ""
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ScopeFrom(ctx); ok && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}
