// Package context carries request-scoped values between the echo layer and the
// use cases: the request id, a logger tagged with it, and the acting user.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is the key type for values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyUserID    ContextKey = "user_id"

	// HeaderXRequestID is read from the request and echoed on the response.
	HeaderXRequestID = "X-Request-Id"
)

func fromEcho[T any](c echo.Context, key ContextKey) (T, bool) {
	v, ok := c.Get(string(key)).(T)

	return v, ok
}

func fromContext[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// GetRequestID returns the id set by the request-id middleware. Outside of it
// a fresh uuid is returned so error envelopes always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := fromEcho[string](c, KeyRequestID); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no id was stored.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := fromContext[string](ctx, KeyRequestID)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := fromContext[*slog.Logger](ctx, KeyLogger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work and tests.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetUserID records the acting user resolved by the identity middleware.
func SetUserID(c echo.Context, userID uint) {
	c.Set(string(KeyUserID), userID)
}

func GetUserID(c echo.Context) (uint, bool) {
	return fromEcho[uint](c, KeyUserID)
}

func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	return fromContext[uint](ctx, KeyUserID)
}
