package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"holocron/config"
	deliverycontext "holocron/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(ctx))
		deliverycontext.GetLogger(ctx).Info("inside")

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("generates an id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEmpty(t, requestID)
		assert.Contains(t, buf.String(), requestID)
	})

	t.Run("keeps the client id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), `"request_id":"client-id"`)
	})

	t.Run("replaces a malformed client id", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("x", 200)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, bad)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, bad, got)
			assert.Len(t, got, 36)
		}
	})
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(debug bool, buf *bytes.Buffer) *echo.Echo {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		logger := slog.New(slog.NewJSONHandler(buf, nil))

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/planets/:id", func(c echo.Context) error {
			deliverycontext.SetUserID(c, 3)

			return c.NoContent(http.StatusNotFound)
		})

		return e
	}

	t.Run("debug logs every request", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(true, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/planets/9?x=1", nil))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "HTTP Request", line["msg"])
		assert.Equal(t, "WARN", line["level"])
		assert.Equal(t, float64(http.StatusNotFound), line["status"])
		assert.Equal(t, "/planets/:id", line["route"])
		assert.Equal(t, "x=1", line["query"])
		assert.Equal(t, float64(3), line["user_id"])
	})

	t.Run("silent otherwise", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(false, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/planets/9", nil))
		assert.Empty(t, buf.String())
	})
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusOK))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusConflict))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusServiceUnavailable))
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("0f8e2c1a-trace"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("line\nbreak"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}
