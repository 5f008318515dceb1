package gormdb

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"holocron/config"
	deliverycontext "holocron/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg, DriverSQLite), &buf
}

func sqlFn() (string, int64) {
	return "SELECT * FROM planets", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("errors are logged", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
		assert.Contains(t, buf.String(), "gorm query failed")
		assert.Contains(t, buf.String(), `"driver":"sqlite"`)
	})

	t.Run("expected errors are not logged as failures", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrDuplicatedKey)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrForeignKeyViolated)
		assert.Empty(t, buf.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "gorm slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newTestGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT * FROM planets")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newTestGormLogger(true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
		assert.Empty(t, buf.String())
	})

	t.Run("request logger is used", func(t *testing.T) {
		l, _ := newTestGormLogger(false)

		var reqBuf bytes.Buffer
		reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-7"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlFn, assert.AnError)
		assert.Contains(t, reqBuf.String(), `"request_id":"req-7"`)
	})
}
