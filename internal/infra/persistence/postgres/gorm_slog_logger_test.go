package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	deliverycontext "trailpack/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var base, scoped bytes.Buffer
	baseLogger := slog.New(slog.NewTextHandler(&base, nil))
	scopedLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))

	l := newGormSlogLogger(baseLogger, false)
	sql := func() (string, int64) { return "SELECT 1", 0 }

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Zero(t, base.Len())

	l.Trace(context.Background(), time.Now(), sql, nil)
	assert.Zero(t, base.Len(), "fast successful queries are only logged in debug mode")

	ctx := deliverycontext.WithScope(context.Background(), &deliverycontext.Scope{RequestID: "req-1", Logger: scopedLogger})
	l.Trace(ctx, time.Now(), sql, errors.New("disk I/O error"))
	assert.Zero(t, base.Len())
	assert.Contains(t, scoped.String(), "GORM query failed")
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "SELECT 1")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), true)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 1 }, nil)

	assert.Contains(t, buf.String(), "GORM query")
	assert.Contains(t, buf.String(), "rows=1")
}
