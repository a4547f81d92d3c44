package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) *gormSlogLogger {
	cfg := &config.Config{Storage: &config.StorageConfig{SlowQueryThreshold: 100 * time.Millisecond}}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "query failure", elapsed: time.Millisecond, err: errors.New("boom"), want: "GORM query failed"},
		{name: "missing row is quiet", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query outside debug", elapsed: time.Millisecond},
		{name: "fast query in debug", debug: true, elapsed: time.Millisecond, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug)
			l.now = func() time.Time { return begin.Add(tt.elapsed) }

			l.Trace(context.Background(), begin, sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "sql=\"SELECT 1\"")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newTestGormLogger(&base, false)
	requestLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Error(ctx, "lost connection to %s", "db")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
	assert.Contains(t, scoped.String(), "lost connection to db")
}

func TestPoolMonitor_Sample(t *testing.T) {
	var buf bytes.Buffer
	stats := sql.DBStats{}
	m := &poolMonitor{
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		stats:  func() sql.DBStats { return stats },
	}

	m.sample(context.Background())
	assert.Empty(t, buf.String())

	stats.WaitCount = 2
	stats.WaitDuration = 200 * time.Millisecond
	m.sample(context.Background())
	assert.Contains(t, buf.String(), "Postgres pool wait detected")
	assert.Contains(t, buf.String(), "avg_wait=100ms")

	buf.Reset()
	stats.WaitCount = 3
	stats.WaitDuration = 201 * time.Millisecond
	m.sample(context.Background())
	assert.Contains(t, buf.String(), "Postgres pool wait observed")
}
