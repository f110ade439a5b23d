package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SeasonClock is fixed at noon UTC on the given date, the anchor used by the document fixtures.
func SeasonClock(year int, month time.Month, day int) func() time.Time {
	return NowAt(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// NewBufferLogger returns a debug-level text logger and the buffer it writes to.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// NewRecorderWithShutdown returns an in-memory recorder and a no-op shutdown.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}
