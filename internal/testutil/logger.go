// Package testutil holds helpers shared by the unifiedjson test suites:
// workbook fixtures built with excelize and a logger that writes conversion
// warnings and server logs to the test log.
package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level logger writing through t.Log, so
// conversion warnings show up next to the failing assertion.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	handler := slog.NewTextHandler(tbWriter{tb: t}, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler)
}

// tbWriter forwards each log line to the test log.
type tbWriter struct {
	tb testing.TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
