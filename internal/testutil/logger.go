// Package testutil is shared test scaffolding for padezh and its commands.
package testutil

import (
	"log/slog"
	"strings"
	"testing"
)

// NewTestLogger routes slog output into the test log at debug level. The
// inflector reports its rule and subject choices there, and go test prints
// them only for failed tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	h := slog.NewTextHandler(tlog{t}, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h)
}

type tlog struct {
	tb testing.TB
}

func (l tlog) Write(p []byte) (int, error) {
	l.tb.Helper()
	l.tb.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
