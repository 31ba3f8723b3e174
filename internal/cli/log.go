// Package cli implements the vennsets command-line interface.
//
// The CLI renders two-set diagrams to PNG files, runs the HTTP service and
// manages the local render cache. It is built on cobra; status output uses
// lipgloss and diagnostics go through charmbracelet/log on stderr.
//
// # Commands
//
//   - render: apply an operation to two element lists and write the diagram
//   - serve: run the HTTP API
//   - cache: inspect or clear the file cache
//   - history: list recent renders from the configured history store
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands accept --verbose (-v) for debug output. The logger travels in
// the command context and is handed to the pipeline runner and the server.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of a step with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered intersection (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
