package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Rendered union")

	out := buf.String()
	if !strings.Contains(out, "Rendered union (") {
		t.Errorf("progress output = %q, want message with elapsed time", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext() = nil without attached logger")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if got := loggerFromContext(ctx); got != custom {
		t.Error("loggerFromContext() did not return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnRenderStart(ctx, "union", 2, 3)
	h.OnRenderComplete(ctx, "union", time.Millisecond, nil)
	h.OnRenderComplete(ctx, "union", time.Millisecond, errors.New("boom"))
	h.OnDeduplicated(ctx, "union")
	h.OnCacheHit(ctx, "file")
	h.OnCacheMiss(ctx, "file")
	h.OnCacheSet(ctx, "file", 128)
	h.OnCacheError(ctx, "redis", errors.New("down"))

	out := buf.String()
	for _, want := range []string{"render start", "render done", "render failed", "render shared", "cache hit", "cache miss", "cache set", "cache error"} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output missing %q", want)
		}
	}
}
