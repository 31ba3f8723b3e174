package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRenderStart(_ context.Context, op string, sizeA, sizeB int) {
	h.logger.Debug("render start", "op", op, "a", sizeA, "b", sizeB)
}

func (h *logHooks) OnRenderComplete(_ context.Context, op string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "op", op, "duration", d, "err", err)
		return
	}
	h.logger.Debug("render done", "op", op, "duration", d)
}

func (h *logHooks) OnDeduplicated(_ context.Context, op string) {
	h.logger.Debug("render shared", "op", op)
}

func (h *logHooks) OnCacheHit(_ context.Context, backend string) {
	h.logger.Debug("cache hit", "backend", backend)
}

func (h *logHooks) OnCacheMiss(_ context.Context, backend string) {
	h.logger.Debug("cache miss", "backend", backend)
}

func (h *logHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.logger.Debug("cache set", "backend", backend, "bytes", size)
}

func (h *logHooks) OnCacheError(_ context.Context, backend string, err error) {
	h.logger.Warn("cache error", "backend", backend, "err", err)
}
