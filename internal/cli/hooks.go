package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/logomaker/pkg/observability"
)

// debugHooks logs every observability event at debug level.
type debugHooks struct {
	logger *log.Logger
}

func registerDebugHooks(l *log.Logger) {
	h := &debugHooks{logger: l}
	observability.SetRenderHooks(h)
	observability.SetSuggestHooks(h)
	observability.SetCacheHooks(h)
}

func (h *debugHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *debugHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "duration", d, "err", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", d)
}

func (h *debugHooks) OnSuggestStart(_ context.Context, provider, model string) {
	h.logger.Debug("suggest start", "provider", provider, "model", model)
}

func (h *debugHooks) OnSuggestComplete(_ context.Context, provider, model string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("suggest failed", "provider", provider, "model", model, "duration", d, "err", err)
		return
	}
	h.logger.Debug("suggest done", "provider", provider, "model", model, "count", count, "duration", d)
}

func (h *debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
