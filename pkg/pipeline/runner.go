package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/logomaker/pkg/cache"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/observability"
	"github.com/matzehuels/logomaker/pkg/render"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	Config     logo.Config
	ConfigHash string
	Artifacts  map[render.Format][]byte
	Cached     map[render.Format]bool
	CacheHits  int
	Duration   time.Duration
}

// Filename returns the export file name for format f.
func (r *Result) Filename(f render.Format) string {
	return render.Filename(r.Config.Text, string(f))
}

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute builds the logo record and renders every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	s, err := Build(opts)
	if err != nil {
		return nil, err
	}
	return r.RenderConfig(ctx, s.Config(), opts)
}

// RenderConfig renders cfg in every format of opts, using cached artifacts
// where available. opts must have been validated.
func (r *Runner) RenderConfig(ctx context.Context, cfg logo.Config, opts Options) (*Result, error) {
	start := time.Now()
	formats := formatNames(opts.Formats)

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, formats)

	data, err := json.Marshal(cfg)
	if err != nil {
		hooks.OnRenderComplete(ctx, formats, time.Since(start), err)
		return nil, fmt.Errorf("serialize config for cache key: %w", err)
	}

	result := &Result{
		Config:     cfg,
		ConfigHash: cache.Hash(data),
		Artifacts:  make(map[render.Format][]byte, len(opts.Formats)),
		Cached:     make(map[render.Format]bool),
	}

	for _, f := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.ConfigHash, artifactKeyOpts(f, opts))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifacts[f] = data
				result.Cached[f] = true
				result.CacheHits++
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		out, err := RenderFormat(cfg, f, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, formats, time.Since(start), err)
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		result.Artifacts[f] = out

		if err := r.Cache.Set(ctx, key, out, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(out))
		}
	}

	result.Duration = time.Since(start)
	hooks.OnRenderComplete(ctx, formats, result.Duration, nil)

	r.Logger.Debug("rendered logo",
		"formats", formats,
		"cache_hits", result.CacheHits,
		"duration", result.Duration)

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func formatNames(fs []render.Format) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
