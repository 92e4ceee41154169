// Package server exposes the logo core over HTTP.
//
// # Overview
//
// The server is stateless: every request builds its own record from the
// defaults, a template, an overlay and optional form input, so the client
// stays the owner of the configuration it is editing.
//
//	GET  /healthz
//	GET  /api/shapes
//	GET  /api/shapes/{kind}?size=120
//	GET  /api/templates
//	POST /api/render/{format}
//	POST /api/suggestions
//
// Suggestion requests are rate limited per client address.
//
// Errors are returned as {"code": "...", "message": "..."} with an HTTP status
// derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/matzehuels/logomaker/pkg/pipeline"
	"github.com/matzehuels/logomaker/pkg/suggest"
)

// Defaults for Config.
const (
	DefaultAddr      = ":8080"
	DefaultRateLimit = 10 // suggestion requests per minute
	DefaultBurst     = 3
	maxBodyBytes     = 1 << 20
)

// Config configures a Server.
type Config struct {
	Addr string

	Runner  *pipeline.Runner
	Suggest *suggest.Service

	// APIKey is used for suggestion requests that carry no key of their own.
	APIKey string

	// RateLimit is the number of suggestion requests allowed per minute,
	// with Burst requests allowed at once.
	RateLimit int
	Burst     int

	Logger *log.Logger
}

// Server is the HTTP API.
type Server struct {
	cfg     Config
	limiter *clientLimiter
	router  chi.Router
}

// New creates a server. Runner and Suggest default to uncached instances.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Suggest == nil {
		cfg.Suggest = suggest.NewService(suggest.NewProviderFactory(suggest.ProviderOpenAI, ""), suggest.WithLogger(cfg.Logger))
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}

	s := &Server{
		cfg:     cfg,
		limiter: newClientLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), cfg.Burst),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.cfg.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/shapes", s.handleShapes)
		r.Get("/shapes/{kind}", s.handleGeometry)
		r.Get("/templates", s.handleTemplates)
		r.Post("/render/{format}", s.handleRender)
		r.With(s.rateLimit).Post("/suggestions", s.handleSuggestions)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, notFound(r.URL.Path))
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
