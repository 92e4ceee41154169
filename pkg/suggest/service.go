package suggest

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/logomaker/pkg/cache"
	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/observability"
)

// Request is one suggestion round trip.
type Request struct {
	APIKey      string      `json:"apiKey"`
	Description string      `json:"description"`
	Config      logo.Config `json:"config"`
	// Refresh bypasses the cached answer for an identical prompt.
	Refresh bool `json:"refresh,omitempty"`
}

// Service performs suggestion round trips.
//
// The Service holds no per-request state; one instance may serve concurrent
// requests if its cache does.
type Service struct {
	factory ProviderFactory
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	logger  *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache caches raw model answers per prompt.
func WithCache(c cache.Cache, k cache.Keyer) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
		if k != nil {
			s.keyer = k
		}
	}
}

// WithTTL sets the lifetime of cached answers.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithLogger sets the service logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a service. Caching is disabled unless WithCache is given.
func NewService(factory ProviderFactory, opts ...Option) *Service {
	s := &Service{
		factory: factory,
		cache:   cache.NewNullCache(),
		keyer:   cache.NewDefaultKeyer(),
		ttl:     cache.TTLSuggestion,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suggest validates the request, asks the provider and parses the answer.
// Validation failures are returned before any provider is created.
func (s *Service) Suggest(ctx context.Context, req Request) (*Batch, error) {
	if err := apperr.ValidateAPIKey(req.APIKey); err != nil {
		return nil, err
	}
	if err := apperr.ValidateBusinessDescription(req.Description); err != nil {
		return nil, err
	}

	prompt, err := NewPrompt(req.Description, ContextFrom(req.Config))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "build prompt")
	}

	provider, err := s.factory(req.APIKey)
	if err != nil {
		return nil, err
	}

	key := s.keyer.SuggestionKey(provider.Name(), provider.Model(), cache.Hash([]byte(prompt.System+"\n"+prompt.User)))
	if !req.Refresh {
		if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			if list, err := Parse(string(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "suggest")
				s.logger.Debug("suggestions from cache", "provider", provider.Name(), "count", len(list))
				return newBatch(provider, list, true), nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "suggest")
	}

	hooks := observability.Suggest()
	hooks.OnSuggestStart(ctx, provider.Name(), provider.Model())
	start := time.Now()

	raw, err := provider.Complete(ctx, prompt)
	var list []Suggestion
	if err == nil {
		list, err = Parse(raw)
	}
	hooks.OnSuggestComplete(ctx, provider.Name(), provider.Model(), len(list), time.Since(start), err)
	if err != nil {
		s.logger.Debug("suggestion request failed", "provider", provider.Name(), "err", err)
		return nil, err
	}

	if err := s.cache.Set(ctx, key, []byte(raw), s.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "suggest", len(raw))
	}

	s.logger.Debug("received suggestions",
		"provider", provider.Name(),
		"model", provider.Model(),
		"count", len(list),
		"duration", time.Since(start))
	return newBatch(provider, list, false), nil
}

func newBatch(p Provider, list []Suggestion, cached bool) *Batch {
	for i := range list {
		list[i].ID = uuid.NewString()
	}
	return &Batch{
		ID:          uuid.NewString(),
		Provider:    p.Name(),
		Model:       p.Model(),
		Cached:      cached,
		Suggestions: list,
	}
}
