package suggest

import (
	"context"
	"net/http"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
)

// ProviderKind names a model vendor.
type ProviderKind string

// Supported providers.
const (
	ProviderOpenAI    ProviderKind = "openai"
	ProviderAnthropic ProviderKind = "anthropic"
)

// Provider completes a prompt with a language model.
type Provider interface {
	Name() string
	Model() string
	// Complete returns the model's text answer. Errors are coded
	// NETWORK_ERROR, UNAUTHORIZED, RATE_LIMITED or TIMEOUT.
	Complete(ctx context.Context, p Prompt) (string, error)
}

// ProviderFactory creates a provider for an API key.
type ProviderFactory func(apiKey string) (Provider, error)

// NewProvider creates a provider of the given kind. An empty model selects
// the provider default.
func NewProvider(kind ProviderKind, apiKey, model string) (Provider, error) {
	switch kind {
	case ProviderOpenAI, "":
		return NewOpenAIProvider(apiKey, model), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(apiKey, model), nil
	}
	return nil, apperr.New(apperr.ErrCodeUnsupported, "unknown AI provider: %s (valid: openai, anthropic)", kind)
}

// NewProviderFactory returns a factory for kind and model.
func NewProviderFactory(kind ProviderKind, model string) ProviderFactory {
	return func(apiKey string) (Provider, error) {
		return NewProvider(kind, apiKey, model)
	}
}

// statusError converts an HTTP status reported by a vendor SDK into a coded
// error.
func statusError(provider string, status int, cause error) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperr.Wrap(apperr.ErrCodeUnauthorized, cause, "%s rejected the API key", provider)
	case http.StatusTooManyRequests:
		return apperr.Wrap(apperr.ErrCodeRateLimited, cause, "%s rate limit exceeded", provider)
	}
	return apperr.Wrap(apperr.ErrCodeNetwork, cause, "failed to get AI suggestions from %s", provider)
}

// contextError reports cancellation and deadline errors, or returns nil.
func contextError(ctx context.Context, provider string, cause error) error {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return apperr.Wrap(apperr.ErrCodeTimeout, cause, "%s request timed out", provider)
	case context.Canceled:
		return apperr.Wrap(apperr.ErrCodeNetwork, ctx.Err(), "%s request cancelled", provider)
	}
	return nil
}
