package suggest

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
)

// DefaultAnthropicModel is the model used when none is configured.
const DefaultAnthropicModel = "claude-3-5-sonnet-20241022"

// AnthropicClient abstracts the Anthropic client for testing.
type AnthropicClient interface {
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

type anthropicClientWrapper struct {
	client anthropic.Client
}

func (w *anthropicClientWrapper) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return w.client.Messages.New(ctx, params)
}

// AnthropicProvider implements Provider with the messages API.
type AnthropicProvider struct {
	client AnthropicClient
	model  string
}

// NewAnthropicProvider creates a provider for apiKey.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropicProviderWithClient(&anthropicClientWrapper{client: client}, model)
}

// NewAnthropicProviderWithClient creates a provider with a custom client.
func NewAnthropicProviderWithClient(client AnthropicClient, model string) *AnthropicProvider {
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicProvider{client: client, model: model}
}

// Name returns "anthropic".
func (p *AnthropicProvider) Name() string { return string(ProviderAnthropic) }

// Model returns the configured model.
func (p *AnthropicProvider) Model() string { return p.model }

// Complete sends the prompt with the system text in the dedicated system
// parameter. The messages API is used with its default temperature.
func (p *AnthropicProvider) Complete(ctx context.Context, pr Prompt) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(pr.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(pr.User)),
		},
	}
	if pr.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: pr.System}}
	}

	msg, err := p.client.CreateMessage(ctx, params)
	if err != nil {
		if cerr := contextError(ctx, p.Name(), err); cerr != nil {
			return "", cerr
		}
		return "", statusError(p.Name(), anthropicStatus(err), err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", apperr.New(apperr.ErrCodeNetwork, "anthropic returned no text")
	}
	return b.String(), nil
}

func anthropicStatus(err error) int {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
