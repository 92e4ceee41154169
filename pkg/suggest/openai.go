package suggest

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
)

// DefaultOpenAIModel is the model used when none is configured.
const DefaultOpenAIModel = openai.GPT4

// OpenAIClient abstracts the OpenAI client for testing.
type OpenAIClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements Provider with the chat completions API.
type OpenAIProvider struct {
	client OpenAIClient
	model  string
}

// NewOpenAIProvider creates a provider for apiKey.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithClient(openai.NewClient(apiKey), model)
}

// NewOpenAIProviderWithClient creates a provider with a custom client.
func NewOpenAIProviderWithClient(client OpenAIClient, model string) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{client: client, model: model}
}

// Name returns "openai".
func (p *OpenAIProvider) Name() string { return string(ProviderOpenAI) }

// Model returns the configured model.
func (p *OpenAIProvider) Model() string { return p.model }

// Complete sends the prompt as a system and a user message.
func (p *OpenAIProvider) Complete(ctx context.Context, pr Prompt) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: pr.System},
			{Role: openai.ChatMessageRoleUser, Content: pr.User},
		},
		MaxTokens:   pr.MaxTokens,
		Temperature: float32(pr.Temperature),
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if cerr := contextError(ctx, p.Name(), err); cerr != nil {
			return "", cerr
		}
		return "", statusError(p.Name(), openAIStatus(err), err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.New(apperr.ErrCodeNetwork, "openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
