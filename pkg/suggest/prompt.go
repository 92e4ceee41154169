package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request defaults.
const (
	DefaultMaxTokens   = 1500
	DefaultTemperature = 0.8
	SuggestionCount    = 3
)

// SystemPrompt instructs the model to answer with a JSON array.
const SystemPrompt = "You are a professional logo designer. Analyze the current logo design and business description, " +
	"then provide 3 specific improvement suggestions. Each suggestion should include: shape, colors (hex codes), " +
	"text styling, and a brief explanation. Return your response as a JSON array with objects containing: " +
	"title, shape, shapeColor, textColor, backgroundColor, fontFamily, fontWeight, reasoning."

// Prompt is a provider-neutral completion request.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// NewPrompt builds the prompt for a business description and style context.
func NewPrompt(description string, c Context) (Prompt, error) {
	cfg, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return Prompt{}, err
	}
	user := fmt.Sprintf("Business: %s\n\nCurrent Logo Config: %s\n\nPlease suggest %d improved variations with specific design choices and reasoning.",
		strings.TrimSpace(description), cfg, SuggestionCount)
	return Prompt{
		System:      SystemPrompt,
		User:        user,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}, nil
}
