package cache

import "fmt"

// Keyer builds cache keys.
type Keyer interface {
	// SuggestionKey identifies a suggestion response for a provider, model
	// and prompt hash.
	SuggestionKey(provider, model, promptHash string) string
	// ArtifactKey identifies a rendered artifact for a configuration hash.
	ArtifactKey(configHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Pixels int    `json:"pixels,omitempty"`
	Shadow bool   `json:"shadow"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SuggestionKey returns "suggest:<provider>:<model>:<promptHash>".
func (DefaultKeyer) SuggestionKey(provider, model, promptHash string) string {
	return fmt.Sprintf("suggest:%s:%s:%s", provider, model, promptHash)
}

// ArtifactKey returns "artifact:<hash(configHash, opts)>".
func (DefaultKeyer) ArtifactKey(configHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", configHash, opts)
}
