package suggest

import (
	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/logo"
)

// Batch is the result of one suggestion round trip. Once any suggestion of
// the batch has been applied the batch is consumed.
//
// A Batch is not safe for concurrent use.
type Batch struct {
	ID          string       `json:"id"`
	Provider    string       `json:"provider"`
	Model       string       `json:"model"`
	Cached      bool         `json:"cached"`
	Suggestions []Suggestion `json:"suggestions"`

	consumed bool
}

// Apply merges suggestion i into s with the template merge rule. It fails
// with NOT_FOUND for an out-of-range index, SUGGESTION_CONSUMED if the batch
// was already applied and INVALID_SHAPE for an unknown shape. A failed Apply
// leaves both the store and the batch unchanged.
func (b *Batch) Apply(s *logo.Store, i int) (Suggestion, error) {
	if b.consumed {
		return Suggestion{}, apperr.New(apperr.ErrCodeSuggestionConsumed, "suggestions from batch %s were already applied", b.ID)
	}
	if i < 0 || i >= len(b.Suggestions) {
		return Suggestion{}, apperr.New(apperr.ErrCodeNotFound, "suggestion %d not found (have %d)", i+1, len(b.Suggestions))
	}

	sg := b.Suggestions[i]
	p, err := sg.Partial()
	if err != nil {
		return Suggestion{}, err
	}
	if err := s.ApplySuggestion(p); err != nil {
		return Suggestion{}, err
	}
	b.consumed = true
	return sg, nil
}

// Consumed reports whether a suggestion of the batch has been applied.
func (b *Batch) Consumed() bool { return b.consumed }
