package logo

import (
	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// Store owns the authoritative Config plus the editor highlight state.
//
// A Store is not safe for concurrent use.
type Store struct {
	cfg      Config
	selected shape.Kind
	active   string
}

// New returns a store holding the default record.
func New() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// NewFrom returns a store initialised with cfg. The selected shape follows
// cfg.Shape.
func NewFrom(cfg Config) (*Store, error) {
	if !cfg.Shape.Valid() {
		return nil, invalidShape(cfg.Shape)
	}
	return &Store{cfg: cfg, selected: cfg.Shape}, nil
}

// Config returns a copy of the current record.
func (s *Store) Config() Config {
	return s.cfg
}

// Set overlays every present field of p. A present shape must be a defined
// kind; otherwise the record is left untouched and INVALID_SHAPE is returned.
// Numeric fields are not range-checked.
func (s *Store) Set(p Partial) error {
	if p.Shape != nil && !p.Shape.Valid() {
		return invalidShape(*p.Shape)
	}
	s.cfg = p.Overlay(s.cfg)
	if p.Shape != nil {
		s.selected = *p.Shape
	}
	return nil
}

// SetShape overlays the shape alone.
func (s *Store) SetShape(kind shape.Kind) error {
	return s.Set(Partial{Shape: &kind})
}

// ApplyTemplate overlays the seven fields of the named built-in template and
// marks it active. Unknown names fail with TEMPLATE_NOT_FOUND and change
// nothing.
func (s *Store) ApplyTemplate(name string) error {
	t, err := LookupTemplate(name)
	if err != nil {
		return err
	}
	if err := s.Set(t.Partial()); err != nil {
		return err
	}
	s.active = name
	return nil
}

// ApplySuggestion overlays an externally produced template-shaped delta.
// It follows the ApplyTemplate merge rule and clears the active template.
func (s *Store) ApplySuggestion(p Partial) error {
	if err := s.Set(p); err != nil {
		return err
	}
	s.active = ""
	return nil
}

// Reset replaces the whole record with the defaults.
func (s *Store) Reset() {
	s.cfg = Default()
	s.selected = DefaultShape
	s.active = ""
}

// Templates returns a copy of the built-in template table.
func (s *Store) Templates() map[string]Template {
	return Templates()
}

// Template returns the named built-in template.
func (s *Store) Template(name string) (Template, error) {
	return LookupTemplate(name)
}

// SelectedShape returns the shape highlighted in a shape picker.
func (s *Store) SelectedShape() shape.Kind { return s.selected }

// SelectedIndex returns the canonical index of the selected shape.
func (s *Store) SelectedIndex() int { return s.selected.Index() }

// ActiveTemplate returns the name of the last applied template, or "" if the
// record has been changed by a suggestion or a reset since.
func (s *Store) ActiveTemplate() string { return s.active }

func invalidShape(k shape.Kind) error {
	return apperr.New(apperr.ErrCodeInvalidShape, "unknown shape type: %s", k)
}
