// Package logo holds the authoritative logo style record and the operations
// that merge updates into it.
//
// # Overview
//
// A [Config] always carries all ten style fields. Updates arrive as a
// [Partial] in which every field is optional, and are applied as an overlay:
// present fields replace the current value, absent fields are left exactly as
// they were. Built-in [Template]s and externally produced suggestions are
// applied through the same overlay, so a template never clears the company
// name, shape size or text position a user has chosen.
//
// # Store
//
// [Store] owns the single record together with the UI highlight state (the
// selected shape and the active template):
//
//	s := logo.New()
//	_ = s.Set(logo.Partial{Text: logo.Ptr("ACME"), ShapeSize: logo.Ptr(200)})
//	_ = s.ApplyTemplate("modern")
//	cfg := s.Config() // text and shape size survive the template
//
// A Store is meant to be driven by one caller at a time. Hosts that serve
// several users create one Store per request or session.
package logo

import (
	"github.com/matzehuels/logomaker/pkg/shape"
)

// Default values of a fresh record.
const (
	DefaultText            = "LOGO"
	DefaultShapeColor      = "#667eea"
	DefaultTextColor       = "#ffffff"
	DefaultBackgroundColor = "#ffffff"
	DefaultFontSize        = 40
	DefaultFontFamily      = "Arial"
	DefaultFontWeight      = "bold"
	DefaultShapeSize       = 120
	DefaultTextY           = 220
)

// DefaultShape is the shape of a fresh record.
const DefaultShape = shape.Circle

// Config is the complete logo style record.
type Config struct {
	Shape           shape.Kind `json:"shape" toml:"shape"`
	Text            string     `json:"text" toml:"text"`
	ShapeColor      string     `json:"shapeColor" toml:"shapeColor"`
	TextColor       string     `json:"textColor" toml:"textColor"`
	BackgroundColor string     `json:"backgroundColor" toml:"backgroundColor"`
	FontSize        int        `json:"fontSize" toml:"fontSize"`
	FontFamily      string     `json:"fontFamily" toml:"fontFamily"`
	FontWeight      string     `json:"fontWeight" toml:"fontWeight"`
	ShapeSize       int        `json:"shapeSize" toml:"shapeSize"`
	TextY           int        `json:"textY" toml:"textY"`
}

// Default returns the hard-coded default record.
func Default() Config {
	return Config{
		Shape:           DefaultShape,
		Text:            DefaultText,
		ShapeColor:      DefaultShapeColor,
		TextColor:       DefaultTextColor,
		BackgroundColor: DefaultBackgroundColor,
		FontSize:        DefaultFontSize,
		FontFamily:      DefaultFontFamily,
		FontWeight:      DefaultFontWeight,
		ShapeSize:       DefaultShapeSize,
		TextY:           DefaultTextY,
	}
}

// Partial is an overlay update. A nil field is absent and leaves the
// corresponding Config field untouched.
type Partial struct {
	Shape           *shape.Kind `json:"shape,omitempty" toml:"shape"`
	Text            *string     `json:"text,omitempty" toml:"text"`
	ShapeColor      *string     `json:"shapeColor,omitempty" toml:"shapeColor"`
	TextColor       *string     `json:"textColor,omitempty" toml:"textColor"`
	BackgroundColor *string     `json:"backgroundColor,omitempty" toml:"backgroundColor"`
	FontSize        *int        `json:"fontSize,omitempty" toml:"fontSize"`
	FontFamily      *string     `json:"fontFamily,omitempty" toml:"fontFamily"`
	FontWeight      *string     `json:"fontWeight,omitempty" toml:"fontWeight"`
	ShapeSize       *int        `json:"shapeSize,omitempty" toml:"shapeSize"`
	TextY           *int        `json:"textY,omitempty" toml:"textY"`
}

// Ptr returns a pointer to v, for building a Partial inline.
func Ptr[T any](v T) *T { return &v }

// IsEmpty reports whether no field is present.
func (p Partial) IsEmpty() bool {
	return p == Partial{}
}

// Overlay returns a copy of base with every present field of p applied.
// Overlay performs no validation.
func (p Partial) Overlay(base Config) Config {
	out := base
	if p.Shape != nil {
		out.Shape = *p.Shape
	}
	if p.Text != nil {
		out.Text = *p.Text
	}
	if p.ShapeColor != nil {
		out.ShapeColor = *p.ShapeColor
	}
	if p.TextColor != nil {
		out.TextColor = *p.TextColor
	}
	if p.BackgroundColor != nil {
		out.BackgroundColor = *p.BackgroundColor
	}
	if p.FontSize != nil {
		out.FontSize = *p.FontSize
	}
	if p.FontFamily != nil {
		out.FontFamily = *p.FontFamily
	}
	if p.FontWeight != nil {
		out.FontWeight = *p.FontWeight
	}
	if p.ShapeSize != nil {
		out.ShapeSize = *p.ShapeSize
	}
	if p.TextY != nil {
		out.TextY = *p.TextY
	}
	return out
}

// Merge returns p with every present field of q layered on top.
func (p Partial) Merge(q Partial) Partial {
	out := p
	if q.Shape != nil {
		out.Shape = q.Shape
	}
	if q.Text != nil {
		out.Text = q.Text
	}
	if q.ShapeColor != nil {
		out.ShapeColor = q.ShapeColor
	}
	if q.TextColor != nil {
		out.TextColor = q.TextColor
	}
	if q.BackgroundColor != nil {
		out.BackgroundColor = q.BackgroundColor
	}
	if q.FontSize != nil {
		out.FontSize = q.FontSize
	}
	if q.FontFamily != nil {
		out.FontFamily = q.FontFamily
	}
	if q.FontWeight != nil {
		out.FontWeight = q.FontWeight
	}
	if q.ShapeSize != nil {
		out.ShapeSize = q.ShapeSize
	}
	if q.TextY != nil {
		out.TextY = q.TextY
	}
	return out
}
