package logo

import (
	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// Template is a named style preset. It covers exactly the seven style
// fields; text, shape size and text position are left to the user.
type Template struct {
	Shape           shape.Kind `json:"shape"`
	ShapeColor      string     `json:"shapeColor"`
	TextColor       string     `json:"textColor"`
	BackgroundColor string     `json:"backgroundColor"`
	FontSize        int        `json:"fontSize"`
	FontFamily      string     `json:"fontFamily"`
	FontWeight      string     `json:"fontWeight"`
}

// Partial returns the template as an overlay of its seven fields.
func (t Template) Partial() Partial {
	return Partial{
		Shape:           Ptr(t.Shape),
		ShapeColor:      Ptr(t.ShapeColor),
		TextColor:       Ptr(t.TextColor),
		BackgroundColor: Ptr(t.BackgroundColor),
		FontSize:        Ptr(t.FontSize),
		FontFamily:      Ptr(t.FontFamily),
		FontWeight:      Ptr(t.FontWeight),
	}
}

// Built-in template names.
const (
	TemplateModern   = "modern"
	TemplateMinimal  = "minimal"
	TemplateTech     = "tech"
	TemplateCreative = "creative"
)

var templateOrder = []string{TemplateModern, TemplateMinimal, TemplateTech, TemplateCreative}

var builtinTemplates = map[string]Template{
	TemplateModern: {
		Shape:           shape.Circle,
		ShapeColor:      "#667eea",
		TextColor:       "#ffffff",
		BackgroundColor: "#ffffff",
		FontSize:        40,
		FontFamily:      "Arial",
		FontWeight:      "bold",
	},
	TemplateMinimal: {
		Shape:           shape.Square,
		ShapeColor:      "#333333",
		TextColor:       "#333333",
		BackgroundColor: "#ffffff",
		FontSize:        35,
		FontFamily:      "Helvetica",
		FontWeight:      "normal",
	},
	TemplateTech: {
		Shape:           shape.Triangle,
		ShapeColor:      "#764ba2",
		TextColor:       "#ffffff",
		BackgroundColor: "#f8f9fa",
		FontSize:        38,
		FontFamily:      "Arial",
		FontWeight:      "bold",
	},
	TemplateCreative: {
		Shape:           shape.Diamond,
		ShapeColor:      "#ff6b6b",
		TextColor:       "#ffffff",
		BackgroundColor: "#ffffff",
		FontSize:        42,
		FontFamily:      "Impact",
		FontWeight:      "bold",
	},
}

// TemplateNames returns the built-in template names in display order.
func TemplateNames() []string {
	return append([]string(nil), templateOrder...)
}

// Templates returns a copy of the built-in template table.
func Templates() map[string]Template {
	out := make(map[string]Template, len(builtinTemplates))
	for name, t := range builtinTemplates {
		out[name] = t
	}
	return out
}

// LookupTemplate returns the named built-in template. Unknown names fail with
// TEMPLATE_NOT_FOUND.
func LookupTemplate(name string) (Template, error) {
	t, ok := builtinTemplates[name]
	if !ok {
		return Template{}, apperr.New(apperr.ErrCodeTemplateNotFound, "Template '%s' not found", name)
	}
	return t, nil
}
