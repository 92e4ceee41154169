// Package suggest obtains AI-generated style suggestions for a logo.
//
// # Overview
//
// A [Service] sends the business description and the current style to a
// language model [Provider], parses the returned JSON array into
// [Suggestion]s and hands them back as a [Batch]. The service never touches a
// store: a suggestion only reaches the record when the caller applies it,
// through the same overlay rule as a template.
//
//	svc := suggest.NewService(suggest.NewProviderFactory(suggest.ProviderOpenAI, ""))
//	batch, err := svc.Suggest(ctx, suggest.Request{APIKey: key, Description: desc, Config: store.Config()})
//	if err != nil {
//	    return err // VALIDATION_FAILED, NETWORK_ERROR, UNAUTHORIZED, ...
//	}
//	_, err = batch.Apply(store, 0)
//
// # Failure Handling
//
// The API key and the description are validated before any network attempt.
// Provider failures are reported as coded errors and are never retried; the
// user may simply ask again. A batch can be applied once.
package suggest

import (
	"strings"

	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// Suggestion is one candidate restyling returned by the model.
type Suggestion struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Reasoning       string `json:"reasoning"`
	Shape           string `json:"shape"`
	ShapeColor      string `json:"shapeColor"`
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
	FontSize        int    `json:"fontSize,omitempty"`
	FontFamily      string `json:"fontFamily"`
	FontWeight      string `json:"fontWeight"`
}

// Partial returns the suggestion as a template-shaped overlay. Empty strings
// and a zero font size are absent. An unknown shape fails with INVALID_SHAPE.
func (s Suggestion) Partial() (logo.Partial, error) {
	var p logo.Partial
	if v := strings.TrimSpace(s.Shape); v != "" {
		k, err := shape.Parse(v)
		if err != nil {
			return logo.Partial{}, err
		}
		p.Shape = &k
	}
	p.ShapeColor = nonEmpty(s.ShapeColor)
	p.TextColor = nonEmpty(s.TextColor)
	p.BackgroundColor = nonEmpty(s.BackgroundColor)
	p.FontFamily = nonEmpty(s.FontFamily)
	p.FontWeight = nonEmpty(s.FontWeight)
	if s.FontSize > 0 {
		p.FontSize = logo.Ptr(s.FontSize)
	}
	return p, nil
}

// Context is the subset of the style record sent to the model.
type Context struct {
	Text            string `json:"text"`
	Shape           string `json:"shape"`
	ShapeColor      string `json:"shapeColor"`
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
	FontFamily      string `json:"fontFamily"`
	FontWeight      string `json:"fontWeight"`
}

// ContextFrom extracts the model context from cfg.
func ContextFrom(cfg logo.Config) Context {
	return Context{
		Text:            cfg.Text,
		Shape:           cfg.Shape.String(),
		ShapeColor:      cfg.ShapeColor,
		TextColor:       cfg.TextColor,
		BackgroundColor: cfg.BackgroundColor,
		FontFamily:      cfg.FontFamily,
		FontWeight:      cfg.FontWeight,
	}
}

func nonEmpty(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
