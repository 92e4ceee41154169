// Package pipeline provides the logo build-and-render pipeline.
//
// This package implements the complete build → render sequence used by the
// CLI, the interactive editor and the HTTP API, so that all entry points
// apply templates, overlays and form input in the same order.
//
// # Stages
//
//  1. Build: a fresh [logo.Store] receives the template, then the config
//     overlay, then form input
//  2. Render: every requested format is rendered from the resulting record
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Template: "tech",
//	    Config:   logo.Partial{Text: logo.Ptr("Acme")},
//	    Formats:  []render.Format{render.FormatSVG, render.FormatPNG},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[render.FormatSVG]
//
// [logo.Store]: github.com/matzehuels/logomaker/pkg/logo.Store
package pipeline

import (
	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/render"
)

// DefaultFormats is used when no format is requested.
var DefaultFormats = []render.Format{render.FormatSVG}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Build options, applied in field order.
	Template string          `json:"template,omitempty"`
	Config   logo.Partial    `json:"config"`
	Form     *logo.FormInput `json:"form,omitempty"`

	// Render options
	Formats  []render.Format `json:"formats,omitempty"`
	Pixels   int             `json:"pixels,omitempty"`
	NoShadow bool            `json:"noShadow,omitempty"`

	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Template != "" {
		if _, err := logo.LookupTemplate(o.Template); err != nil {
			return err
		}
	}

	if len(o.Formats) == 0 {
		o.Formats = append([]render.Format(nil), DefaultFormats...)
	}
	seen := make(map[render.Format]bool, len(o.Formats))
	formats := o.Formats[:0:0]
	for _, f := range o.Formats {
		pf, err := render.ParseFormat(string(f))
		if err != nil {
			return err
		}
		if !seen[pf] {
			seen[pf] = true
			formats = append(formats, pf)
		}
	}
	o.Formats = formats

	if o.Pixels == 0 {
		o.Pixels = render.DefaultPixels
	}
	if o.Pixels < 0 || o.Pixels > render.MaxPixels {
		return apperr.New(apperr.ErrCodeInvalidInput, "pixels must be between 1 and %d, got %d", render.MaxPixels, o.Pixels)
	}

	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// Build creates a store from the defaults and applies the template, the
// overlay and the form input in that order.
func Build(opts Options) (*logo.Store, error) {
	s := logo.New()
	if opts.Template != "" {
		if err := s.ApplyTemplate(opts.Template); err != nil {
			return nil, err
		}
	}
	if err := s.Set(opts.Config); err != nil {
		return nil, err
	}
	if opts.Form != nil {
		if err := s.Sync(*opts.Form); err != nil {
			return nil, err
		}
	}
	return s, nil
}
