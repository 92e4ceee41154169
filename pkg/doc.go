// Package pkg provides the core libraries for Logomaker.
//
// # Overview
//
// Logomaker composes a logo from one geometric shape and a company name. The
// pkg directory is organized into three layers:
//
//  1. [shape], [geometry], [logo] - the record of a logo, the outline of each
//     shape and the rules for changing the record (overlay, templates, form
//     input)
//  2. [render], [suggest], [cache] - exporters, AI style suggestions and the
//     file/Redis cache behind both
//  3. [pipeline], [server] - orchestration shared by the CLI and the HTTP API
//
// # Architecture
//
// The typical data flow through Logomaker:
//
//	defaults ← template ← overlay ← form input
//	         ↓
//	    [logo] Store (one authoritative Config)
//	         ↓
//	    [geometry] outline for the selected shape
//	         ↓
//	    [render] SVG / PNG / PDF / CSS / JSON
//
// Suggestions flow the other way: [suggest] asks a model for template-shaped
// deltas, and applying one merges it into the store like a template.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/logomaker/pkg/logo"
//	    "github.com/matzehuels/logomaker/pkg/render"
//	)
//
//	s := logo.New()
//	if err := s.ApplyTemplate("tech"); err != nil {
//	    return err
//	}
//	s.Sync(logo.FormInput{Text: "Acme Robotics"})
//	svg, err := render.RenderSVG(s.Config())
package pkg
