// Package render turns a logo configuration into export artifacts.
//
// # Overview
//
// Every renderer is a pure function of a [logo.Config]. Geometry comes from
// [geometry.Compute]; the renderers never reach into a store.
//
//   - [RenderSVG]: the 400×400 vector document
//   - [RenderPNG]: a pure-Go raster (800×800 by default)
//   - [RenderPDF]: the SVG converted by rsvg-convert
//   - [CSS]: the style-text block for embedding the logo in a page
//   - [RenderJSON]: configuration plus computed geometry
//
// # Document Layout
//
// The canvas is 400 units square. The shape is drawn in its own frame,
// translated to the canvas centre (200, 200), so shape coordinates are
// symmetric around zero. Text is anchored at its middle at (200, textY).
//
//	svg, err := render.RenderSVG(cfg)
//	png, err := render.RenderPNG(cfg, render.WithPixels(1024))
//	name := render.Filename(cfg.Text, "svg") // "acme-robotics-logo.svg"
//
// PDF conversion requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [logo.Config]: github.com/matzehuels/logomaker/pkg/logo.Config
// [geometry.Compute]: github.com/matzehuels/logomaker/pkg/geometry.Compute
package render
