package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/logomaker/pkg/geometry"
	"github.com/matzehuels/logomaker/pkg/logo"
)

// Canvas dimensions in document units.
const (
	CanvasSize = 400
	CenterX    = CanvasSize / 2
	CenterY    = CanvasSize / 2
)

// Drop shadow applied to the shape.
const (
	ShadowDX      = 2
	ShadowDY      = 2
	ShadowBlur    = 3
	ShadowOpacity = 0.2
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	size   int
	shadow bool
}

// WithSize sets the width and height attributes in pixels. The viewBox stays
// 400×400.
func WithSize(px int) SVGOption { return func(r *svgRenderer) { r.size = px } }

// WithoutShadow omits the drop-shadow filter.
func WithoutShadow() SVGOption { return func(r *svgRenderer) { r.shadow = false } }

// RenderSVG renders cfg as a standalone SVG document.
func RenderSVG(cfg logo.Config, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{size: CanvasSize, shadow: true}
	for _, opt := range opts {
		opt(&r)
	}

	g, err := geometry.Compute(cfg.Shape, geometry.ForShapeSize(cfg.ShapeSize))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		CanvasSize, CanvasSize, r.size, r.size)

	if r.shadow {
		renderDefs(&buf)
	}
	fmt.Fprintf(&buf, `  <rect id="bgRect" x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		CanvasSize, CanvasSize, EscapeXML(cfg.BackgroundColor))

	fmt.Fprintf(&buf, `  <g id="logoGroup" transform="translate(%d, %d)">`+"\n", CenterX, CenterY)
	renderShape(&buf, g, cfg.ShapeColor, r.shadow)
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <text id="logoText" x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="%d" font-weight="%s">%s</text>`+"\n",
		CenterX, cfg.TextY, EscapeXML(cfg.TextColor), EscapeXML(cfg.FontFamily),
		cfg.FontSize, EscapeXML(cfg.FontWeight), EscapeXML(cfg.Text))

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <filter id="shadow" x="-50%" y="-50%" width="200%" height="200%">` + "\n")
	fmt.Fprintf(buf, `      <feDropShadow dx="%d" dy="%d" stdDeviation="%d" flood-color="#000000" flood-opacity="%g"/>`+"\n",
		ShadowDX, ShadowDY, ShadowBlur, ShadowOpacity)
	buf.WriteString("    </filter>\n")
	buf.WriteString("  </defs>\n")
}

func renderShape(buf *bytes.Buffer, g geometry.Geometry, fill string, shadow bool) {
	attrs := fmt.Sprintf(`id="logoShape" fill="%s"`, EscapeXML(fill))
	if shadow {
		attrs += ` filter="url(#shadow)"`
	}

	f := geometry.FormatFloat
	switch s := g.(type) {
	case geometry.Circle:
		fmt.Fprintf(buf, `    <circle %s cx="%s" cy="%s" r="%s"/>`+"\n", attrs, f(s.CX), f(s.CY), f(s.R))
	case geometry.RoundedRect:
		fmt.Fprintf(buf, `    <rect %s x="%s" y="%s" width="%s" height="%s" rx="%s"/>`+"\n",
			attrs, f(s.X), f(s.Y), f(s.Width), f(s.Height), f(s.Radius))
	case geometry.Polygon:
		fmt.Fprintf(buf, `    <polygon %s points="%s"/>`+"\n", attrs, s.SVGPoints())
	}
}

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
