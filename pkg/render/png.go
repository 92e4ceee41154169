package render

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/fonts"
	"github.com/matzehuels/logomaker/pkg/geometry"
	"github.com/matzehuels/logomaker/pkg/logo"
)

// DefaultPixels is the default edge length of raster exports.
const DefaultPixels = 800

// MaxPixels bounds raster exports.
const MaxPixels = 4096

const supersample = 2

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	pixels int
	shadow bool
}

// WithPixels sets the edge length of the square output image.
func WithPixels(n int) PNGOption { return func(r *pngRenderer) { r.pixels = n } }

// WithoutPNGShadow omits the drop shadow.
func WithoutPNGShadow() PNGOption { return func(r *pngRenderer) { r.shadow = false } }

// RenderPNG rasterises cfg. The logo is drawn at twice the target resolution
// and downsampled. Colours must be hex values. Text uses the embedded Go
// fonts regardless of the configured font family.
func RenderPNG(cfg logo.Config, opts ...PNGOption) ([]byte, error) {
	img, err := Rasterize(cfg, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Rasterize draws cfg into an RGBA image.
func Rasterize(cfg logo.Config, opts ...PNGOption) (image.Image, error) {
	r := pngRenderer{pixels: DefaultPixels, shadow: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.pixels <= 0 || r.pixels > MaxPixels {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "pixels must be between 1 and %d, got %d", MaxPixels, r.pixels)
	}

	bg, err := ParseColor(cfg.BackgroundColor)
	if err != nil {
		return nil, err
	}
	fill, err := ParseColor(cfg.ShapeColor)
	if err != nil {
		return nil, err
	}
	ink, err := ParseColor(cfg.TextColor)
	if err != nil {
		return nil, err
	}

	g, err := geometry.Compute(cfg.Shape, geometry.ForShapeSize(cfg.ShapeSize))
	if err != nil {
		return nil, err
	}

	px := r.pixels * supersample
	scale := float64(px) / CanvasSize

	dc := gg.NewContext(px, px)
	dc.SetColor(bg)
	dc.Clear()

	if r.shadow {
		dc.DrawImage(shadowLayer(g, px, scale), 0, 0)
	}

	dc.Push()
	dc.Scale(scale, scale)
	dc.Translate(CenterX, CenterY)
	tracePath(dc, g)
	dc.SetColor(fill)
	dc.Fill()
	dc.Pop()

	if cfg.Text != "" && cfg.FontSize > 0 {
		face, err := fonts.Face(cfg.FontWeight, float64(cfg.FontSize)*scale)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "load font")
		}
		defer face.Close()
		dc.SetFontFace(face)
		dc.SetColor(ink)
		dc.DrawStringAnchored(cfg.Text, CenterX*scale, float64(cfg.TextY)*scale, 0.5, 0)
	}

	return imaging.Resize(dc.Image(), r.pixels, r.pixels, imaging.Lanczos), nil
}

func shadowLayer(g geometry.Geometry, px int, scale float64) image.Image {
	sc := gg.NewContext(px, px)
	sc.Scale(scale, scale)
	sc.Translate(CenterX+ShadowDX, CenterY+ShadowDY)
	tracePath(sc, g)
	sc.SetColor(color.NRGBA{A: uint8(ShadowOpacity * 255)})
	sc.Fill()
	return imaging.Blur(sc.Image(), ShadowBlur*scale)
}

func tracePath(dc *gg.Context, g geometry.Geometry) {
	switch s := g.(type) {
	case geometry.Circle:
		dc.DrawCircle(s.CX, s.CY, s.R)
	case geometry.RoundedRect:
		dc.DrawRoundedRectangle(s.X, s.Y, s.Width, s.Height, min(s.Radius, s.Width/2))
	case geometry.Polygon:
		if len(s.Points) == 0 {
			return
		}
		dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	}
}

// ParseColor parses a #rrggbb or #rgb colour, or a CSS colour name.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err == nil {
		return c, nil
	}
	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return named, nil
	}
	return nil, apperr.Wrap(apperr.ErrCodeInvalidColor, err, "invalid colour %q", s)
}
