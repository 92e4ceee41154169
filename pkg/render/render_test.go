package render

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os/exec"
	"strings"
	"testing"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/shape"
)

func TestRenderSVG(t *testing.T) {
	cfg := logo.Default()
	cfg.Text = "Tom & Jerry"

	svg, err := RenderSVG(cfg)
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	s := string(svg)

	for _, want := range []string{
		`viewBox="0 0 400 400"`,
		`<filter id="shadow"`,
		`<rect id="bgRect" x="0" y="0" width="400" height="400" fill="#ffffff"/>`,
		`<g id="logoGroup" transform="translate(200, 200)">`,
		`<circle id="logoShape" fill="#667eea" filter="url(#shadow)" cx="0" cy="0" r="60"/>`,
		`x="200" y="220" text-anchor="middle"`,
		`font-size="40" font-weight="bold">Tom &amp; Jerry</text>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q\n%s", want, s)
		}
	}
}

func TestRenderSVGShapes(t *testing.T) {
	tests := []struct {
		kind shape.Kind
		want string
	}{
		{shape.Square, `<rect id="logoShape" fill="#667eea" filter="url(#shadow)" x="-60" y="-60" width="120" height="120" rx="8"/>`},
		{shape.Diamond, `points="0,-60 60,0 0,60 -60,0"`},
		{shape.Star, `<polygon id="logoShape"`},
	}
	for _, tt := range tests {
		cfg := logo.Default()
		cfg.Shape = tt.kind
		svg, err := RenderSVG(cfg)
		if err != nil {
			t.Fatalf("RenderSVG(%s) error: %v", tt.kind, err)
		}
		if !bytes.Contains(svg, []byte(tt.want)) {
			t.Errorf("RenderSVG(%s) missing %q", tt.kind, tt.want)
		}
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg, err := RenderSVG(logo.Default(), WithSize(800), WithoutShadow())
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, `width="800" height="800"`) {
		t.Errorf("WithSize(800) not applied")
	}
	if strings.Contains(s, "shadow") {
		t.Errorf("WithoutShadow still references the shadow filter")
	}
}

func TestRenderSVGInvalidShape(t *testing.T) {
	cfg := logo.Default()
	cfg.Shape = shape.Kind(77)
	if _, err := RenderSVG(cfg); !apperr.Is(err, apperr.ErrCodeInvalidShape) {
		t.Errorf("RenderSVG(invalid) error = %v, want INVALID_SHAPE", err)
	}
}

func TestCSS(t *testing.T) {
	cfg := logo.Default()
	cfg.ShapeColor = "#abcdef"
	cfg.TextColor = "#123456"
	cfg.FontSize = 32

	want := "/* Logo CSS */\n" +
		".logo {\n    width: 200px;\n    height: 200px;\n    display: inline-block;\n}\n\n" +
		".logo-shape {\n    fill: #abcdef;\n    filter: drop-shadow(2px 2px 3px rgba(0,0,0,0.2));\n}\n\n" +
		".logo-text {\n    fill: #123456;\n    font-family: Arial;\n    font-size: 32px;\n    font-weight: bold;\n    text-anchor: middle;\n}"

	got := CSS(cfg)
	if got != want {
		t.Errorf("CSS() =\n%s\nwant\n%s", got, want)
	}

	shapeRule := got[strings.Index(got, ".logo-shape"):strings.Index(got, ".logo-text")]
	textRule := got[strings.Index(got, ".logo-text"):]
	if !strings.Contains(shapeRule, "#abcdef") || strings.Contains(textRule, "#abcdef") {
		t.Errorf("shape colour misplaced in CSS")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		text, ext, want string
	}{
		{"LOGO", "svg", "logo-logo.svg"},
		{"Acme  Robotics", "png", "acme-robotics-logo.png"},
		{"  spaced out  ", "svg", "spaced-out-logo.svg"},
		{"", "svg", "logo-logo.svg"},
		{"a/b", "pdf", "a-b-logo.pdf"},
		{"..", "svg", "logo-logo.svg"},
		{"A..B Corp", "svg", "a.b-corp-logo.svg"},
		{"x\x00y", "png", "xy-logo.png"},
	}
	for _, tt := range tests {
		got := Filename(tt.text, tt.ext)
		if got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.text, tt.ext, got, tt.want)
		}
		if err := apperr.ValidatePath(got); err != nil {
			t.Errorf("ValidatePath(Filename(%q)) = %v", tt.text, err)
		}
	}

	long := Filename(strings.Repeat("é", 300), "svg")
	if err := apperr.ValidatePath(long); err != nil {
		t.Errorf("ValidatePath(long name) = %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats("svg, PNG,svg,,css")
	if err != nil {
		t.Fatalf("ParseFormats error: %v", err)
	}
	want := []Format{FormatSVG, FormatPNG, FormatCSS}
	if len(got) != len(want) {
		t.Fatalf("ParseFormats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseFormats[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := ParseFormats("svg,gif"); !apperr.Is(err, apperr.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormats(gif) error = %v, want INVALID_FORMAT", err)
	}
	if FormatPNG.ContentType() != "image/png" || !FormatPDF.Binary() || FormatCSS.Binary() {
		t.Errorf("format metadata mismatch")
	}
}

func TestRenderPNG(t *testing.T) {
	for _, kind := range shape.Kinds() {
		cfg := logo.Default()
		cfg.Shape = kind
		data, err := RenderPNG(cfg, WithPixels(64))
		if err != nil {
			t.Fatalf("RenderPNG(%s) error: %v", kind, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("png.Decode error: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
			t.Errorf("RenderPNG(%s) size = %dx%d, want 64x64", kind, b.Dx(), b.Dy())
		}
	}
}

func TestRasterizeColours(t *testing.T) {
	cfg := logo.Default()
	cfg.BackgroundColor = "#ff0000"
	cfg.ShapeColor = "#0000ff"
	cfg.Text = ""

	img, err := Rasterize(cfg, WithPixels(100), WithoutPNGShadow())
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}

	r, g, b, _ := img.At(2, 2).RGBA()
	if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Errorf("corner pixel = (%d,%d,%d), want background red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(50, 50).RGBA()
	if b>>8 < 250 || r>>8 > 5 || g>>8 > 5 {
		t.Errorf("centre pixel = (%d,%d,%d), want shape blue", r>>8, g>>8, b>>8)
	}

	cfg.BackgroundColor = "White"
	cfg.ShapeColor = "red"
	img, err = Rasterize(cfg, WithPixels(100), WithoutPNGShadow())
	if err != nil {
		t.Fatalf("Rasterize(named colours) error: %v", err)
	}
	r, g, b, _ = img.At(2, 2).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("corner pixel = (%d,%d,%d), want background white", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(50, 50).RGBA()
	if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Errorf("centre pixel = (%d,%d,%d), want shape red", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGErrors(t *testing.T) {
	cfg := logo.Default()
	cfg.ShapeColor = "not-a-colour"
	if _, err := RenderPNG(cfg, WithPixels(16)); !apperr.Is(err, apperr.ErrCodeInvalidColor) {
		t.Errorf("RenderPNG(unknown colour) error = %v, want INVALID_COLOR", err)
	}
	if _, err := RenderPNG(logo.Default(), WithPixels(0)); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("RenderPNG(0px) error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderJSON(t *testing.T) {
	cfg := logo.Default()
	cfg.Shape = shape.Triangle
	data, err := RenderJSON(cfg)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}

	var doc struct {
		Config struct {
			Shape string `json:"shape"`
		} `json:"config"`
		Canvas   int `json:"canvas"`
		Geometry struct {
			Type   string `json:"type"`
			Points []struct{ X, Y float64 }
		} `json:"geometry"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if doc.Config.Shape != "triangle" || doc.Canvas != 400 || doc.Geometry.Type != "polygon" || len(doc.Geometry.Points) != 3 {
		t.Errorf("RenderJSON = %s", data)
	}
}

func TestRenderPDF(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	data, err := RenderPDF(logo.Default())
	if err != nil {
		t.Fatalf("RenderPDF error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("RenderPDF output does not start with %%PDF")
	}
}
