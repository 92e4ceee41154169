package logo

import (
	"strings"
	"testing"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/shape"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	want := Config{
		Shape:           shape.Circle,
		Text:            "LOGO",
		ShapeColor:      "#667eea",
		TextColor:       "#ffffff",
		BackgroundColor: "#ffffff",
		FontSize:        40,
		FontFamily:      "Arial",
		FontWeight:      "bold",
		ShapeSize:       120,
		TextY:           220,
	}
	if got := s.Config(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
	if s.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", s.SelectedIndex())
	}
	if s.ActiveTemplate() != "" {
		t.Errorf("ActiveTemplate() = %q, want empty", s.ActiveTemplate())
	}
}

func TestSetOverlay(t *testing.T) {
	tests := []struct {
		name  string
		patch Partial
		check func(Config) bool
	}{
		{"text only", Partial{Text: Ptr("Acme")}, func(c Config) bool { return c.Text == "Acme" }},
		{"empty text stored", Partial{Text: Ptr("")}, func(c Config) bool { return c.Text == "" }},
		{"size and y", Partial{ShapeSize: Ptr(200), TextY: Ptr(300)}, func(c Config) bool {
			return c.ShapeSize == 200 && c.TextY == 300
		}},
		{"unbounded font size", Partial{FontSize: Ptr(-5)}, func(c Config) bool { return c.FontSize == -5 }},
		{"empty patch", Partial{}, func(c Config) bool { return c == Default() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			before := s.Config()
			if err := s.Set(tt.patch); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			got := s.Config()
			if !tt.check(got) {
				t.Errorf("Set(%s) = %+v", tt.name, got)
			}
			if got != tt.patch.Overlay(before) {
				t.Errorf("Set changed fields outside the patch: %+v", got)
			}
		})
	}
}

func TestSetInvalidShape(t *testing.T) {
	s := New()
	bad := shape.Kind(42)
	err := s.Set(Partial{Shape: &bad, Text: Ptr("changed")})
	if !apperr.Is(err, apperr.ErrCodeInvalidShape) {
		t.Fatalf("Set(invalid shape) error = %v, want INVALID_SHAPE", err)
	}
	if s.Config() != Default() {
		t.Errorf("Set(invalid shape) mutated the record: %+v", s.Config())
	}
}

func TestSetShapeMovesSelection(t *testing.T) {
	s := New()
	if err := s.SetShape(shape.Hexagon); err != nil {
		t.Fatalf("SetShape error: %v", err)
	}
	if s.Config().Shape != shape.Hexagon {
		t.Errorf("Shape = %v, want hexagon", s.Config().Shape)
	}
	if s.SelectedIndex() != 4 {
		t.Errorf("SelectedIndex() = %d, want 4", s.SelectedIndex())
	}

	want := Default()
	want.Shape = shape.Hexagon
	if s.Config() != want {
		t.Errorf("SetShape changed other fields: %+v", s.Config())
	}
}

func TestApplyTemplateModern(t *testing.T) {
	s := New()
	_ = s.Set(Partial{Text: Ptr("X"), ShapeSize: Ptr(200), Shape: Ptr(shape.Star), ShapeColor: Ptr("#000000")})

	if err := s.ApplyTemplate("modern"); err != nil {
		t.Fatalf("ApplyTemplate(modern) error: %v", err)
	}

	got := s.Config()
	want := Config{
		Shape:           shape.Circle,
		Text:            "X",
		ShapeColor:      "#667eea",
		TextColor:       "#ffffff",
		BackgroundColor: "#ffffff",
		FontSize:        40,
		FontFamily:      "Arial",
		FontWeight:      "bold",
		ShapeSize:       200,
		TextY:           220,
	}
	if got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
	if s.ActiveTemplate() != "modern" {
		t.Errorf("ActiveTemplate() = %q, want modern", s.ActiveTemplate())
	}
	if s.SelectedShape() != shape.Circle {
		t.Errorf("SelectedShape() = %v, want circle", s.SelectedShape())
	}
}

func TestApplyTemplateEach(t *testing.T) {
	for _, name := range TemplateNames() {
		t.Run(name, func(t *testing.T) {
			s := New()
			_ = s.Set(Partial{Text: Ptr("Keep"), TextY: Ptr(250), ShapeSize: Ptr(90)})
			if err := s.ApplyTemplate(name); err != nil {
				t.Fatalf("ApplyTemplate error: %v", err)
			}
			tmpl, _ := LookupTemplate(name)
			c := s.Config()
			if c.Shape != tmpl.Shape || c.ShapeColor != tmpl.ShapeColor || c.FontFamily != tmpl.FontFamily {
				t.Errorf("template fields not applied: %+v", c)
			}
			if c.Text != "Keep" || c.TextY != 250 || c.ShapeSize != 90 {
				t.Errorf("template cleared user fields: %+v", c)
			}
		})
	}
}

func TestApplyTemplateNotFound(t *testing.T) {
	s := New()
	_ = s.ApplyTemplate("tech")
	before := s.Config()

	err := s.ApplyTemplate("doesnotexist")
	if !apperr.Is(err, apperr.ErrCodeTemplateNotFound) {
		t.Fatalf("ApplyTemplate(doesnotexist) error = %v, want TEMPLATE_NOT_FOUND", err)
	}
	if !strings.Contains(err.Error(), "doesnotexist") {
		t.Errorf("error %q does not name the template", err)
	}
	if s.Config() != before {
		t.Errorf("record changed: %+v, want %+v", s.Config(), before)
	}
	if s.ActiveTemplate() != "tech" {
		t.Errorf("ActiveTemplate() = %q, want tech", s.ActiveTemplate())
	}
}

func TestApplySuggestion(t *testing.T) {
	s := New()
	_ = s.ApplyTemplate("minimal")
	_ = s.Set(Partial{Text: Ptr("Brand"), FontSize: Ptr(55)})

	delta := Partial{
		Shape:      Ptr(shape.Star),
		ShapeColor: Ptr("#123456"),
		FontFamily: Ptr("Georgia"),
	}
	if err := s.ApplySuggestion(delta); err != nil {
		t.Fatalf("ApplySuggestion error: %v", err)
	}
	c := s.Config()
	if c.Shape != shape.Star || c.ShapeColor != "#123456" || c.FontFamily != "Georgia" {
		t.Errorf("suggestion not applied: %+v", c)
	}
	if c.Text != "Brand" || c.FontSize != 55 || c.TextColor != "#333333" {
		t.Errorf("suggestion cleared unrelated fields: %+v", c)
	}
	if s.ActiveTemplate() != "" {
		t.Errorf("ActiveTemplate() = %q, want empty after suggestion", s.ActiveTemplate())
	}
}

func TestReset(t *testing.T) {
	s := New()
	_ = s.ApplyTemplate("creative")
	_ = s.Set(Partial{Text: Ptr("Z"), ShapeSize: Ptr(10), TextY: Ptr(1)})
	s.Reset()

	if s.Config() != Default() {
		t.Errorf("Reset() = %+v, want defaults", s.Config())
	}
	if s.SelectedShape() != shape.Circle || s.ActiveTemplate() != "" {
		t.Errorf("Reset() left highlight state %v/%q", s.SelectedShape(), s.ActiveTemplate())
	}
}

func TestTemplatesCopy(t *testing.T) {
	s := New()
	m := s.Templates()
	if len(m) != 4 {
		t.Fatalf("len(Templates()) = %d, want 4", len(m))
	}
	m["modern"] = Template{ShapeColor: "#000000"}
	delete(m, "tech")

	if tmpl, _ := s.Template("modern"); tmpl.ShapeColor != "#667eea" {
		t.Errorf("mutating the copy changed the table: %+v", tmpl)
	}
	if _, err := s.Template("tech"); err != nil {
		t.Errorf("Template(tech) error after deleting from copy: %v", err)
	}
}

func TestConfigIsCopy(t *testing.T) {
	s := New()
	c := s.Config()
	c.Text = "mutated"
	if s.Config().Text != "LOGO" {
		t.Errorf("mutating returned Config changed the store")
	}
}

func TestTemplateNames(t *testing.T) {
	want := []string{"modern", "minimal", "tech", "creative"}
	got := TemplateNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("TemplateNames() = %v, want %v", got, want)
	}
}

func TestNewFrom(t *testing.T) {
	cfg := Default()
	cfg.Shape = shape.Diamond
	s, err := NewFrom(cfg)
	if err != nil {
		t.Fatalf("NewFrom error: %v", err)
	}
	if s.SelectedShape() != shape.Diamond {
		t.Errorf("SelectedShape() = %v, want diamond", s.SelectedShape())
	}

	cfg.Shape = shape.Kind(9)
	if _, err := NewFrom(cfg); !apperr.Is(err, apperr.ErrCodeInvalidShape) {
		t.Errorf("NewFrom(invalid) error = %v, want INVALID_SHAPE", err)
	}
}

func TestPartialMerge(t *testing.T) {
	a := Partial{Text: Ptr("a"), FontSize: Ptr(10)}
	b := Partial{Text: Ptr("b"), TextY: Ptr(5)}
	m := a.Merge(b)
	if *m.Text != "b" || *m.FontSize != 10 || *m.TextY != 5 {
		t.Errorf("Merge = text %q size %d y %d", *m.Text, *m.FontSize, *m.TextY)
	}
	if !(Partial{}).IsEmpty() || m.IsEmpty() {
		t.Errorf("IsEmpty mismatch")
	}
}
