package geometry

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/shape"
)

const (
	// CornerRadius is the fixed corner radius of the square shape.
	CornerRadius = 8.0

	// HexWidthRatio scales the size to the hexagon's horizontal half-width (≈ √3/2).
	HexWidthRatio = 0.866

	// StarInnerRatio scales the size to the star's inner radius.
	StarInnerRatio = 0.4

	// StarPoints is the number of outer points of the star.
	StarPoints = 5
)

// Point is a vertex in the shape's local frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry is the result of [Compute]. The set of implementations is closed:
// [Circle], [RoundedRect] and [Polygon].
type Geometry interface {
	// Kind returns the variant tag used in JSON ("circle", "rect", "polygon").
	Kind() string
	// Bounds returns the axis-aligned bounding box as min and max corners.
	Bounds() (lo, hi Point)

	sealed()
}

// Circle is a circle centred at (CX, CY).
type Circle struct {
	CX, CY float64
	R      float64
}

// RoundedRect is an axis-aligned rectangle with rounded corners.
type RoundedRect struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
}

// Polygon is an implicitly closed vertex sequence.
type Polygon struct {
	Points []Point
}

func (Circle) Kind() string      { return "circle" }
func (RoundedRect) Kind() string { return "rect" }
func (Polygon) Kind() string     { return "polygon" }

func (Circle) sealed()      {}
func (RoundedRect) sealed() {}
func (Polygon) sealed()     {}

func (c Circle) Bounds() (Point, Point) {
	return Point{c.CX - c.R, c.CY - c.R}, Point{c.CX + c.R, c.CY + c.R}
}

func (r RoundedRect) Bounds() (Point, Point) {
	return Point{r.X, r.Y}, Point{r.X + r.Width, r.Y + r.Height}
}

func (p Polygon) Bounds() (Point, Point) {
	if len(p.Points) == 0 {
		return Point{}, Point{}
	}
	lo, hi := p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		lo.X, lo.Y = min(lo.X, pt.X), min(lo.Y, pt.Y)
		hi.X, hi.Y = max(hi.X, pt.X), max(hi.Y, pt.Y)
	}
	return lo, hi
}

// SVGPoints formats the vertices as an SVG points attribute ("x,y x,y ...").
// Coordinates use the shortest representation that round-trips.
func (p Polygon) SVGPoints() string {
	var b strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatFloat(pt.X))
		b.WriteByte(',')
		b.WriteString(FormatFloat(pt.Y))
	}
	return b.String()
}

// FormatFloat formats a coordinate compactly. Negative zero prints as "0".
func FormatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Compute returns the geometry of kind at scale size. size is half the
// configured shape size; it must not be negative.
func Compute(kind shape.Kind, size float64) (Geometry, error) {
	if size < 0 || math.IsNaN(size) {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "shape size must be non-negative, got %v", size)
	}

	s := size
	switch kind {
	case shape.Circle:
		return Circle{CX: 0, CY: 0, R: s}, nil
	case shape.Square:
		return RoundedRect{X: -s, Y: -s, Width: 2 * s, Height: 2 * s, Radius: CornerRadius}, nil
	case shape.Triangle:
		return Polygon{Points: []Point{{0, -s}, {s, s}, {-s, s}}}, nil
	case shape.Diamond:
		return Polygon{Points: []Point{{0, -s}, {s, 0}, {0, s}, {-s, 0}}}, nil
	case shape.Hexagon:
		h := s * HexWidthRatio
		return Polygon{Points: []Point{
			{0, -s}, {h, -s / 2}, {h, s / 2},
			{0, s}, {-h, s / 2}, {-h, -s / 2},
		}}, nil
	case shape.Star:
		return Polygon{Points: starPoints(s, s*StarInnerRatio)}, nil
	}
	return nil, apperr.New(apperr.ErrCodeInvalidShape, "unknown shape type: %s", kind)
}

// ComputeNamed parses name and computes its geometry.
func ComputeNamed(name string, size float64) (Geometry, error) {
	kind, err := shape.Parse(name)
	if err != nil {
		return nil, err
	}
	return Compute(kind, size)
}

// ForShapeSize converts a configured shape size (the outer bounding
// dimension) into the scale parameter expected by [Compute].
func ForShapeSize(shapeSize int) float64 {
	return float64(shapeSize) / 2
}

// VertexCount returns the number of parameter sets describing g: one for a
// circle or rectangle, the vertex count for a polygon.
func VertexCount(g Geometry) int {
	if p, ok := g.(Polygon); ok {
		return len(p.Points)
	}
	return 1
}

func starPoints(outer, inner float64) []Point {
	pts := make([]Point, 2*StarPoints)
	for i := range pts {
		angle := float64(i)*math.Pi/StarPoints - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = Point{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
	}
	return pts
}

// MarshalJSON emits {"type":"circle","cx":..,"cy":..,"r":..}.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string  `json:"type"`
		CX   float64 `json:"cx"`
		CY   float64 `json:"cy"`
		R    float64 `json:"r"`
	}{c.Kind(), c.CX, c.CY, c.R})
}

// MarshalJSON emits {"type":"rect","x":..,"y":..,"width":..,"height":..,"rx":..}.
func (r RoundedRect) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string  `json:"type"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		RX     float64 `json:"rx"`
	}{r.Kind(), r.X, r.Y, r.Width, r.Height, r.Radius})
}

// MarshalJSON emits {"type":"polygon","points":[{"x":..,"y":..},...]}.
func (p Polygon) MarshalJSON() ([]byte, error) {
	pts := p.Points
	if pts == nil {
		pts = []Point{}
	}
	return json.Marshal(struct {
		Type   string  `json:"type"`
		Points []Point `json:"points"`
	}{p.Kind(), pts})
}
