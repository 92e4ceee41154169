package geometry

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/shape"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestComputeArity(t *testing.T) {
	want := map[shape.Kind]int{
		shape.Circle:   1,
		shape.Square:   1,
		shape.Triangle: 3,
		shape.Diamond:  4,
		shape.Hexagon:  6,
		shape.Star:     10,
	}

	for _, kind := range shape.Kinds() {
		for _, size := range []float64{0, 1, 60, 123.5} {
			g, err := Compute(kind, size)
			if err != nil {
				t.Fatalf("Compute(%s, %v) error: %v", kind, size, err)
			}
			if got := VertexCount(g); got != want[kind] {
				t.Errorf("VertexCount(Compute(%s, %v)) = %d, want %d", kind, size, got, want[kind])
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	for _, kind := range shape.Kinds() {
		a, _ := Compute(kind, 77.7)
		b, _ := Compute(kind, 77.7)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Compute(%s) not deterministic: %v vs %v", kind, a, b)
		}
	}
}

func TestCircle(t *testing.T) {
	g, _ := Compute(shape.Circle, 60)
	c, ok := g.(Circle)
	if !ok {
		t.Fatalf("Compute(circle) = %T, want Circle", g)
	}
	if c.CX != 0 || c.CY != 0 || c.R != 60 {
		t.Errorf("Circle = %+v, want centre (0,0) radius 60", c)
	}
}

func TestSquare(t *testing.T) {
	g, _ := Compute(shape.Square, 60)
	r, ok := g.(RoundedRect)
	if !ok {
		t.Fatalf("Compute(square) = %T, want RoundedRect", g)
	}
	want := RoundedRect{X: -60, Y: -60, Width: 120, Height: 120, Radius: 8}
	if r != want {
		t.Errorf("RoundedRect = %+v, want %+v", r, want)
	}
}

func TestPolygonVertices(t *testing.T) {
	const s = 10.0
	h := s * 0.866

	tests := []struct {
		kind shape.Kind
		want []Point
	}{
		{shape.Triangle, []Point{{0, -s}, {s, s}, {-s, s}}},
		{shape.Diamond, []Point{{0, -s}, {s, 0}, {0, s}, {-s, 0}}},
		{shape.Hexagon, []Point{{0, -s}, {h, -s / 2}, {h, s / 2}, {0, s}, {-h, s / 2}, {-h, -s / 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g, err := Compute(tt.kind, s)
			if err != nil {
				t.Fatalf("Compute error: %v", err)
			}
			p := g.(Polygon)
			if len(p.Points) != len(tt.want) {
				t.Fatalf("len(Points) = %d, want %d", len(p.Points), len(tt.want))
			}
			for i, pt := range p.Points {
				if !near(pt.X, tt.want[i].X) || !near(pt.Y, tt.want[i].Y) {
					t.Errorf("Points[%d] = %v, want %v", i, pt, tt.want[i])
				}
			}
		})
	}
}

func TestHexagonHalfWidth(t *testing.T) {
	for _, s := range []float64{1, 60, 250} {
		g, _ := Compute(shape.Hexagon, s)
		lo, hi := g.Bounds()
		if !near(hi.X, s*0.866) || !near(lo.X, -s*0.866) {
			t.Errorf("hexagon(%v) half-width = [%v, %v], want ±%v", s, lo.X, hi.X, s*0.866)
		}
	}
}

func TestStarAlternation(t *testing.T) {
	const s = 50.0
	g, _ := Compute(shape.Star, s)
	p := g.(Polygon)

	for i, pt := range p.Points {
		wantR := s
		if i%2 == 1 {
			wantR = 0.4 * s
		}
		r := math.Hypot(pt.X, pt.Y)
		if !near(r, wantR) {
			t.Errorf("radius(%d) = %v, want %v", i, r, wantR)
		}

		wantAngle := float64(i)*36 - 90
		angle := math.Atan2(pt.Y, pt.X) * 180 / math.Pi
		diff := math.Mod(angle-wantAngle+720, 360)
		if diff > 1e-6 && 360-diff > 1e-6 {
			t.Errorf("angle(%d) = %v, want %v", i, angle, wantAngle)
		}
	}

	if !near(p.Points[0].X, 0) || !near(p.Points[0].Y, -s) {
		t.Errorf("first star vertex = %v, want (0, %v)", p.Points[0], -s)
	}
}

func TestZeroSize(t *testing.T) {
	for _, kind := range shape.Kinds() {
		g, err := Compute(kind, 0)
		if err != nil {
			t.Errorf("Compute(%s, 0) error: %v", kind, err)
			continue
		}
		lo, hi := g.Bounds()
		if kind != shape.Square && (lo != (Point{}) || hi != (Point{})) {
			t.Errorf("Compute(%s, 0) bounds = %v..%v, want a point", kind, lo, hi)
		}
	}
}

func TestComputeErrors(t *testing.T) {
	if _, err := ComputeNamed("unknown", 10); !apperr.Is(err, apperr.ErrCodeInvalidShape) {
		t.Errorf(`ComputeNamed("unknown", 10) error = %v, want INVALID_SHAPE`, err)
	}
	if _, err := Compute(shape.Kind(99), 10); !apperr.Is(err, apperr.ErrCodeInvalidShape) {
		t.Errorf("Compute(Kind(99), 10) error = %v, want INVALID_SHAPE", err)
	}
	if _, err := Compute(shape.Circle, -1); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("Compute(circle, -1) error = %v, want INVALID_INPUT", err)
	}
}

func TestForShapeSize(t *testing.T) {
	if got := ForShapeSize(120); got != 60 {
		t.Errorf("ForShapeSize(120) = %v, want 60", got)
	}
	if got := ForShapeSize(55); got != 27.5 {
		t.Errorf("ForShapeSize(55) = %v, want 27.5", got)
	}
}

func TestSVGPoints(t *testing.T) {
	g, _ := Compute(shape.Diamond, 60)
	want := "0,-60 60,0 0,60 -60,0"
	if got := g.(Polygon).SVGPoints(); got != want {
		t.Errorf("SVGPoints() = %q, want %q", got, want)
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		kind shape.Kind
		want string
	}{
		{shape.Circle, `{"type":"circle","cx":0,"cy":0,"r":5}`},
		{shape.Square, `{"type":"rect","x":-5,"y":-5,"width":10,"height":10,"rx":8}`},
		{shape.Triangle, `{"type":"polygon","points":[{"x":0,"y":-5},{"x":5,"y":5},{"x":-5,"y":5}]}`},
	}

	for _, tt := range tests {
		g, _ := Compute(tt.kind, 5)
		data, err := json.Marshal(g)
		if err != nil {
			t.Fatalf("Marshal(%s) error: %v", tt.kind, err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%s) = %s, want %s", tt.kind, data, tt.want)
		}
	}
}
