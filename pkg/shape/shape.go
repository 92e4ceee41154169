// Package shape defines the closed set of logo shape kinds.
//
// The kinds are ordered: the order of [Kinds] is the canonical order used by
// shape pickers to map a highlighted index back to a kind and vice versa.
// Both the geometry engine and the configuration store depend on this
// package; neither depends on the other.
package shape

import (
	"strconv"
	"strings"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
)

// Kind identifies one of the six supported shape families.
type Kind uint8

// Shape kinds in canonical order.
const (
	Circle Kind = iota
	Square
	Triangle
	Diamond
	Hexagon
	Star

	count
)

var names = [count]string{
	Circle:   "circle",
	Square:   "square",
	Triangle: "triangle",
	Diamond:  "diamond",
	Hexagon:  "hexagon",
	Star:     "star",
}

// Kinds returns all shape kinds in canonical order.
func Kinds() []Kind {
	return []Kind{Circle, Square, Triangle, Diamond, Hexagon, Star}
}

// Names returns the shape names in canonical order.
func Names() []string {
	out := make([]string, count)
	copy(out, names[:])
	return out
}

// Valid reports whether k is one of the six defined kinds.
func (k Kind) Valid() bool { return k < count }

// String returns the lowercase shape name, or "Kind(n)" for undefined values.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return names[k]
}

// Index returns the position of k in the canonical order, or -1 if k is invalid.
func (k Kind) Index() int {
	if !k.Valid() {
		return -1
	}
	return int(k)
}

// FromIndex maps a canonical index back to a kind.
func FromIndex(i int) (Kind, bool) {
	if i < 0 || i >= int(count) {
		return 0, false
	}
	return Kind(i), true
}

// Parse resolves a shape name. Matching is case-insensitive and ignores
// surrounding whitespace. Unknown names fail with INVALID_SHAPE.
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range names {
		if s == n {
			return Kind(i), nil
		}
	}
	return 0, apperr.New(apperr.ErrCodeInvalidShape, "unknown shape type: %s", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, apperr.New(apperr.ErrCodeInvalidShape, "unknown shape type: %s", k)
	}
	return []byte(names[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Next returns the kind after k in canonical order, wrapping around.
// An invalid kind is returned unchanged.
func (k Kind) Next() Kind {
	if !k.Valid() {
		return k
	}
	return (k + 1) % count
}

// Prev returns the kind before k in canonical order, wrapping around.
// An invalid kind is returned unchanged.
func (k Kind) Prev() Kind {
	if !k.Valid() {
		return k
	}
	return (k + count - 1) % count
}
