package penrose

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily is returned by ParseFamily for labels that name no tiling family.
var ErrUnknownFamily = errors.New("penrose: unknown tiling family")

// Family selects one of the two Penrose tilings.
type Family uint8

const (
	// Rhomb is the P3 tiling built from acute and obtuse Robinson triangles.
	Rhomb Family = iota
	// KiteDart is the P2 tiling built from half kites and half darts.
	KiteDart
)

// String returns the label shown in the viewer.
func (f Family) String() string {
	switch f {
	case Rhomb:
		return "Rhombs"
	case KiteDart:
		return "Kite & Dart"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Toggle returns the other family.
func (f Family) Toggle() Family {
	if f == KiteDart {
		return Rhomb
	}
	return KiteDart
}

// ParseFamily converts a user supplied label into a Family.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rhomb", "rhombs", "rhombus", "p3":
		return Rhomb, nil
	case "kitedart", "kite-dart", "kite & dart", "kite", "p2":
		return KiteDart, nil
	}
	return Rhomb, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Variant is the concrete kind of a half-tile.
type Variant uint8

const (
	// Kite is half of a kite, split along its axis of symmetry.
	Kite Variant = iota
	// Dart is half of a dart.
	Dart
	// Acute is the acute Robinson triangle (36° apex), half of a thin rhomb.
	Acute
	// Obtuse is the obtuse Robinson triangle (108° apex), half of a thick rhomb.
	Obtuse
)

// Family returns the tiling family the variant belongs to.
func (v Variant) Family() Family {
	if v == Kite || v == Dart {
		return KiteDart
	}
	return Rhomb
}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Kite:
		return "Kite"
	case Dart:
		return "Dart"
	case Acute:
		return "Acute"
	case Obtuse:
		return "Obtuse"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// HalfTile is an isosceles triangle making up one half of a Penrose tile.
//
// The order of Vertex1 and Vertex2 is significant: it selects which
// sub-triangles a deflation produces and which edge is drawn as the
// merge line joining the two halves of a whole tile.
type HalfTile struct {
	Apex    Point
	Vertex1 Point
	Vertex2 Point
	Variant Variant
}

// NewHalfTile creates a half-tile of the given variant.
func NewHalfTile(v Variant, apex, vertex1, vertex2 Point) HalfTile {
	return HalfTile{Apex: apex, Vertex1: vertex1, Vertex2: vertex2, Variant: v}
}

// Family returns the tiling family of the tile.
func (t HalfTile) Family() Family {
	return t.Variant.Family()
}

// Area returns the signed area of the triangle.
// The sign follows the winding of Apex, Vertex1, Vertex2.
func (t HalfTile) Area() float64 {
	return t.Vertex1.Sub(t.Apex).Cross(t.Vertex2.Sub(t.Apex)) / 2
}
