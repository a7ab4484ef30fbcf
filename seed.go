package penrose

import "math"

// The seeds sit left of (and for kites above) the canvas center so that the
// tiling, which grows away from the seed's apex, stays on screen.
const seedShift = 2.0 / 5.0

// shift scales a center coordinate toward the origin, snapped to whole units.
func shift(c float64) float64 {
	return math.Floor(c * seedShift)
}

// KiteDartSeed returns the half kite a kite and dart tiling grows from.
//
// Both center coordinates are scaled by 2/5. The apex is the bottom-left
// corner joining the two legs of the given length; the short edge runs from
// the top vertex down to the bottom-right one.
func KiteDartSeed(center Point, length float64) []HalfTile {
	cx, cy := shift(center.X), shift(center.Y)
	left, right := cx-length/2, cx+length/2

	midX := left + length*math.Cos(math.Pi/5)
	height := length * math.Sin(math.Pi/5)
	top, bottom := cy-height/2, cy+height/2

	return []HalfTile{
		NewHalfTile(Kite, Pt(left, bottom), Pt(midX, top), Pt(right, bottom)),
	}
}

// RhombSeed returns the acute Robinson triangle a rhomb tiling grows from.
//
// Only the x coordinate of the center is scaled by 2/5. The apex lies on the
// shifted center and the base is a vertical edge to its right.
func RhombSeed(center Point, length float64) []HalfTile {
	cx, cy := shift(center.X), center.Y
	width := length * math.Sin(2*math.Pi/5)
	height := length * Phi

	right := cx + width
	top, bottom := cy-height/2, cy+height/2

	return []HalfTile{
		NewHalfTile(Acute, Pt(cx, cy), Pt(right, top), Pt(right, bottom)),
	}
}

// Seed returns the one-tile starting generation for a family.
func Seed(f Family, center Point, length float64) []HalfTile {
	if f == KiteDart {
		return KiteDartSeed(center, length)
	}
	return RhombSeed(center, length)
}
