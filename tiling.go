package penrose

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Generate builds a tiling of the given family deflated depth times.
//
// The seed is enlarged by 1/Phi per level so that, since every deflation
// shrinks edges by Phi, the final tiles have edges of about baseLength.
// A negative depth is treated as 0, which returns the seed itself.
func Generate(f Family, depth int, center Point, baseLength float64) []HalfTile {
	depth = max(depth, 0)
	start := time.Now()

	initialLength := baseLength / math.Pow(Phi, float64(depth))
	tiles := Seed(f, center, initialLength)
	for range depth {
		tiles = DeflateAll(tiles)
	}

	Logger().Debug("penrose: tiling generated",
		slog.String("family", f.String()),
		slog.Int("depth", depth),
		slog.Int("tiles", len(tiles)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return tiles
}

// Event is a control input that changes the displayed tiling.
type Event uint8

const (
	// IncreaseDepth adds one level of deflation.
	IncreaseDepth Event = iota + 1
	// DecreaseDepth removes one level of deflation. It does nothing at depth 0.
	DecreaseDepth
	// ToggleFamily switches between the rhomb and the kite and dart tilings.
	ToggleFamily
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case IncreaseDepth:
		return "IncreaseDepth"
	case DecreaseDepth:
		return "DecreaseDepth"
	case ToggleFamily:
		return "ToggleFamily"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

// Snapshot is the complete state of a displayed tiling.
//
// A Snapshot is immutable: Apply and Resize return a new Snapshot with
// freshly generated tiles and leave the receiver untouched. The zero
// value holds no tiles; use New.
type Snapshot struct {
	family     Family
	depth      int
	baseLength float64
	width      int
	height     int
	tiles      []HalfTile
}

// New creates a Snapshot and generates its tiles.
func New(opts ...Option) Snapshot {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := Snapshot{
		family:     o.family,
		depth:      o.depth,
		baseLength: o.baseLength,
		width:      o.width,
		height:     o.height,
	}
	return s.regenerate()
}

// regenerate recomputes the tiles from the seed for the current parameters.
func (s Snapshot) regenerate() Snapshot {
	s.tiles = Generate(s.family, s.depth, s.Center(), s.baseLength)
	return s
}

// Apply returns the snapshot that results from handling e.
// Unknown events and DecreaseDepth at depth 0 return s unchanged.
func (s Snapshot) Apply(e Event) Snapshot {
	switch e {
	case IncreaseDepth:
		s.depth++
	case DecreaseDepth:
		if s.depth == 0 {
			return s
		}
		s.depth--
	case ToggleFamily:
		s.family = s.family.Toggle()
	default:
		return s
	}
	return s.regenerate()
}

// Resize returns the snapshot regenerated for a canvas of the given size.
// It returns s unchanged if the size is the same or not positive.
func (s Snapshot) Resize(width, height int) Snapshot {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return s
	}
	s.width, s.height = width, height
	return s.regenerate()
}

// Family returns the tiling family.
func (s Snapshot) Family() Family { return s.family }

// Depth returns the number of deflations applied to the seed.
func (s Snapshot) Depth() int { return s.depth }

// BaseLength returns the target edge length of the rendered tiles.
func (s Snapshot) BaseLength() float64 { return s.baseLength }

// Size returns the canvas width and height.
func (s Snapshot) Size() (width, height int) { return s.width, s.height }

// Center returns the canvas center in whole canvas units.
func (s Snapshot) Center() Point {
	return Pt(float64(s.width/2), float64(s.height/2))
}

// Len returns the number of half-tiles.
func (s Snapshot) Len() int { return len(s.tiles) }

// Tiles returns a copy of the half-tiles in paint order.
func (s Snapshot) Tiles() []HalfTile {
	return append([]HalfTile(nil), s.tiles...)
}

// Faces returns the render description of every half-tile in paint order.
func (s Snapshot) Faces() []Face {
	return Faces(s.tiles)
}
