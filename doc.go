// Package penrose generates Penrose tilings by repeated deflation of half-tiles.
//
// # Overview
//
// Two tilings are supported: the kite and dart tiling (P2) and the rhomb
// tiling (P3). Each tile is split into two mirror-image isosceles triangles,
// called half-tiles, because the substitution rules are simpler on triangles
// than on whole tiles. A generation is a slice of [HalfTile] values; deflating
// every tile of a generation yields the next, finer one.
//
// # Quick Start
//
//	import "github.com/gogpu/penrose"
//
//	// Kite and dart tiling, five levels deep, centered on an 800x500 canvas
//	s := penrose.New(
//	    penrose.WithFamily(penrose.KiteDart),
//	    penrose.WithDepth(5),
//	)
//
//	for _, f := range s.Faces() {
//	    // fill f.Vertices with f.Fill, stroke f.Outline with f.Stroke
//	}
//
// The render package draws faces onto a gg.Context and the viewer package
// opens an interactive window.
//
// # Regeneration
//
// A tiling is always rebuilt from its seed. The seed edge length grows by
// 1/Phi per level of depth, so the final tiles keep roughly the same size
// whatever the depth. A [Snapshot] is immutable; [Snapshot.Apply] returns a
// new one for each control [Event].
//
// # Coordinate System
//
// Same as gg: origin at top-left, X increases right, Y increases down.
package penrose

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
