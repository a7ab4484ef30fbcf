// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws Penrose tilings with gg.
//
// Rendering happens in two passes over the faces of a snapshot. The first
// pass fills every half-tile and paints its merge edge in the fill color, so
// the two halves of each kite, dart or rhomb read as one tile. The second pass
// strokes every outline, so no later fill can cover an earlier outline.
//
// # Usage
//
//	s := penrose.New(penrose.WithDepth(6))
//
//	dc := gg.NewContext(800, 500)
//	r := render.NewRenderer()
//	if err := r.Render(dc, s); err != nil {
//	    log.Fatal(err)
//	}
//	_ = dc.SavePNG("tiling.png")
//
// For headless output, [Renderer.SavePNG] and [Renderer.EncodePNG] create the context,
// render and encode in one call.
package render
