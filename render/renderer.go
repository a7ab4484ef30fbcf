// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/penrose"
)

// ErrNilContext is returned when a nil drawing context is passed.
var ErrNilContext = errors.New("render: nil drawing context")

// Renderer draws snapshots onto a gg.Context.
//
// Renderer is NOT safe for concurrent use: gg contexts are single-threaded
// and a Renderer keeps no other state, so create one per goroutine.
type Renderer struct {
	background penrose.RGBA
	face       text.Face
	hud        bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground sets the color the canvas is cleared to before drawing.
func WithBackground(c penrose.RGBA) Option {
	return func(r *Renderer) {
		r.background = c
	}
}

// WithHUD enables the status and help text, drawn with the given face.
// A nil face disables the HUD.
func WithHUD(face text.Face) Option {
	return func(r *Renderer) {
		r.face = face
		r.hud = face != nil
	}
}

// NewRenderer creates a renderer with a white background and no HUD.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{background: penrose.White}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render clears dc and draws the tiles of s, followed by the HUD if enabled.
func (r *Renderer) Render(dc *gg.Context, s penrose.Snapshot) error {
	if dc == nil {
		return ErrNilContext
	}

	bg := r.background
	dc.ClearWithColor(gg.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A})

	if err := DrawFaces(dc, s.Faces()); err != nil {
		return err
	}
	if r.hud {
		drawHUD(dc, r.face, s)
	}
	return nil
}

// DrawFaces draws faces onto dc in two passes: fills with merge lines, then
// outlines. The context's path is left empty.
func DrawFaces(dc *gg.Context, faces []penrose.Face) error {
	if dc == nil {
		return ErrNilContext
	}
	if err := fillPass(dc, faces); err != nil {
		return err
	}
	return outlinePass(dc, faces)
}

// fillPass fills every face. Merge lines use flat caps.
func fillPass(dc *gg.Context, faces []penrose.Face) error {
	dc.SetLineCap(gg.LineCapButt)
	for i := range faces {
		if err := fillFace(dc, &faces[i]); err != nil {
			return fmt.Errorf("render: fill tile %d: %w", i, err)
		}
	}
	return nil
}

// outlinePass strokes every outline with round caps.
func outlinePass(dc *gg.Context, faces []penrose.Face) error {
	dc.SetLineWidth(penrose.OutlineWidth)
	dc.SetLineCap(gg.LineCapRound)
	for i := range faces {
		if err := strokeOutline(dc, &faces[i]); err != nil {
			return fmt.Errorf("render: outline tile %d: %w", i, err)
		}
	}
	return nil
}

// fillFace fills the triangle and paints the merge edge over the seam.
func fillFace(dc *gg.Context, f *penrose.Face) error {
	dc.SetColor(f.Fill)

	v := f.Vertices
	dc.MoveTo(v[0].X, v[0].Y)
	dc.LineTo(v[1].X, v[1].Y)
	dc.LineTo(v[2].X, v[2].Y)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetLineWidth(penrose.MergeLineWidth)
	dc.MoveTo(f.Merge[0].X, f.Merge[0].Y)
	dc.LineTo(f.Merge[1].X, f.Merge[1].Y)
	return dc.Stroke()
}

// strokeOutline strokes the open outline polyline of a face.
func strokeOutline(dc *gg.Context, f *penrose.Face) error {
	dc.SetColor(f.Stroke)

	o := f.Outline
	dc.MoveTo(o[0].X, o[0].Y)
	dc.LineTo(o[1].X, o[1].Y)
	dc.LineTo(o[2].X, o[2].Y)
	return dc.Stroke()
}
