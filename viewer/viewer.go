// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewer

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/penrose"
	"github.com/gogpu/penrose/render"
)

// Viewer owns the displayed snapshot and repaints it on demand.
//
// Key and draw callbacks may arrive from different goroutines depending on
// the platform, so all methods are safe for concurrent use.
type Viewer struct {
	mu       sync.Mutex
	snapshot penrose.Snapshot
	renderer *render.Renderer
	dirty    bool
}

// New creates a viewer showing s, drawn by r.
// A nil renderer is replaced by render.NewRenderer().
func New(s penrose.Snapshot, r *render.Renderer) *Viewer {
	if r == nil {
		r = render.NewRenderer()
	}
	return &Viewer{
		snapshot: s,
		renderer: r,
		dirty:    true,
	}
}

// Snapshot returns the snapshot currently displayed.
func (v *Viewer) Snapshot() penrose.Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// HandleKey applies the event bound to key, if any.
// It reports whether the displayed tiling changed.
func (v *Viewer) HandleKey(key gpucontext.Key) bool {
	e, ok := EventForKey(key)
	if !ok {
		return false
	}
	return v.Apply(e)
}

// Apply applies e to the displayed snapshot.
// It reports whether the displayed tiling changed.
func (v *Viewer) Apply(e penrose.Event) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	prev := v.snapshot
	next := prev.Apply(e)
	if next.Family() == prev.Family() && next.Depth() == prev.Depth() {
		return false
	}
	v.snapshot = next
	v.dirty = true

	penrose.Logger().Debug("viewer: tiling changed",
		"event", e.String(),
		"family", next.Family().String(),
		"depth", next.Depth(),
		"tiles", next.Len(),
	)
	return true
}

// Resize regenerates the tiling for a canvas of the given size.
func (v *Viewer) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if w, h := v.snapshot.Size(); w == width && h == height {
		return
	}
	v.snapshot = v.snapshot.Resize(width, height)
	v.dirty = true
}

// fit sizes the tiling to a canvas of width x height.
// A resized canvas is blank and always needs a repaint.
func (v *Viewer) fit(width, height int, canvasResized bool) {
	v.Resize(width, height)
	if canvasResized {
		v.Invalidate()
	}
}

// Invalidate forces a repaint on the next Draw, e.g. after the canvas was cleared.
func (v *Viewer) Invalidate() {
	v.mu.Lock()
	v.dirty = true
	v.mu.Unlock()
}

// Dirty reports whether the next Draw will repaint.
func (v *Viewer) Dirty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dirty
}

// Draw repaints dc if the tiling changed since the last Draw.
// It reports whether anything was drawn.
func (v *Viewer) Draw(dc *gg.Context) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.dirty {
		return false, nil
	}
	if err := v.renderer.Render(dc, v.snapshot); err != nil {
		return false, err
	}
	v.dirty = false
	return true, nil
}
