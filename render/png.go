// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/penrose"
)

// draw creates a context the size of the snapshot canvas and renders s on it.
func (r *Renderer) draw(s penrose.Snapshot) (*gg.Context, error) {
	w, h := s.Size()
	dc := gg.NewContext(w, h)
	if err := r.Render(dc, s); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// SavePNG renders s on a canvas of its own size and writes it to path.
func (r *Renderer) SavePNG(path string, s penrose.Snapshot) error {
	dc, err := r.draw(s)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	penrose.Logger().Info("render: png saved", "path", path, "tiles", s.Len())
	return nil
}

// EncodePNG renders s on a canvas of its own size and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, s penrose.Snapshot) error {
	dc, err := r.draw(s)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
