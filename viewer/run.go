// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/penrose"
)

// ErrCanvas is returned by Run when the drawing canvas could not be created.
var ErrCanvas = errors.New("viewer: canvas creation failed")

// DefaultTitle is the window title used when Config.Title is empty.
const DefaultTitle = "Penrose Tiling"

// Config configures the viewer window.
type Config struct {
	// Title is the window title.
	Title string
}

// Run opens a window showing v and blocks until it is closed.
// The window starts at the size of v's snapshot.
//
// Tiles are rasterized on the CPU and uploaded to the window surface. Import
// github.com/gogpu/gg/gpu in the main package to rasterize on the GPU instead.
func Run(v *Viewer, cfg Config) error {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	width, height := v.Snapshot().Size()
	log := penrose.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(width, height).
		WithContinuousRender(true))

	var canvas *ggcanvas.Canvas
	var canvasErr error

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 || canvasErr != nil {
			return
		}

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			c, err := ggcanvas.New(provider, w, h)
			if err != nil {
				canvasErr = fmt.Errorf("%w: %w", ErrCanvas, err)
				log.Error("viewer: canvas creation failed", "err", err)
				app.Quit()
				return
			}
			canvas = c
			log.Info("viewer: canvas created", "width", w, "height", h, "backend", dc.Backend())
		}

		canvasResized := false
		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				log.Warn("viewer: resize failed", "err", err)
				return
			}
			canvasResized = true
		}
		v.fit(w, h, canvasResized)

		if v.Dirty() {
			var drawErr error
			if err := canvas.Draw(func(cc *gg.Context) {
				_, drawErr = v.Draw(cc)
			}); err != nil {
				log.Warn("viewer: draw failed", "err", err)
			}
			if drawErr != nil {
				log.Warn("viewer: render failed", "err", drawErr)
			}
		}

		sv := dc.RenderTarget().SurfaceView()
		sw, sh := dc.SurfaceSize()
		if err := canvas.RenderDirect(sv, sw, sh); err != nil {
			log.Warn("viewer: present failed", "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		v.HandleKey(key)
	})

	app.OnClose(func() {
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return canvasErr
}
