// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewer shows a Penrose tiling in an interactive gogpu window.
//
// Architecture:
//
//	penrose.Snapshot → render.Renderer → gg.Context → ggcanvas.Canvas → Window
//
// Keys:
//
//	Up    deflate one level deeper
//	Down  go back one level (no effect at depth 0)
//	Tab   switch between rhombs and kites and darts
//
// Every key regenerates the whole tiling from its seed before the next
// frame. The window redraws continuously; the gg canvas is only repainted
// when the snapshot or the window size changed.
package viewer
