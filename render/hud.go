// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/penrose"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HelpText is the key help drawn at the bottom of the canvas.
const HelpText = "Press Up, Down or Tab"

// hudMargin is the distance of the HUD text from the canvas edges.
const hudMargin = 10

// DefaultFontSize is the HUD font size in points.
const DefaultFontSize = 14

// LoadFace returns a face of the embedded Go Regular font.
func LoadFace(size float64) (text.Face, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: load hud font: %w", err)
	}
	penrose.Logger().Debug("render: hud font loaded", "font", source.Name(), "size", size)
	return source.Face(size), nil
}

var printer = message.NewPrinter(language.English)

// Status returns the status line for s, e.g.
// "Tile type: Rhombs  |  Depth: 3  |  Tiles: 13".
func Status(s penrose.Snapshot) string {
	return printer.Sprintf("Tile type: %s  |  Depth: %d  |  Tiles: %d", s.Family(), s.Depth(), s.Len())
}

// drawHUD draws the status line at the top center and the key help at the
// bottom center of dc.
func drawHUD(dc *gg.Context, face text.Face, s penrose.Snapshot) {
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.SetFont(face)
	dc.SetColor(penrose.Black)
	dc.DrawStringAnchored(Status(s), w/2, hudMargin, 0.5, 0)
	dc.DrawStringAnchored(HelpText, w/2, h-hudMargin, 0.5, 1)
}
