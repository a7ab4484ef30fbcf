// Command penrose renders Penrose tilings to PNG or shows them in a window.
//
// Usage:
//
//	penrose -type kitedart -depth 6 -output tiling.png
//	penrose -window
//	penrose -config penrose.yaml -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/penrose"
	"github.com/gogpu/penrose/internal/config"
	"github.com/gogpu/penrose/render"
	"github.com/gogpu/penrose/viewer"
)

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "penrose:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("penrose", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML config file")
		width      = fs.Int("width", penrose.DefaultWidth, "canvas width")
		height     = fs.Int("height", penrose.DefaultHeight, "canvas height")
		depth      = fs.Int("depth", 0, "number of deflations")
		tiling     = fs.String("type", "rhomb", "tiling type: rhomb or kitedart")
		base       = fs.Float64("base", penrose.DefaultBaseLength, "edge length of the final tiles")
		output     = fs.String("output", "penrose.png", "output file")
		window     = fs.Bool("window", false, "open an interactive window instead of writing a file")
		hud        = fs.Bool("hud", true, "draw status and help text")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	penrose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
	}

	// Flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "depth":
			cfg.Depth = *depth
		case "type":
			cfg.Tiling = *tiling
		case "base":
			cfg.BaseLength = *base
		case "output":
			cfg.Output = *output
		case "hud":
			cfg.HUD = hud
		}
	})
	snapshotOpts, err := cfg.Options()
	if err != nil {
		return err
	}
	s := penrose.New(snapshotOpts...)

	var opts []render.Option
	if cfg.ShowHUD() {
		face, err := render.LoadFace(render.DefaultFontSize)
		if err != nil {
			penrose.Logger().Warn("hud disabled", "err", err)
		} else {
			opts = append(opts, render.WithHUD(face))
		}
	}
	r := render.NewRenderer(opts...)

	if *window {
		return viewer.Run(viewer.New(s, r), viewer.Config{})
	}

	if err := r.SavePNG(cfg.Output, s); err != nil {
		return err
	}
	w, h := s.Size()
	penrose.Logger().Info("tiling saved",
		"path", cfg.Output,
		"type", s.Family().String(),
		"depth", s.Depth(),
		"tiles", s.Len(),
		"size", fmt.Sprintf("%dx%d", w, h),
	)
	return nil
}
