// Command statorsnap renders the stator model offline: still PNG
// turntable frames and an optional STL export.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/fauxgl"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/stator/internal/d3"
	"github.com/soypat/stator/internal/logger"
	"github.com/soypat/stator/obj"
	"github.com/soypat/stator/render"
)

func main() {
	var (
		outDir   = flag.String("o", ".", "output directory for PNG frames")
		frames   = flag.Int("frames", 1, "number of turntable frames to render")
		width    = flag.Int("width", 1280, "frame width in pixels")
		height   = flag.Int("height", 720, "frame height in pixels")
		stlPath  = flag.String("stl", "", "also export the model geometry to this STL file")
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	if err := logger.Init(*logLevel, ""); err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	model, err := obj.Stator()
	if err != nil {
		logger.L().Fatal("failed to build stator model", zap.Error(err))
	}

	if *stlPath != "" {
		if err := render.CreateSTL(*stlPath, render.NewModelRenderer(model)); err != nil {
			logger.L().Fatal("STL export failed", zap.Error(err))
		}
		logger.L().Info("STL written", zap.String("path", *stlPath))
	}

	parts := render.Flatten(model)
	bounds := d3.Box(render.Bounds(parts))
	center := bounds.Center()
	// Orbit radius framing the whole bounding box with some margin.
	dist := 1.6 * r3.Norm(bounds.Size())
	logger.L().Debug("model bounds",
		zap.Any("min", bounds.Min), zap.Any("max", bounds.Max))

	const pitch = 0.45
	for i := 0; i < *frames; i++ {
		yaw := 2 * math.Pi * float64(i) / float64(*frames)
		view := render.DefaultView(*width, *height)
		view.Eye = r3.Vec{
			X: center.X + dist*math.Cos(pitch)*math.Sin(yaw),
			Y: center.Y + dist*math.Sin(pitch),
			Z: center.Z + dist*math.Cos(pitch)*math.Cos(yaw),
		}
		view.LookAt = center
		img, err := render.Snapshot(parts, view)
		if err != nil {
			logger.L().Fatal("render failed", zap.Int("frame", i), zap.Error(err))
		}
		name := filepath.Join(*outDir, fmt.Sprintf("stator_%03d.png", i))
		if err := fauxgl.SavePNG(name, img); err != nil {
			logger.L().Fatal("PNG write failed", zap.String("path", name), zap.Error(err))
		}
		logger.L().Info("frame written", zap.String("path", name))
	}
}
