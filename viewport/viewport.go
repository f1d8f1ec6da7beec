// Package viewport hosts the assembled model in an interactive,
// auto-rotating SDL2 window. It owns the window, camera and render
// loop; the model tree it displays is read-only data and is never
// mutated.
package viewport

import (
	"fmt"
	"image"
	"image/draw"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/soypat/stator/internal/config"
	"github.com/soypat/stator/internal/d3"
	"github.com/soypat/stator/internal/logger"
	"github.com/soypat/stator/render"
	"github.com/soypat/stator/scene"
)

func init() {
	// SDL event handling must happen on the main thread.
	runtime.LockOSThread()
}

// Host owns the SDL2 window and drives the render loop over a model
// tree. Acquire with New, release with Close.
type Host struct {
	cfg    *config.Config
	window *sdl.Window
	camera *OrbitCamera
}

// New opens the viewer window described by cfg.
func New(cfg *config.Config) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}
	window, err := sdl.CreateWindow(
		cfg.Window.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Window.Width),
		int32(cfg.Window.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	logger.L().Info("window created",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)
	return &Host{
		cfg:    cfg,
		window: window,
		camera: NewOrbitCamera(),
	}, nil
}

// Close destroys the window and shuts down SDL.
func (h *Host) Close() {
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
	}
	sdl.Quit()
}

// Run displays the model until the window is closed or escape is
// pressed. The model is flattened once up front; every frame only moves
// the camera, never the tree.
func (h *Host) Run(model *scene.Group) error {
	parts := render.Flatten(model)
	var nt int
	for _, p := range parts {
		nt += len(p.Triangles)
	}
	logger.L().Info("model flattened", zap.Int("parts", len(parts)), zap.Int("triangles", nt))
	// Center the orbit on the model rather than a fixed point.
	bounds := d3.Box(render.Bounds(parts))
	h.camera.Center = bounds.Center()

	vp := h.cfg.Viewport
	autoRotate := vp.AutoRotate
	dragging := false
	last := time.Now()
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					return nil
				case sdl.K_SPACE:
					autoRotate = !autoRotate
					logger.L().Debug("auto-rotate toggled", zap.Bool("enabled", autoRotate))
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					h.camera.Drag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				h.camera.Zoom(float32(e.Y))
			}
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if autoRotate && !dragging {
			h.camera.Advance(float32(vp.RotateSpeed), dt)
		}

		if err := h.drawFrame(parts); err != nil {
			return err
		}
		if vp.FrameDelayMS > 0 {
			sdl.Delay(uint32(vp.FrameDelayMS))
		}
	}
}

// drawFrame renders one frame with the current camera and blits it to
// the window surface.
func (h *Host) drawFrame(parts []render.Part) error {
	view := render.DefaultView(h.cfg.Window.Width, h.cfg.Window.Height)
	view.Eye = h.camera.Position()
	view.LookAt = h.camera.Center
	view.Supersample = h.cfg.Viewport.Supersample
	view.Background = h.cfg.Viewport.Background
	img, err := render.Snapshot(parts, view)
	if err != nil {
		return err
	}
	surface, err := h.window.GetSurface()
	if err != nil {
		return fmt.Errorf("window surface: %w", err)
	}
	if err := blit(surface, img); err != nil {
		return err
	}
	return h.window.UpdateSurface()
}

// blit copies img into the window surface, converting to the surface's
// packed 32-bit layout.
func blit(surface *sdl.Surface, img image.Image) error {
	if surface.BytesPerPixel() != 4 {
		return fmt.Errorf("unsupported window surface depth %d bytes per pixel", surface.BytesPerPixel())
	}
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	}
	w := min(int(surface.W), bounds.Dx())
	hh := min(int(surface.H), bounds.Dy())
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < hh; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := pixels[y*pitch:]
		for x := 0; x < w; x++ {
			// RGBA source to little-endian XRGB8888 destination.
			dst[x*4+0] = src[x*4+2]
			dst[x*4+1] = src[x*4+1]
			dst[x*4+2] = src[x*4+0]
			dst[x*4+3] = 0xff
		}
	}
	return nil
}

func min(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
