// Package viewer shows a live trail simulation in an SDL2/OpenGL window.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/internal/engine/camera"
	"github.com/Faultbox/trailkit/internal/engine/debug"
	"github.com/Faultbox/trailkit/internal/engine/input"
	"github.com/Faultbox/trailkit/internal/engine/lighting"
	"github.com/Faultbox/trailkit/internal/engine/picking"
	"github.com/Faultbox/trailkit/internal/engine/window"
	"github.com/Faultbox/trailkit/internal/logger"
	"github.com/Faultbox/trailkit/internal/sim"
	"github.com/Faultbox/trailkit/internal/viewer/overlay"
)

// Viewer is the interactive trail viewer.
type Viewer struct {
	cfg *config.Config

	window   *window.Window
	input    *input.Input
	renderer *Renderer
	camera   *camera.OrbitCamera
	driver   *sim.Driver
	overlay  *overlay.Overlay
	clock    overlay.Clock
	shots    *debug.ScreenshotCapture
	watcher  *config.Watcher

	frame   sim.Frame
	running bool
	paused  bool
	follow  bool

	wantScreenshot bool

	log *zap.Logger
}

// New opens the window and prepares the simulation.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:    cfg,
		follow: true,
		log:    logger.Named("viewer"),
	}

	var err error
	v.driver, err = sim.NewDriver(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating driver: %w", err)
	}

	v.window, err = window.New(window.Config{
		Title:      "trailview",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the OpenGL context from the window.
	fbw, fbh := v.window.DrawableSize()
	v.renderer, err = NewRenderer(fbw, fbh, v.log)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.SetSun(sunFor(cfg.Light))

	v.input = input.New()
	v.camera = camera.NewOrbitCamera()
	v.overlay = overlay.New(cfg.Debug)
	v.clock = overlay.Clock{Step: v.driver.FixedStep()}
	v.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "trailview")

	if path := config.ResolvePath(); path != "" {
		if v.watcher, err = config.Watch(path); err != nil {
			v.log.Warn("config hot reload disabled", zap.Error(err))
		} else {
			v.log.Info("watching config", zap.String("path", path))
		}
	}

	v.reset()
	v.log.Info("viewer initialized")
	return v, nil
}

// Run executes the main loop until the window closes or Esc is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting main loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			break
		}
		v.handleInput()
		v.pollConfig()

		if !v.paused {
			for n := v.clock.Advance(dt); n > 0; n-- {
				v.frame = v.driver.Step(v.clock.Step)
			}
		}

		if v.follow {
			v.camera.Follow(v.frame.Emitter, dt)
		}

		v.overlay.Build(v.frame)
		v.renderer.Draw(Scene{
			View:      v.camera.ViewMatrix(),
			CameraPos: v.camera.Position(),
			Emitter:   v.frame.Emitter,
			Mesh:      v.frame.Mesh,
			Overlay:   v.overlay,
		})

		// Capture before the swap, while the back buffer holds this frame.
		if v.wantScreenshot {
			v.wantScreenshot = false
			v.screenshot()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			s := v.frame.Stats()
			v.window.SetTitle(fmt.Sprintf("trailview  %d fps  tick %d  rings %d  triangles %d",
				frameCount, s.Tick, s.Rings, s.Triangles))
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Int("triangles", s.Triangles))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleInput() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.DrawableSize())
		case input.EventKeyDown:
			if !e.Repeat {
				v.handleKey(e.Key)
			}
		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_MIDDLE {
				v.pick(e.MouseX, e.MouseY)
			}
		}
	}

	if dx, dy := v.input.Drag(); dx != 0 || dy != 0 {
		v.camera.HandleDrag(dx, dy)
	}
	if w := v.input.Wheel(); w != 0 {
		v.camera.HandleZoom(w)
	}

	var forward, right float32
	if v.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if forward != 0 || right != 0 {
		v.follow = false
		v.camera.HandlePan(forward, right)
	}
}

// pick frames the tube when the click hits its bounds, else recenters the orbit on the ground point.
func (v *Viewer) pick(x, y int) {
	w, h := v.window.Size()
	viewProj := v.renderer.Projection().Mul(v.camera.ViewMatrix())
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), viewProj.Inverse())

	if !v.frame.Mesh.Empty() {
		b := v.frame.Stats().Bounds
		if _, hit := ray.IntersectAABB(picking.NewAABB(b.Min, b.Max)); hit {
			v.follow = false
			v.camera.FitToBounds(b.Min, b.Max)
			v.log.Debug("picked tube", zap.Int("tick", v.frame.Tick))
			return
		}
	}
	if p, ok := ray.IntersectPlaneY(0); ok {
		v.follow = false
		v.camera.Center = p
		v.log.Debug("picked ground", zap.Float32("x", p.X), zap.Float32("z", p.Z))
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_SPACE:
		v.paused = !v.paused
		v.log.Info("pause", zap.Bool("paused", v.paused))
	case sdl.SCANCODE_PERIOD:
		if v.paused {
			v.frame = v.driver.Step(v.clock.Step)
		}
	case sdl.SCANCODE_R:
		v.reset()
	case sdl.SCANCODE_B:
		v.overlay.ShowBounds = !v.overlay.ShowBounds
	case sdl.SCANCODE_G:
		v.overlay.ShowGrid = !v.overlay.ShowGrid
	case sdl.SCANCODE_F:
		v.overlay.ShowFootprint = !v.overlay.ShowFootprint
	case sdl.SCANCODE_C:
		v.follow = !v.follow
	case sdl.SCANCODE_F5:
		path, err := v.cfg.Save()
		if err != nil {
			v.log.Error("saving config", zap.Error(err))
			return
		}
		v.log.Info("config saved", zap.String("path", path))
	case sdl.SCANCODE_F12:
		v.wantScreenshot = true
	}
}

// pollConfig swaps in a reloaded config file. Window settings need a restart.
func (v *Viewer) pollConfig() {
	if v.watcher == nil {
		return
	}
	cfg, err := v.watcher.Poll()
	if err != nil {
		v.log.Warn("config reload failed", zap.Error(err))
		return
	}
	if cfg == nil {
		return
	}

	driver, err := sim.NewDriver(cfg)
	if err != nil {
		v.log.Warn("config reload failed", zap.Error(err))
		return
	}
	cfg.Window = v.cfg.Window
	v.cfg = cfg
	v.driver = driver
	v.overlay = overlay.New(cfg.Debug)
	v.clock = overlay.Clock{Step: driver.FixedStep()}
	v.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "trailview")
	v.renderer.SetSun(sunFor(cfg.Light))
	v.reset()
	v.log.Info("config reloaded", zap.String("path", v.watcher.Path()))
}

func sunFor(c config.LightConfig) lighting.Sun {
	return lighting.Sun{Longitude: c.Longitude, Latitude: c.Latitude}
}

// reset re-initializes the chain at the emitter and recenters the camera.
func (v *Viewer) reset() {
	v.driver.Reset()
	v.clock.Reset()
	v.frame = v.driver.Step(0)
	v.camera.Center = v.frame.Emitter
	v.follow = true
	v.log.Info("simulation reset")
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.Capture(pixels, w, h, v.frame.Tick)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	if v.watcher != nil {
		v.watcher.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
