// Package app implements the main loop wiring window, controller, scene and UI.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/venture-cube/internal/config"
	"github.com/Faultbox/venture-cube/internal/content"
	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/audio"
	"github.com/Faultbox/venture-cube/internal/engine/camera"
	"github.com/Faultbox/venture-cube/internal/engine/debug"
	"github.com/Faultbox/venture-cube/internal/engine/input"
	"github.com/Faultbox/venture-cube/internal/engine/picking"
	"github.com/Faultbox/venture-cube/internal/engine/renderer"
	"github.com/Faultbox/venture-cube/internal/engine/window"
	"github.com/Faultbox/venture-cube/internal/logger"
	"github.com/Faultbox/venture-cube/internal/rotation"
	"github.com/Faultbox/venture-cube/internal/scene"
	"github.com/Faultbox/venture-cube/internal/ui"
	"github.com/Faultbox/venture-cube/pkg/math"
)

// Title is the window title.
const Title = "Venture Cube"

// Camera placement.
const (
	cameraFOV      = 45
	cameraNear     = 0.1
	cameraFar      = 100
	cameraDistance = 6
)

// App is the running application.
type App struct {
	cfg *config.Config
	log *zap.Logger

	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	overlay  *ui.Overlay
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture

	table      *content.Table
	scene      *scene.Scene
	camera     *camera.PerspectiveCamera
	controller *rotation.Controller

	// pressed is set while a press that started on the cube is held.
	pressed        bool
	lastX, lastY   float32
	wantScreenshot bool
}

// New creates the window, GL resources and scene. Resources acquired before
// a failure are released.
func New(cfg *config.Config) (_ *App, err error) {
	log := logger.Named("app")

	rot, err := cfg.Controller.Rotation()
	if err != nil {
		return nil, fmt.Errorf("controller config: %w", err)
	}
	table, err := loadContent(cfg.Content.Path)
	if err != nil {
		return nil, err
	}
	format, err := debug.ParseFormat(cfg.Debug.ScreenshotFormat)
	if err != nil {
		return nil, fmt.Errorf("screenshot format: %w", err)
	}

	checkShortcuts(log, table, rot.Presets)

	a := &App{
		cfg:        cfg,
		log:        log,
		table:      table,
		controller: rotation.New(rot),
		camera:     camera.NewPerspective(cameraFOV, cameraNear, cameraFar, cameraDistance),
		shots:      debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "venturecube", format),
	}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	// Window first: it owns the GL context everything else needs.
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	pw, ph := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: pw, Height: ph, MSAA: cfg.Graphics.MSAA})
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	w, h := a.window.GetSize()
	a.overlay, err = ui.New(w, h, table, ui.Options{
		LoaderDuration: cfg.UI.LoaderDuration,
		ShowFPS:        cfg.UI.ShowFPS,
	})
	if err != nil {
		return nil, fmt.Errorf("create overlay: %w", err)
	}

	a.input = input.New(w, h)
	a.camera.Resize(w, h)
	a.scene = scene.Build(table, cfg.Scene.Options())
	if cfg.Debug.ShowPickBounds {
		a.addPickBounds()
	}
	a.initAudio()

	log.Info("application initialized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("drawableWidth", pw),
		zap.Int("drawableHeight", ph),
		zap.Int("particles", cfg.Scene.Particles))
	return a, nil
}

func loadContent(path string) (*content.Table, error) {
	if path == "" {
		return content.Default(), nil
	}
	t, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", path, err)
	}
	return t, nil
}

// addPickBounds hangs a wireframe of every pick box off the cube group. The
// group is still unrotated here, so world bounds equal group-local bounds.
func (a *App) addPickBounds() {
	g := debug.PickBoundsOverlay(a.scene.PickTargets(), 0.005)
	a.scene.Group.Add(scene.NewMesh("pick-bounds", g, scene.Basic(math.Vec3{X: 1, Y: 1}, 1)))
	a.scene.Root.UpdateWorld(math.Identity())
}

// initAudio starts the speaker. Failures only disable sound.
func (a *App) initAudio() {
	if !a.cfg.Audio.Enabled {
		return
	}
	m := audio.New()
	m.SetMasterVolume(a.cfg.Audio.MasterVolume)
	m.SetSFXVolume(a.cfg.Audio.SFXVolume)
	if p := a.cfg.Audio.ChimePath; p != "" {
		data, err := os.ReadFile(p)
		if err == nil {
			err = m.SetChimeWAV(data)
		}
		if err != nil {
			a.log.Warn("chime file ignored", zap.String("path", p), zap.Error(err))
		}
	}
	if err := m.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
		return
	}
	a.audio = m
	a.log.Info("audio ready",
		zap.Bool("initialized", m.IsInitialized()),
		zap.Float64("master", m.GetMasterVolume()),
		zap.Float64("sfx", m.GetSFXVolume()))
}

// Run runs the main loop until the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	fps := 0.0

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Input
		if a.input.Update() {
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		// 2. Update
		o := a.controller.Tick(dt, a.controller.Dragging())
		a.scene.SetOrientation(o.Pitch, o.Yaw)
		a.scene.Update(dt)
		facing, ok := a.controller.FacingFace(o)

		// 3. Render
		a.renderer.Begin(a.scene.Background)
		a.renderer.DrawScene(a.scene, a.camera)
		switch a.overlay.Draw(dt, facing, ok, fps) {
		case ui.ActionAbout:
			a.snapTo(content.KindAbout)
		case ui.ActionContact:
			a.snapTo(content.KindContact)
		}
		if a.wantScreenshot {
			a.wantScreenshot = false
			a.screenshot()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps = float64(frameCount) / elapsed.Seconds()
			a.log.Debug("fps", zap.Float64("fps", fps), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("main loop stopped")
	return nil
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		a.resize()

	case input.EventKeyDown:
		a.handleKey(ev.Key)

	case input.EventPointerDown:
		a.lastX, a.lastY = ev.X, ev.Y
		a.overlay.PointerDown(ev.X, ev.Y)
		if a.overlay.Captures(ev.X, ev.Y) {
			return
		}
		a.pressed = true
		a.controller.PointerDown(ev.X, ev.Y)

	case input.EventPointerMove:
		a.lastX, a.lastY = ev.X, ev.Y
		a.overlay.PointerMove(ev.X, ev.Y)
		if a.pressed {
			a.controller.PointerMove(ev.X, ev.Y)
		}

	case input.EventPointerUp:
		a.lastX, a.lastY = ev.X, ev.Y
		a.overlay.PointerUp()
		if !a.pressed {
			return
		}
		a.pressed = false
		if a.controller.PointerUp() {
			a.click(ev.X, ev.Y)
		}

	case input.EventPointerCancel:
		a.overlay.PointerUp()
		if a.pressed {
			a.pressed = false
			a.controller.PointerCancel()
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		if _, open := a.overlay.PanelOpen(); open {
			a.overlay.ClosePanel()
			return
		}
		a.running = false
	case sdl.SCANCODE_A:
		a.snapTo(content.KindAbout)
	case sdl.SCANCODE_C:
		a.snapTo(content.KindContact)
	case sdl.SCANCODE_F12:
		a.wantScreenshot = true
	}
}

// click opens the panel of the face under the pointer.
func (a *App) click(x, y float32) {
	w, h := a.window.GetSize()
	ray := picking.ScreenToRay(x, y, float32(w), float32(h), a.camera.InverseViewProj())
	face, ok := a.scene.PickFace(ray)
	if !ok {
		return
	}
	a.log.Debug("face clicked", zap.Stringer("face", face))
	if a.overlay.OpenPanel(face) && a.audio != nil {
		a.audio.PlayChime()
	}
}

// snapTo rotates the face holding the given kind of content to the camera.
func (a *App) snapTo(kind content.Kind) {
	face, ok := a.table.FaceByKind(kind)
	if !ok {
		a.log.Warn("no face for section", zap.String("kind", string(kind)))
		return
	}
	if !a.controller.SnapTo(face) {
		a.log.Warn("no snap preset for face",
			zap.String("kind", string(kind)),
			zap.Stringer("face", face))
	}
}

// checkShortcuts warns at startup about navigation shortcuts whose face has
// no snap preset.
func checkShortcuts(log *zap.Logger, table *content.Table, presets map[cube.FaceID]rotation.Orientation) {
	for _, kind := range []content.Kind{content.KindAbout, content.KindContact} {
		face, ok := table.FaceByKind(kind)
		if !ok {
			continue
		}
		if _, ok := presets[face]; !ok {
			log.Warn("shortcut face has no snap preset",
				zap.String("kind", string(kind)),
				zap.Stringer("face", face))
		}
	}
}

func (a *App) resize() {
	w, h := a.window.GetSize()
	pw, ph := a.window.DrawableSize()
	a.camera.Resize(w, h)
	a.renderer.Resize(pw, ph)
	a.overlay.Resize(w, h)
	a.log.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
}

// screenshot saves the frame just drawn, or with the HUD disabled the scene
// rendered again offscreen.
func (a *App) screenshot() {
	var (
		pixels []byte
		w, h   int
		err    error
	)
	if a.cfg.Debug.ScreenshotHUD {
		pixels, w, h = a.renderer.ReadPixels()
	} else if pixels, w, h, err = a.renderer.CaptureScene(a.scene, a.camera); err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases all resources in reverse order of acquisition.
func (a *App) Close() {
	a.log.Info("closing application")

	if a.audio != nil {
		a.audio.Close()
	}
	if a.overlay != nil {
		a.overlay.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
