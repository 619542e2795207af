// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/venture-cube/internal/engine/debug"
	"github.com/Faultbox/venture-cube/internal/scene"
)

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Controller ControllerConfig `yaml:"controller"`
	Scene      SceneConfig      `yaml:"scene"`
	UI         UIConfig         `yaml:"ui"`
	Audio      AudioConfig      `yaml:"audio"`
	Content    ContentConfig    `yaml:"content"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"`
}

// SceneConfig tunes cube construction.
type SceneConfig struct {
	Seed          uint64  `yaml:"seed"`
	Particles     int     `yaml:"particles"`
	DioramaScale  float32 `yaml:"diorama_scale"`
	DioramaOffset float32 `yaml:"diorama_offset"`
}

// Options converts the section to scene build options.
func (s SceneConfig) Options() scene.Options {
	return scene.Options{
		Seed:          s.Seed,
		ParticleCount: s.Particles,
		DioramaScale:  s.DioramaScale,
		DioramaOffset: s.DioramaOffset,
	}
}

// UIConfig holds overlay settings.
type UIConfig struct {
	LoaderDuration time.Duration `yaml:"loader_duration"`
	ShowFPS        bool          `yaml:"show_fps"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	// ChimePath optionally replaces the synthesized chime with a WAV file.
	ChimePath string `yaml:"chime_path"`
}

// ContentConfig points at an optional YAML content file.
type ContentConfig struct {
	Path string `yaml:"path"` // empty uses the built-in table
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"`
	ShowPickBounds   bool   `yaml:"show_pick_bounds"`
	// ScreenshotHUD includes the overlay; otherwise the scene is rendered
	// offscreen on its own.
	ScreenshotHUD bool `yaml:"screenshot_hud"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := scene.DefaultOptions()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
		},
		Controller: ControllerConfig{
			Profile: "showcase",
		},
		Scene: SceneConfig{
			Seed:          opts.Seed,
			Particles:     opts.ParticleCount,
			DioramaScale:  opts.DioramaScale,
			DioramaOffset: opts.DioramaOffset,
		},
		UI: UIConfig{
			LoaderDuration: 1500 * time.Millisecond,
			ShowFPS:        false,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SFXVolume:    0.6,
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
			ScreenshotHUD:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values the application cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: window size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.MSAA < 0 {
		return fmt.Errorf("graphics: msaa must not be negative, got %d", c.Graphics.MSAA)
	}
	if c.Scene.Particles < 0 {
		return fmt.Errorf("scene: particles must not be negative, got %d", c.Scene.Particles)
	}
	if c.Scene.DioramaScale <= 0 {
		return fmt.Errorf("scene: diorama_scale must be positive, got %g", c.Scene.DioramaScale)
	}
	if c.UI.LoaderDuration < 0 {
		return fmt.Errorf("ui: loader_duration must not be negative, got %v", c.UI.LoaderDuration)
	}
	for name, v := range map[string]float64{"master_volume": c.Audio.MasterVolume, "sfx_volume": c.Audio.SFXVolume} {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio: %s must be in [0, 1], got %g", name, v)
		}
	}
	if _, err := debug.ParseFormat(c.Debug.ScreenshotFormat); err != nil {
		return fmt.Errorf("debug: %w", err)
	}
	if _, err := c.Controller.Rotation(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}
