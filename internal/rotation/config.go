package rotation

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/tween"
)

// Profile names accepted by ProfileConfig.
const (
	ProfileShowcase = "showcase"
	ProfileCompact  = "compact"
)

// Config holds the controller tuning. All per-tick constants are applied once
// per Tick call unless TimeScaled is set.
type Config struct {
	// Sensitivity converts pointer pixels to radians (mouse and touch alike).
	Sensitivity float32
	// AutoRotate is the idle yaw increment per tick.
	AutoRotate float32
	// Damping multiplies the angular velocity each idle tick.
	Damping float32
	// Smoothing is the fraction of the remaining gap closed each tick.
	Smoothing float32
	// FacingThreshold is the minimum dot product for a face to count as facing.
	FacingThreshold float32

	SnapDuration time.Duration
	SnapEase     tween.Ease
	// Presets maps snap targets to orientations. Yaw is taken modulo a full turn.
	Presets map[cube.FaceID]Orientation

	// ClickSlop is the pointer travel in pixels still treated as a click.
	ClickSlop float32

	// TimeScaled rescales the per-tick constants by dt*ReferenceFPS.
	TimeScaled   bool
	ReferenceFPS float32
}

// DefaultPresets returns the snap orientations for every face: the named face
// ends up facing the viewer.
func DefaultPresets() map[cube.FaceID]Orientation {
	return map[cube.FaceID]Orientation{
		cube.Front:  {Pitch: 0, Yaw: 0},
		cube.Back:   {Pitch: 0, Yaw: gomath.Pi},
		cube.Right:  {Pitch: 0, Yaw: -gomath.Pi / 2},
		cube.Left:   {Pitch: 0, Yaw: gomath.Pi / 2},
		cube.Top:    {Pitch: MaxPitch, Yaw: 0},
		cube.Bottom: {Pitch: -MaxPitch, Yaw: 0},
	}
}

// DefaultConfig returns the canonical "showcase" tuning.
func DefaultConfig() Config {
	return Config{
		Sensitivity:     0.005,
		AutoRotate:      0.001,
		Damping:         0.95,
		Smoothing:       0.08,
		FacingThreshold: 0.5,
		SnapDuration:    time.Second,
		SnapEase:        tween.Power2InOut,
		Presets:         DefaultPresets(),
		ClickSlop:       0,
		TimeScaled:      false,
		ReferenceFPS:    60,
	}
}

// CompactConfig returns the stricter "compact" tuning: a higher facing
// threshold, softer follow and frame-rate independent damping.
func CompactConfig() Config {
	cfg := DefaultConfig()
	cfg.Damping = 0.92
	cfg.Smoothing = 0.06
	cfg.FacingThreshold = 0.6
	cfg.ClickSlop = 4
	cfg.TimeScaled = true
	return cfg
}

// ProfileConfig returns the tuning for a named profile. An empty name is the
// showcase profile.
func ProfileConfig(name string) (Config, error) {
	switch name {
	case "", ProfileShowcase:
		return DefaultConfig(), nil
	case ProfileCompact:
		return CompactConfig(), nil
	default:
		return Config{}, fmt.Errorf("unknown controller profile %q", name)
	}
}

// Validate checks that the constants keep the controller stable.
func (c Config) Validate() error {
	if c.Sensitivity <= 0 {
		return fmt.Errorf("sensitivity must be positive, got %g", c.Sensitivity)
	}
	if c.Damping < 0 || c.Damping >= 1 {
		return fmt.Errorf("damping must be in [0, 1), got %g", c.Damping)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("smoothing must be in (0, 1], got %g", c.Smoothing)
	}
	if c.FacingThreshold < -1 || c.FacingThreshold >= 1 {
		return fmt.Errorf("facing threshold must be in [-1, 1), got %g", c.FacingThreshold)
	}
	if c.ClickSlop < 0 {
		return fmt.Errorf("click slop must not be negative, got %g", c.ClickSlop)
	}
	if c.TimeScaled && c.ReferenceFPS <= 0 {
		return fmt.Errorf("reference fps must be positive when time scaled, got %g", c.ReferenceFPS)
	}
	for face, p := range c.Presets {
		if !face.Valid() {
			return fmt.Errorf("preset for invalid face %d", int(face))
		}
		if gomath.Abs(float64(p.Pitch)) > float64(MaxPitch)+1e-6 {
			return fmt.Errorf("preset %v pitch %g outside [-pi/2, pi/2]", face, p.Pitch)
		}
	}
	return nil
}
