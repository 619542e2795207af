package config

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/tween"
	"github.com/Faultbox/venture-cube/internal/rotation"
)

// ControllerConfig selects a rotation profile and optionally overrides any of
// its constants. Nil fields keep the profile value.
type ControllerConfig struct {
	Profile         string                  `yaml:"profile"`
	Sensitivity     *float32                `yaml:"sensitivity,omitempty"`
	AutoRotate      *float32                `yaml:"auto_rotate,omitempty"`
	Damping         *float32                `yaml:"damping,omitempty"`
	Smoothing       *float32                `yaml:"smoothing,omitempty"`
	FacingThreshold *float32                `yaml:"facing_threshold,omitempty"`
	SnapDuration    *time.Duration          `yaml:"snap_duration,omitempty"`
	SnapEase        string                  `yaml:"snap_ease,omitempty"`
	ClickSlop       *float32                `yaml:"click_slop,omitempty"`
	TimeScaled      *bool                   `yaml:"time_scaled,omitempty"`
	ReferenceFPS    *float32                `yaml:"reference_fps,omitempty"`
	Presets         map[string]PresetConfig `yaml:"presets,omitempty"`
}

// PresetConfig is a snap orientation in degrees.
type PresetConfig struct {
	PitchDeg float32 `yaml:"pitch_deg"`
	YawDeg   float32 `yaml:"yaw_deg"`
}

func radians(deg float32) float32 {
	return float32(float64(deg) * gomath.Pi / 180)
}

// Rotation builds the controller tuning: the profile, then overrides.
func (c ControllerConfig) Rotation() (rotation.Config, error) {
	rc, err := rotation.ProfileConfig(c.Profile)
	if err != nil {
		return rotation.Config{}, err
	}

	set := func(dst *float32, v *float32) {
		if v != nil {
			*dst = *v
		}
	}
	set(&rc.Sensitivity, c.Sensitivity)
	set(&rc.AutoRotate, c.AutoRotate)
	set(&rc.Damping, c.Damping)
	set(&rc.Smoothing, c.Smoothing)
	set(&rc.FacingThreshold, c.FacingThreshold)
	set(&rc.ClickSlop, c.ClickSlop)
	set(&rc.ReferenceFPS, c.ReferenceFPS)
	if c.SnapDuration != nil {
		rc.SnapDuration = *c.SnapDuration
	}
	if c.TimeScaled != nil {
		rc.TimeScaled = *c.TimeScaled
	}
	if c.SnapEase != "" {
		ease, err := tween.ParseEase(c.SnapEase)
		if err != nil {
			return rotation.Config{}, err
		}
		rc.SnapEase = ease
	}
	for name, p := range c.Presets {
		face, err := cube.ParseFace(name)
		if err != nil {
			return rotation.Config{}, fmt.Errorf("preset: %w", err)
		}
		rc.Presets[face] = rotation.Orientation{Pitch: radians(p.PitchDeg), Yaw: radians(p.YawDeg)}
	}

	if err := rc.Validate(); err != nil {
		return rotation.Config{}, err
	}
	return rc, nil
}
