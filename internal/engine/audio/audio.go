// Package audio plays the UI sound effects.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/venture-cube/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager owns the speaker and a mixer for concurrent effects.
// A Manager that failed to initialize stays silent.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64

	sfxMixer *beep.Mixer
	chime    Chime
	// chimeWAV replaces the synthesized chime when set.
	chimeWAV []byte
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
		chime:        DefaultChime(),
		sampleRate:   DefaultSampleRate,
	}
}

// Init initializes the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)

	m.initialized = true
	logger.Named("audio").Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close shuts down playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
		speaker.Close()
	}
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the effects volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the effects volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// SetChimeWAV makes PlayChime play a WAV clip instead of the synthesized tone.
// The clip is decoded once to validate it.
func (m *Manager) SetChimeWAV(data []byte) error {
	s, _, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}
	s.Close()

	m.mu.Lock()
	m.chimeWAV = data
	m.mu.Unlock()
	return nil
}

// volumeToDb converts a 0-1 volume to decibels (vol=1 -> 0dB, 0.5 -> -6dB).
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// withVolume wraps s in a volume effect for the given linear level.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     10,
		Volume:   volumeToDb(vol) / 20,
		Silent:   vol <= 0,
	}
}

// PlayChime plays the panel-open chime. It is a no-op when audio is down.
func (m *Manager) PlayChime() {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume * m.sfxVolLevel
	chime := m.chime
	data := m.chimeWAV
	sr := m.sampleRate
	m.mu.RUnlock()

	if !initialized {
		return
	}
	if data != nil {
		if err := m.PlaySFX(data); err != nil {
			logger.Named("audio").Warn("chime clip failed", zap.Error(err))
		}
		return
	}

	s, err := chime.Streamer(sr)
	if err != nil {
		logger.Named("audio").Warn("chime synthesis failed", zap.Error(err))
		return
	}
	speaker.Lock()
	m.sfxMixer.Add(withVolume(s, vol))
	speaker.Unlock()
}

// PlaySFX plays a sound effect from WAV data.
func (m *Manager) PlaySFX(data []byte) error {
	m.mu.RLock()
	initialized := m.initialized
	sfxVol := m.masterVolume * m.sfxVolLevel
	m.mu.RUnlock()

	if !initialized {
		return fmt.Errorf("audio not initialized")
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	speaker.Lock()
	m.sfxMixer.Add(withVolume(resampled, sfxVol))
	speaker.Unlock()
	return nil
}
