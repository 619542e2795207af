package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// Chime is a short bell: summed sine partials under an attack/decay envelope.
type Chime struct {
	Frequencies []float64
	Duration    time.Duration
	Attack      time.Duration
	// Decay is the time constant of the exponential tail.
	Decay time.Duration
	Gain  float64
}

// DefaultChime is a soft two-partial A5/E6 ping.
func DefaultChime() Chime {
	return Chime{
		Frequencies: []float64{880, 1318.5},
		Duration:    400 * time.Millisecond,
		Attack:      5 * time.Millisecond,
		Decay:       90 * time.Millisecond,
		Gain:        0.25,
	}
}

// Streamer builds a finite streamer for the chime at sample rate sr.
func (c Chime) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	if len(c.Frequencies) == 0 {
		return nil, fmt.Errorf("chime has no partials")
	}
	partials := make([]beep.Streamer, 0, len(c.Frequencies))
	for _, f := range c.Frequencies {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("sine %.1fHz: %w", f, err)
		}
		partials = append(partials, tone)
	}
	total := sr.N(c.Duration)
	env := &envelope{
		Streamer: beep.Mix(partials...),
		gain:     c.Gain / float64(len(partials)),
		attack:   sr.N(c.Attack),
		decay:    float64(sr.N(c.Decay)),
		total:    total,
	}
	return beep.Take(total, env), nil
}

// envelope shapes a streamer with a linear attack and exponential decay.
type envelope struct {
	beep.Streamer
	gain   float64
	attack int
	decay  float64
	total  int
	pos    int
}

// level returns the envelope gain at sample i.
func (e *envelope) level(i int) float64 {
	if i < 0 || i >= e.total {
		return 0
	}
	if i < e.attack {
		return e.gain * float64(i) / float64(e.attack)
	}
	if e.decay <= 0 {
		return e.gain
	}
	return e.gain * math.Exp(-float64(i-e.attack)/e.decay)
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.level(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}
