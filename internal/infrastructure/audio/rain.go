package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

const (
	rainLength    = 2 * time.Second
	rainSmoothing = 0.08  // low-pass factor for the hiss
	dropChance    = 0.002 // per sample
	dropDecay     = 0.995
)

// RainGenerator streams a pre-rendered loop of rain noise.
// When looping is off the loop plays once and then streams silence, so the
// speaker never drops it.
type RainGenerator struct {
	buf     [][2]float64
	pos     int
	looping bool
}

// NewRainGenerator renders rainLength of rain at sr. The same seed always
// renders the same loop.
func NewRainGenerator(sr beep.SampleRate, seed int64) *RainGenerator {
	rng := rand.New(rand.NewSource(seed))
	n := sr.N(rainLength)
	buf := make([][2]float64, n)

	var hissL, hissR, drop float64
	for i := range buf {
		hissL += rainSmoothing * ((rng.Float64()*2 - 1) - hissL)
		hissR += rainSmoothing * ((rng.Float64()*2 - 1) - hissR)

		if rng.Float64() < dropChance {
			drop = 0.6 * (rng.Float64()*2 - 1)
		}
		drop *= dropDecay

		buf[i][0] = clampSample(0.5*hissL + drop)
		buf[i][1] = clampSample(0.5*hissR + drop)
	}

	return &RainGenerator{buf: buf, looping: true}
}

func (g *RainGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= len(g.buf) {
			if !g.looping {
				samples[i] = [2]float64{}
				continue
			}
			g.pos = 0
		}
		samples[i] = g.buf[g.pos]
		g.pos++
	}
	return len(samples), true
}

func (g *RainGenerator) Err() error { return nil }

// SetLooping sets whether the loop restarts at its end
func (g *RainGenerator) SetLooping(loop bool) {
	g.looping = loop
}

// Rewind moves playback to the start of the loop
func (g *RainGenerator) Rewind() {
	g.pos = 0
}

// Position returns the current sample offset
func (g *RainGenerator) Position() int {
	return g.pos
}

// Len returns the loop length in samples
func (g *RainGenerator) Len() int {
	return len(g.buf)
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
