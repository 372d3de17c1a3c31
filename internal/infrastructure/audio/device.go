// Package audio plays the ambient rain through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	rainSeed   = 7
)

// RainLoop is an ambient rain device: a pausable, volume-controlled noise
// loop mixed into the speaker.
type RainLoop struct {
	mu          sync.Mutex
	gen         *RainGenerator
	volume      *effects.Volume
	ctrl        *beep.Ctrl
	level       float64
	initialized bool
}

// NewRainLoop creates a paused rain loop at full volume
func NewRainLoop() *RainLoop {
	gen := NewRainGenerator(sampleRate, rainSeed)
	vol := &effects.Volume{Streamer: gen, Base: 2}
	return &RainLoop{
		gen:    gen,
		volume: vol,
		ctrl:   &beep.Ctrl{Streamer: vol, Paused: true},
		level:  1,
	}
}

// Initialize opens the speaker and starts mixing the (paused) loop
func (r *RainLoop) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(r.ctrl)
	r.initialized = true
	return nil
}

// Play resumes the loop
func (r *RainLoop) Play() {
	r.locked(func() { r.ctrl.Paused = false })
}

// Pause holds the loop at its current position
func (r *RainLoop) Pause() {
	r.locked(func() { r.ctrl.Paused = true })
}

// Stop pauses the loop and rewinds it
func (r *RainLoop) Stop() {
	r.locked(func() {
		r.ctrl.Paused = true
		r.gen.Rewind()
	})
}

// SetVolume sets a linear volume in [0, 1]
func (r *RainLoop) SetVolume(v float64) {
	r.locked(func() {
		r.level = v
		r.volume.Volume, r.volume.Silent = gain(v)
	})
}

// SetLooping sets whether the loop restarts at its end
func (r *RainLoop) SetLooping(loop bool) {
	r.locked(func() { r.gen.SetLooping(loop) })
}

// IsPaused reports whether the loop is paused
func (r *RainLoop) IsPaused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ctrl.Paused
}

// Level returns the last linear volume set
func (r *RainLoop) Level() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.level
}

// Cleanup stops the loop and clears the speaker
func (r *RainLoop) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return
	}
	speaker.Lock()
	r.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	r.initialized = false
}

// locked runs fn under the device mutex, and under the speaker lock once the
// speaker is streaming.
func (r *RainLoop) locked(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// gain maps a linear volume to the base-2 exponent effects.Volume expects
func gain(v float64) (exp float64, silent bool) {
	if v <= 0 || math.IsNaN(v) {
		return 0, true
	}
	if v > 1 {
		v = 1
	}
	return math.Log2(v), false
}
