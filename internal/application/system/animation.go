package system

import "github.com/younwookim/talkscene/internal/infrastructure/config"

// AnimationFrame selects a sprite cell: Row 0 faces left, row 1 faces right.
// Column 0 is the idle pose.
type AnimationFrame struct {
	Row    int
	Column int
}

// Animator picks the walk-cycle frame for the player
type Animator struct {
	frameDuration float64
	frames        int
	stateTime     float64
}

// NewAnimator creates an animator from the player animation config
func NewAnimator(cfg config.AnimationConfig) *Animator {
	return &Animator{
		frameDuration: cfg.FrameDuration,
		frames:        cfg.Frames,
	}
}

// Update advances the animation clock and returns the frame to draw
func (a *Animator) Update(dt float64, moving, facingLeft bool) AnimationFrame {
	if dt > 0 {
		a.stateTime += dt
	}

	row := 1
	if facingLeft {
		row = 0
	}
	if !moving || a.frames <= 0 || a.frameDuration <= 0 {
		return AnimationFrame{Row: row}
	}

	column := int(a.stateTime/a.frameDuration) % a.frames
	return AnimationFrame{Row: row, Column: column}
}
