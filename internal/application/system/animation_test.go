package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

func TestAnimator(t *testing.T) {
	t.Run("idle uses first column", func(t *testing.T) {
		a := NewAnimator(config.AnimationConfig{FrameDuration: 0.1, Frames: 4})

		assert.Equal(t, AnimationFrame{Row: 1, Column: 0}, a.Update(0.35, false, false))
		assert.Equal(t, AnimationFrame{Row: 0, Column: 0}, a.Update(0.35, false, true))
	})

	t.Run("walk cycle wraps", func(t *testing.T) {
		a := NewAnimator(config.AnimationConfig{FrameDuration: 0.125, Frames: 4})

		columns := []int{}
		for i := 0; i < 6; i++ {
			columns = append(columns, a.Update(0.125, true, false).Column)
		}

		assert.Equal(t, []int{1, 2, 3, 0, 1, 2}, columns)
	})

	t.Run("row follows facing", func(t *testing.T) {
		a := NewAnimator(config.AnimationConfig{FrameDuration: 0.125, Frames: 4})

		assert.Equal(t, 0, a.Update(0.125, true, true).Row)
		assert.Equal(t, 1, a.Update(0.125, true, false).Row)
	})

	t.Run("degenerate config stays idle", func(t *testing.T) {
		a := NewAnimator(config.AnimationConfig{})

		assert.Equal(t, AnimationFrame{Row: 1}, a.Update(1, true, false))
	})
}
