package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/talkscene/internal/domain/entity"
)

func TestCanStartDialogue(t *testing.T) {
	npc := entity.Rect{X: 600, Y: 30, W: 128, H: 128}
	overlapping := entity.Rect{X: 590, Y: 24, W: 50, H: 130}
	touching := entity.Rect{X: 550, Y: 24, W: 50, H: 130}
	away := entity.Rect{X: 350, Y: 24, W: 50, H: 130}

	tests := []struct {
		name             string
		player           entity.Rect
		dialogueVisible  bool
		cutsceneFinished bool
		expected         bool
	}{
		{"overlap after cutscene", overlapping, false, true, true},
		{"cutscene still running", overlapping, false, false, false},
		{"dialogue already open", overlapping, true, true, false},
		{"edges only touch", touching, false, true, false},
		{"far away", away, false, true, false},
		{"zero-size player", entity.Rect{X: 610, Y: 40}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanStartDialogue(tt.player, npc, tt.dialogueVisible, tt.cutsceneFinished))
		})
	}
}
