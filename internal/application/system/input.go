package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

// InputSystem reads keyboard and mouse state from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one frame of player input
type InputState struct {
	Left          bool        // held
	Right         bool        // held
	Interact      bool        // just pressed this frame
	Clicked       bool        // left button just pressed this frame
	Cursor        entity.Vec2 // screen pixels
	ShowColliders bool        // held
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Interact:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Clicked:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Cursor:        entity.Vec2{X: float64(mx), Y: float64(my)},
		ShowColliders: ebiten.IsKeyPressed(ebiten.KeyTab),
	}
}

// MovePlayer applies free-play movement. Left wins when both keys are held.
// The player stays within [0, worldWidth - sprite width].
func MovePlayer(player *entity.Actor, input InputState, cfg config.PlayerConfig, worldWidth, dt float64) {
	dt = entity.ClampDelta(dt)
	player.Moving = false

	maxX := worldWidth - cfg.Width
	switch {
	case input.Left && player.Position.X > 0:
		player.Position.X = entity.Clamp(player.Position.X-cfg.Speed*dt, 0, maxX)
		player.FacingLeft = true
		player.Moving = true
	case input.Right && player.Position.X < maxX:
		player.Position.X = entity.Clamp(player.Position.X+cfg.Speed*dt, 0, maxX)
		player.FacingLeft = false
		player.Moving = true
	}
}
