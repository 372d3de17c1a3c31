// Package scene defines the Scene interface the game loop drives.
//
// The talk scene runs as a single Scene; its menu and playing modes are
// handled inside it rather than as separate scenes.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a screen driven by the game loop.
// Returning a non-nil Scene from Update switches to it.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is left or the game shuts down.
	OnExit()
}
