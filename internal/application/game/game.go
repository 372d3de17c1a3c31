// Package game runs the talk scene inside ebiten's fixed-rate loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/talkscene/internal/application/scene"
)

// DefaultTPS is used when no tick rate is configured
const DefaultTPS = 60

// Game adapts a scene.Scene to ebiten.Game. Every tick hands the scene the
// same delta, 1/TPS seconds, so a run is reproducible from its inputs.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New enters initialScene and returns a loop ticking tps times per second.
// A non-positive tps falls back to DefaultTPS.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update ticks the scene once. Escape ends the run with ebiten.Termination;
// a scene returning a successor is exited and the successor entered.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}

	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
	return nil
}

// Draw hands the screen to the active scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical resolution fixed regardless of window size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT overrides the per-tick delta, for tests and headless runs
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// DT returns the delta handed to the scene each tick
func (g *Game) DT() float64 {
	return g.dt
}

// Close runs the active scene's OnExit once, after ebiten.RunGame returns.
// Later calls do nothing.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
