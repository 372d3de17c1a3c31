package entity

// Actor is a static or player-driven body in the scene.
// Position is the sprite anchor; the collider is derived from it every
// frame and never stored.
type Actor struct {
	Position Vec2

	// Collider placement relative to Position
	ColliderOffset Vec2
	ColliderSize   Size

	// Animation selectors
	Moving     bool
	FacingLeft bool
}

// NewActor creates an actor at pos with the given collider layout
func NewActor(pos, colliderOffset Vec2, colliderSize Size) *Actor {
	return &Actor{
		Position:       pos,
		ColliderOffset: colliderOffset,
		ColliderSize:   colliderSize,
	}
}

// Collider returns the actor's collision rectangle in world coordinates
func (a *Actor) Collider() Rect {
	origin := a.Position.Add(a.ColliderOffset)
	return Rect{X: origin.X, Y: origin.Y, W: a.ColliderSize.W, H: a.ColliderSize.H}
}

// Camera is the scene viewpoint. Position is the centre of the view.
// Zoom scales the viewport: 0.5 shows half the width and height.
type Camera struct {
	Position  Vec2
	Zoom      float64
	ViewportW float64
	ViewportH float64
}

// NewCamera creates a camera centred on pos
func NewCamera(pos Vec2, zoom, viewportW, viewportH float64) *Camera {
	return &Camera{Position: pos, Zoom: zoom, ViewportW: viewportW, ViewportH: viewportH}
}

// HalfExtent returns half of the visible world width and height
func (c *Camera) HalfExtent() (float64, float64) {
	return c.ViewportW * c.Zoom / 2, c.ViewportH * c.Zoom / 2
}

// ClampTo keeps the visible area inside [0, world.W] x [0, world.H]
func (c *Camera) ClampTo(world Size) {
	hw, hh := c.HalfExtent()
	c.Position.X = Clamp(c.Position.X, hw, world.W-hw)
	c.Position.Y = Clamp(c.Position.Y, hh, world.H-hh)
}

// WorldToScreen converts a world point to screen pixels (y-down)
func (c *Camera) WorldToScreen(p Vec2) (float64, float64) {
	sx := (p.X-c.Position.X)/c.Zoom + c.ViewportW/2
	sy := c.ViewportH/2 - (p.Y-c.Position.Y)/c.Zoom
	return sx, sy
}

// DialogueLine is one scripted line: who speaks and what they say
type DialogueLine struct {
	Speaker string
	Text    string
}
