package entity

import "math"

// Vec2 is a point or offset in world units.
// World space is y-up: the ground sits at y=0.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Distance returns the Euclidean distance between v and o
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Size is a width/height pair in world units
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Area returns the rectangle area, 0 for degenerate rectangles
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Overlaps reports whether r and o share a region of positive area.
// Edges are half-open, so rectangles that only touch do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Area() == 0 || o.Area() == 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether p lies inside r using [X, X+W) x [Y, Y+H).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Clamp limits v to [lo, hi]. When the range is inverted (a view wider
// than the world) the midpoint is returned.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach eases value toward target: value += (target-value)*rate*dt.
// The step factor is capped at 1 so a long frame lands on the target
// instead of overshooting it.
func Approach(value, target, rate, dt float64) float64 {
	k := rate * ClampDelta(dt)
	if k > 1 {
		k = 1
	}
	return value + (target-value)*k
}
