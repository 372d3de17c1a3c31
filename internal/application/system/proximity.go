package system

import (
	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

// ProximityEffectController fires a short visual pulse when the actor comes
// near a fixed source and computes an audio level that fades with distance.
// The trigger radius and the falloff band are independent settings.
type ProximityEffectController struct {
	source        entity.Vec2
	triggerRadius float64
	pulseDuration float64
	cooldownTime  float64
	near, far     float64
	maxVolume     float64

	cooldown entity.Countdown
	pulse    entity.Countdown
	visible  bool
	distance float64
}

// NewProximityEffectController validates cfg and creates a controller.
// A falloff band with far <= near is rejected here, never at runtime.
func NewProximityEffectController(cfg config.ProximityConfig) (*ProximityEffectController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ProximityEffectController{
		source:        entity.Vec2{X: cfg.SourceX, Y: cfg.SourceY},
		triggerRadius: cfg.TriggerRadius,
		pulseDuration: cfg.PulseDuration,
		cooldownTime:  cfg.Cooldown,
		near:          cfg.NearDistance,
		far:           cfg.FarDistance,
		maxVolume:     cfg.MaxVolume,
	}, nil
}

// Update advances the pulse and cooldown timers by dt, fires the pulse if the
// actor is inside the trigger radius and the cooldown has run out, and
// returns the audio volume for the actor's distance.
func (c *ProximityEffectController) Update(dt float64, actor entity.Vec2) float64 {
	dt = entity.ClampDelta(dt)
	c.distance = actor.Distance(c.source)

	if c.distance < c.triggerRadius && c.cooldown.Expired() {
		c.visible = true
		c.pulse.Set(c.pulseDuration)
		c.cooldown.Set(c.cooldownTime)
	}

	if c.visible && c.pulse.Tick(dt) {
		c.visible = false
	}
	c.cooldown.Tick(dt)

	return c.Volume(c.distance)
}

// Volume maps a distance to [0, maxVolume]: full inside near, silent beyond
// far, linear in between.
func (c *ProximityEffectController) Volume(distance float64) float64 {
	switch {
	case distance <= c.near:
		return c.maxVolume
	case distance >= c.far:
		return 0
	default:
		return c.maxVolume * (1 - (distance-c.near)/(c.far-c.near))
	}
}

// IsEffectVisible reports whether the pulse is showing
func (c *ProximityEffectController) IsEffectVisible() bool {
	return c.visible
}

// Distance returns the actor distance measured by the last Update
func (c *ProximityEffectController) Distance() float64 {
	return c.distance
}

// Source returns the emitter position
func (c *ProximityEffectController) Source() entity.Vec2 {
	return c.source
}

// CooldownRemaining returns the seconds before the pulse may fire again
func (c *ProximityEffectController) CooldownRemaining() float64 {
	return c.cooldown.Remaining()
}
