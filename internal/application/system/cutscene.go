package system

import (
	"log"
	"math"

	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

// CutsceneDirector drives the intro sequence: zoom in on the player, walk
// them up to the NPC, then return the camera to where it started.
//
// The director writes to the camera and to the player position it was
// given; nothing else writes to them while the cutscene runs.
type CutsceneDirector struct {
	cfg    config.CutsceneConfig
	player *entity.Vec2
	npc    entity.Rect
	camera *entity.Camera
	world  entity.Size

	originalPosition entity.Vec2
	originalZoom     float64
	targetZoom       float64

	phase      Phase
	moving     bool
	facingLeft bool
}

// NewCutsceneDirector creates a director and captures the camera's current
// position and zoom as the values to restore at the end. The camera is
// clamped into the world first so the restore target is reachable.
func NewCutsceneDirector(player *entity.Vec2, npc entity.Rect, camera *entity.Camera, world entity.Size, cfg config.CutsceneConfig) *CutsceneDirector {
	camera.ClampTo(world)
	return &CutsceneDirector{
		cfg:              cfg,
		player:           player,
		npc:              npc,
		camera:           camera,
		world:            world,
		originalPosition: camera.Position,
		originalZoom:     camera.Zoom,
		targetZoom:       camera.Zoom * cfg.TargetZoomFactor,
		phase:            ZoomingIn{},
	}
}

// Update advances the sequence by dt seconds. Time left over when a phase
// ends is spent in the next one. The camera is kept inside the world after
// every step.
func (d *CutsceneDirector) Update(dt float64) {
	dt = entity.ClampDelta(dt)

	for {
		prev := d.phase
		var rest float64
		d.phase, rest = d.step(d.phase, dt)
		d.camera.ClampTo(d.world)

		if prev.String() == d.phase.String() {
			return
		}
		log.Printf("[Cutscene] %s -> %s", prev, d.phase)
		if rest <= 0 {
			return
		}
		dt = rest
	}
}

// step runs phase for up to dt seconds and returns the next phase and the
// unused part of dt.
func (d *CutsceneDirector) step(phase Phase, dt float64) (Phase, float64) {
	switch p := phase.(type) {
	case ZoomingIn:
		need := math.Max(d.camera.Zoom-d.targetZoom, 0) / d.cfg.ZoomSpeed
		if dt >= need {
			d.camera.Zoom = d.targetZoom
			d.follow(need)
			return WaitBeforeMove{Remaining: d.cfg.WaitBeforeMove}, dt - need
		}
		d.camera.Zoom = entity.Clamp(d.camera.Zoom-d.cfg.ZoomSpeed*dt, d.targetZoom, d.originalZoom)
		d.follow(dt)
		return p, 0

	case WaitBeforeMove:
		if dt >= p.Remaining {
			return MovingToTarget{}, dt - p.Remaining
		}
		p.Remaining -= dt
		return p, 0

	case MovingToTarget:
		stopX := d.npc.X - d.cfg.StopOffset
		if d.player.X >= stopX {
			d.moving = false
			return WaitAfterMove{Remaining: d.cfg.WaitAfterMove}, dt
		}

		d.facingLeft = false
		need := (stopX - d.player.X) / d.cfg.MoveSpeed
		if dt >= need {
			d.player.X = stopX
			d.follow(need)
			d.moving = false
			return WaitAfterMove{Remaining: d.cfg.WaitAfterMove}, dt - need
		}
		d.player.X += d.cfg.MoveSpeed * dt
		d.moving = true
		d.follow(dt)
		return p, 0

	case WaitAfterMove:
		if dt >= p.Remaining {
			return ZoomingOut{}, dt - p.Remaining
		}
		p.Remaining -= dt
		return p, 0

	case ZoomingOut:
		d.camera.Position.X = entity.Approach(d.camera.Position.X, d.originalPosition.X, d.cfg.ReturnRate, dt)
		d.camera.Position.Y = entity.Approach(d.camera.Position.Y, d.originalPosition.Y, d.cfg.ReturnRate, dt)
		d.camera.Zoom = entity.Approach(d.camera.Zoom, d.originalZoom, d.cfg.ReturnRate, dt)

		if math.Abs(d.camera.Position.X-d.originalPosition.X) < d.cfg.PositionEpsilon &&
			math.Abs(d.camera.Position.Y-d.originalPosition.Y) < d.cfg.PositionEpsilon &&
			math.Abs(d.camera.Zoom-d.originalZoom) < d.cfg.ZoomEpsilon {
			d.camera.Position = d.originalPosition
			d.camera.Zoom = d.originalZoom
			return Finished{}, 0
		}
		return p, 0

	case Finished:
		return p, 0
	}

	return phase, 0
}

// follow eases the camera toward the player plus the follow offset
func (d *CutsceneDirector) follow(dt float64) {
	targetX := d.player.X + d.cfg.FollowOffsetX
	targetY := d.player.Y + d.cfg.FollowOffsetY
	d.camera.Position.X = entity.Approach(d.camera.Position.X, targetX, d.cfg.FollowRate, dt)
	d.camera.Position.Y = entity.Approach(d.camera.Position.Y, targetY, d.cfg.FollowRate, dt)
}

// Phase returns the current phase
func (d *CutsceneDirector) Phase() Phase {
	return d.phase
}

// IsFinished reports whether the sequence has completed
func (d *CutsceneDirector) IsFinished() bool {
	_, done := d.phase.(Finished)
	return done
}

// IsMoving reports whether the player is being walked this frame
func (d *CutsceneDirector) IsMoving() bool {
	return d.moving
}

// IsFacingLeft reports the facing the cutscene wants for the player sprite
func (d *CutsceneDirector) IsFacingLeft() bool {
	return d.facingLeft
}

// OriginalCamera returns the captured camera position and zoom
func (d *CutsceneDirector) OriginalCamera() (entity.Vec2, float64) {
	return d.originalPosition, d.originalZoom
}
