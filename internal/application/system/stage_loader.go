package system

import (
	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

// Stage holds the bodies and camera built from a SceneConfig
type Stage struct {
	Player *entity.Actor
	NPC    *entity.Actor
	Ground entity.Rect
	Camera *entity.Camera
	World  entity.Size
}

// LoadStage converts a SceneConfig into the scene's actors and camera
func LoadStage(cfg *config.SceneConfig) *Stage {
	player := entity.NewActor(
		entity.Vec2{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		entity.Vec2{X: cfg.Player.Collider.X, Y: cfg.Player.Collider.Y},
		entity.Size{W: cfg.Player.Collider.W, H: cfg.Player.Collider.H},
	)
	npc := entity.NewActor(
		entity.Vec2{X: cfg.NPC.X, Y: cfg.NPC.Y},
		entity.Vec2{X: cfg.NPC.Collider.X, Y: cfg.NPC.Collider.Y},
		entity.Size{W: cfg.NPC.Collider.W, H: cfg.NPC.Collider.H},
	)

	return &Stage{
		Player: player,
		NPC:    npc,
		Ground: rectFromConfig(cfg.Ground),
		Camera: entity.NewCamera(
			entity.Vec2{X: cfg.Camera.X, Y: cfg.Camera.Y},
			cfg.Camera.Zoom,
			float64(cfg.Display.ScreenWidth),
			float64(cfg.Display.ScreenHeight),
		),
		World: entity.Size{W: cfg.World.Width, H: cfg.World.Height},
	}
}

// LoadScript converts a ScriptConfig into dialogue lines.
// A nil config yields an empty script.
func LoadScript(cfg *config.ScriptConfig) []entity.DialogueLine {
	if cfg == nil {
		return nil
	}
	lines := make([]entity.DialogueLine, 0, len(cfg.Lines))
	for _, l := range cfg.Lines {
		lines = append(lines, entity.DialogueLine{Speaker: l.Speaker, Text: l.Text})
	}
	return lines
}

func rectFromConfig(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
