package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// ErrInvalidFalloff is returned when the audio falloff band is empty
var ErrInvalidFalloff = errors.New("far distance must be greater than near distance")

// SceneConfig is the root config for scene.json
type SceneConfig struct {
	Display   DisplayConfig   `json:"display"`
	World     WorldConfig     `json:"world"`
	Camera    CameraConfig    `json:"camera"`
	Player    PlayerConfig    `json:"player"`
	NPC       NPCConfig       `json:"npc"`
	Ground    RectConfig      `json:"ground"`
	Cutscene  CutsceneConfig  `json:"cutscene"`
	Dialogue  DialogueConfig  `json:"dialogue"`
	Proximity ProximityConfig `json:"proximity"`
	Menu      MenuConfig      `json:"menu"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        float64 `json:"scale"`
	Framerate    int     `json:"framerate"`
	Title        string  `json:"title"`
}

type WorldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CameraConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

type PlayerConfig struct {
	SpawnX    float64         `json:"spawnX"`
	SpawnY    float64         `json:"spawnY"`
	Speed     float64         `json:"speed"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	Collider  RectConfig      `json:"collider"`
	Animation AnimationConfig `json:"animation"`
}

type AnimationConfig struct {
	FrameDuration float64 `json:"frameDuration"`
	Frames        int     `json:"frames"`
}

type NPCConfig struct {
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Collider RectConfig `json:"collider"`
}

// RectConfig is a rectangle; for actor colliders X/Y are offsets from the
// actor position.
type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// CutsceneConfig tunes the intro camera sequence
type CutsceneConfig struct {
	ZoomSpeed        float64 `json:"zoomSpeed"`        // zoom units per second
	TargetZoomFactor float64 `json:"targetZoomFactor"` // fraction of the original zoom
	MoveSpeed        float64 `json:"moveSpeed"`        // world units per second
	StopOffset       float64 `json:"stopOffset"`       // distance left of the NPC collider
	WaitBeforeMove   float64 `json:"waitBeforeMove"`   // seconds
	WaitAfterMove    float64 `json:"waitAfterMove"`    // seconds
	FollowOffsetX    float64 `json:"followOffsetX"`
	FollowOffsetY    float64 `json:"followOffsetY"`
	FollowRate       float64 `json:"followRate"` // ease rate while following the player
	ReturnRate       float64 `json:"returnRate"` // ease rate while zooming out
	PositionEpsilon  float64 `json:"positionEpsilon"`
	ZoomEpsilon      float64 `json:"zoomEpsilon"`
}

type DialogueConfig struct {
	CharInterval float64 `json:"charInterval"` // seconds per revealed character
	Prompt       string  `json:"prompt"`
	Script       string  `json:"script"` // YAML file holding the lines
}

// ProximityConfig configures the lightning pulse and the rain falloff
type ProximityConfig struct {
	SourceX       float64 `json:"sourceX"`
	SourceY       float64 `json:"sourceY"`
	TriggerRadius float64 `json:"triggerRadius"`
	PulseDuration float64 `json:"pulseDuration"`
	Cooldown      float64 `json:"cooldown"`
	NearDistance  float64 `json:"nearDistance"`
	FarDistance   float64 `json:"farDistance"`
	MaxVolume     float64 `json:"maxVolume"`
}

type MenuConfig struct {
	Title        string  `json:"title"`
	ButtonLabel  string  `json:"buttonLabel"`
	ButtonWidth  float64 `json:"buttonWidth"`
	ButtonHeight float64 `json:"buttonHeight"`
}

// DefaultSceneConfig returns the stock scene: a 1280x720 world with the NPC
// at x=600 and the lightning source to the right of it.
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Display: DisplayConfig{ScreenWidth: 1280, ScreenHeight: 720, Scale: 1, Framerate: 60, Title: "Talk Scene"},
		World:   WorldConfig{Width: 1280, Height: 720},
		Camera:  CameraConfig{X: 640, Y: 360, Zoom: 1},
		Player: PlayerConfig{
			SpawnX: 300, SpawnY: 64, Speed: 150, Width: 150, Height: 150,
			Collider:  RectConfig{X: 50, Y: -40, W: 50, H: 130},
			Animation: AnimationConfig{FrameDuration: 0.1, Frames: 4},
		},
		NPC: NPCConfig{
			X: 600, Y: 30, Width: 150, Height: 150,
			Collider: RectConfig{W: 128, H: 128},
		},
		Ground: RectConfig{W: 1280, H: 25},
		Cutscene: CutsceneConfig{
			ZoomSpeed: 0.5, TargetZoomFactor: 0.5, MoveSpeed: 100, StopOffset: 60,
			WaitBeforeMove: 1, WaitAfterMove: 1,
			FollowOffsetX: 32, FollowOffsetY: 64,
			FollowRate: 2, ReturnRate: 2,
			PositionEpsilon: 0.5, ZoomEpsilon: 0.01,
		},
		Dialogue: DialogueConfig{CharInterval: 0.03, Prompt: "Press SPACE to talk", Script: "dialogue.yaml"},
		Proximity: ProximityConfig{
			SourceX: 1000, SourceY: 64, TriggerRadius: 120,
			PulseDuration: 0.2, Cooldown: 0.5,
			NearDistance: 50, FarDistance: 300, MaxVolume: 0.7,
		},
		Menu: MenuConfig{Title: "My Simple Game", ButtonLabel: "[ PLAY ]", ButtonWidth: 200, ButtonHeight: 50},
	}
}

// Validate checks the ranges the simulation relies on
func (c *SceneConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 || c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display size and framerate must be positive", ErrInvalidConfig)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	}
	if c.Camera.Zoom <= 0 {
		return fmt.Errorf("%w: camera zoom must be positive", ErrInvalidConfig)
	}
	if c.Player.Speed < 0 || c.Player.Animation.FrameDuration <= 0 || c.Player.Animation.Frames <= 0 {
		return fmt.Errorf("%w: player speed and animation timing", ErrInvalidConfig)
	}
	if err := c.Cutscene.Validate(); err != nil {
		return err
	}
	if c.Dialogue.CharInterval <= 0 {
		return fmt.Errorf("%w: dialogue charInterval must be positive", ErrInvalidConfig)
	}
	return c.Proximity.Validate()
}

// Validate checks that every phase of the cutscene can make progress
func (c CutsceneConfig) Validate() error {
	if c.ZoomSpeed <= 0 || c.MoveSpeed <= 0 {
		return fmt.Errorf("%w: cutscene speeds must be positive", ErrInvalidConfig)
	}
	if c.TargetZoomFactor <= 0 || c.TargetZoomFactor > 1 {
		return fmt.Errorf("%w: cutscene targetZoomFactor must be in (0, 1]", ErrInvalidConfig)
	}
	if c.FollowRate <= 0 || c.ReturnRate <= 0 {
		return fmt.Errorf("%w: cutscene ease rates must be positive", ErrInvalidConfig)
	}
	if c.PositionEpsilon <= 0 || c.ZoomEpsilon <= 0 {
		return fmt.Errorf("%w: cutscene snap thresholds must be positive", ErrInvalidConfig)
	}
	if c.WaitBeforeMove < 0 || c.WaitAfterMove < 0 {
		return fmt.Errorf("%w: cutscene waits must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Validate rejects falloff and timing settings the controller cannot use
func (c ProximityConfig) Validate() error {
	if c.NearDistance < 0 {
		return fmt.Errorf("%w: proximity nearDistance must not be negative", ErrInvalidConfig)
	}
	if c.FarDistance <= c.NearDistance {
		return fmt.Errorf("near=%v far=%v: %w", c.NearDistance, c.FarDistance, ErrInvalidFalloff)
	}
	if c.PulseDuration <= 0 || c.Cooldown < 0 || c.TriggerRadius < 0 {
		return fmt.Errorf("%w: proximity pulse, cooldown and radius", ErrInvalidConfig)
	}
	if c.MaxVolume < 0 || c.MaxVolume > 1 {
		return fmt.Errorf("%w: proximity maxVolume must be in [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// ScriptConfig is the root of the dialogue YAML file
type ScriptConfig struct {
	Lines []LineConfig `yaml:"lines"`
}

type LineConfig struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Scene  *SceneConfig
	Script *ScriptConfig
}
