package system

import (
	"log"

	"github.com/younwookim/talkscene/internal/application/state"
	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

// Frame is everything the renderer needs for one tick
type Frame struct {
	Mode   state.SceneMode
	Camera entity.Camera

	// Menu
	MenuTitle   string
	ButtonLabel string
	PlayButton  entity.Rect // screen pixels, y-down

	// Actors
	PlayerPosition entity.Vec2
	PlayerMoving   bool
	FacingLeft     bool
	Animation      AnimationFrame
	NPCPosition    entity.Vec2

	PlayerCollider entity.Rect
	NPCCollider    entity.Rect
	GroundCollider entity.Rect
	ShowColliders  bool

	ShowTalkPrompt bool
	TalkPrompt     string

	DialogueVisible bool
	DialogueTyping  bool
	Speaker         string
	DialogueText    string

	CutscenePhase string
	EffectVisible bool
	EffectSource  entity.Vec2
	Distance      float64
	Volume        float64
	AmbientArmed  bool
}

// SceneController sequences the scene systems once per frame
type SceneController struct {
	cfg  *config.SceneConfig
	mode state.SceneMode

	stage      *Stage
	cutscene   *CutsceneDirector
	dialogue   *DialogueEngine
	proximity  *ProximityEffectController
	animator   *Animator
	ambient    *AmbientSound
	playButton entity.Rect

	frameCount int
}

// NewSceneController builds the scene from cfg. audio may be nil.
func NewSceneController(cfg *config.SceneConfig, script []entity.DialogueLine, audio AudioDevice) (*SceneController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	proximity, err := NewProximityEffectController(cfg.Proximity)
	if err != nil {
		return nil, err
	}

	stage := LoadStage(cfg)
	c := &SceneController{
		cfg:       cfg,
		mode:      state.ModeMenu,
		stage:     stage,
		dialogue:  NewDialogueEngine(script, cfg.Dialogue.CharInterval),
		proximity: proximity,
		animator:  NewAnimator(cfg.Player.Animation),
		ambient:   NewAmbientSound(audio),
	}
	c.cutscene = NewCutsceneDirector(&stage.Player.Position, stage.NPC.Collider(), stage.Camera, stage.World, cfg.Cutscene)

	sw, sh := float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight)
	c.playButton = entity.Rect{
		X: sw/2 - cfg.Menu.ButtonWidth/2,
		Y: sh/2 - cfg.Menu.ButtonHeight/2,
		W: cfg.Menu.ButtonWidth,
		H: cfg.Menu.ButtonHeight,
	}

	return c, nil
}

// Update advances the scene by dt seconds and returns the frame to draw
func (c *SceneController) Update(dt float64, input InputState) Frame {
	dt = entity.ClampDelta(dt)
	c.frameCount++

	if c.mode == state.ModeMenu {
		if input.Clicked && c.playButton.Contains(input.Cursor) {
			c.mode = c.mode.Next()
			log.Printf("[Scene] play pressed, mode=%s", c.mode)
		}
		return c.frame(input, false, 0)
	}

	player := c.stage.Player
	if !c.cutscene.IsFinished() {
		c.cutscene.Update(dt)
		player.Moving = c.cutscene.IsMoving()
		player.FacingLeft = c.cutscene.IsFacingLeft()
	} else if !c.dialogue.IsVisible() {
		MovePlayer(player, input, c.cfg.Player, c.stage.World.W, dt)
	} else {
		player.Moving = false
	}

	gate := CanStartDialogue(player.Collider(), c.stage.NPC.Collider(), c.dialogue.IsVisible(), c.cutscene.IsFinished())
	if input.Interact {
		if ev := c.dialogue.HandleAdvanceInput(gate); ev.SilencesAmbient() {
			c.ambient.Silence()
		}
	}
	c.dialogue.Update(dt)

	volume := c.proximity.Update(dt, player.Position)

	armed := c.cutscene.IsFinished() && !c.dialogue.IsVisible()
	c.ambient.Apply(armed, volume)

	anim := c.animator.Update(dt, player.Moving, player.FacingLeft)

	f := c.frame(input, armed, volume)
	f.Animation = anim
	f.ShowTalkPrompt = CanStartDialogue(player.Collider(), c.stage.NPC.Collider(), c.dialogue.IsVisible(), c.cutscene.IsFinished())
	return f
}

func (c *SceneController) frame(input InputState, armed bool, volume float64) Frame {
	player := c.stage.Player
	return Frame{
		Mode:   c.mode,
		Camera: *c.stage.Camera,

		MenuTitle:   c.cfg.Menu.Title,
		ButtonLabel: c.cfg.Menu.ButtonLabel,
		PlayButton:  c.playButton,

		PlayerPosition: player.Position,
		PlayerMoving:   player.Moving,
		FacingLeft:     player.FacingLeft,
		NPCPosition:    c.stage.NPC.Position,

		PlayerCollider: player.Collider(),
		NPCCollider:    c.stage.NPC.Collider(),
		GroundCollider: c.stage.Ground,
		ShowColliders:  input.ShowColliders,

		TalkPrompt: c.cfg.Dialogue.Prompt,

		DialogueVisible: c.dialogue.IsVisible(),
		DialogueTyping:  c.dialogue.IsTyping(),
		Speaker:         c.dialogue.CurrentSpeaker(),
		DialogueText:    c.dialogue.CurrentDisplayText(),

		CutscenePhase: c.cutscene.Phase().String(),
		EffectVisible: c.proximity.IsEffectVisible(),
		EffectSource:  c.proximity.Source(),
		Distance:      c.proximity.Distance(),
		Volume:        volume,
		AmbientArmed:  armed,
	}
}

// Mode returns the current scene mode
func (c *SceneController) Mode() state.SceneMode {
	return c.mode
}

// FrameCount returns the number of updates processed
func (c *SceneController) FrameCount() int {
	return c.frameCount
}

// Cutscene returns the intro director
func (c *SceneController) Cutscene() *CutsceneDirector {
	return c.cutscene
}

// Dialogue returns the dialogue engine
func (c *SceneController) Dialogue() *DialogueEngine {
	return c.dialogue
}

// Player returns the player actor
func (c *SceneController) Player() *entity.Actor {
	return c.stage.Player
}

// PlayButton returns the menu button rectangle in screen pixels
func (c *SceneController) PlayButton() entity.Rect {
	return c.playButton
}
