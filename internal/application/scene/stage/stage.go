// Package stage provides the talk scene: menu, intro cutscene, dialogue and
// the storm to the east.
package stage

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/talkscene/internal/application/replay"
	"github.com/younwookim/talkscene/internal/application/scene"
	"github.com/younwookim/talkscene/internal/application/system"
	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

// InputSource supplies one frame of input per Update
type InputSource interface {
	GetInput() system.InputState
}

// Stage is the single scene of the game
type Stage struct {
	cfg   *config.SceneConfig
	ctrl  *system.SceneController
	input InputSource
	fonts *fonts
	frame system.Frame

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates the scene. audio may be nil for a silent scene.
// If recordPath is not empty, every frame's input is recorded.
func New(cfg *config.SceneConfig, script []entity.DialogueLine, audio system.AudioDevice, recordPath string) (*Stage, error) {
	ctrl, err := system.NewSceneController(cfg, script, audio)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	s := &Stage{
		cfg:            cfg,
		ctrl:           ctrl,
		input:          system.NewInputSystem(),
		fonts:          f,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		s.recorder = replay.NewRecorder(cfg.Display.Title)
		log.Printf("[Stage] recording enabled: %s", recordPath)
	}

	return s, nil
}

// SetInputSource replaces the keyboard and mouse reader
func (s *Stage) SetInputSource(src InputSource) {
	s.input = src
}

// Update advances the scene (implements scene.Scene)
func (s *Stage) Update(dt float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && s.recorder != nil {
		s.saveRecording()
	}

	input := s.input.GetInput()
	if s.recorder != nil {
		s.recorder.RecordFrame(dt, input)
	}

	s.frame = s.ctrl.Update(dt, input)
	return nil, nil // nil = stay on this scene
}

// Frame returns the last frame produced by Update
func (s *Stage) Frame() system.Frame {
	return s.frame
}

// saveRecording saves the current recording to file
func (s *Stage) saveRecording() {
	if s.recorder == nil {
		return
	}

	filename := s.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := s.recorder.Save(filename); err != nil {
		log.Printf("[Stage] failed to save recording: %v", err)
	} else {
		log.Printf("[Stage] recording saved: %s (%d frames)", filename, s.recorder.FrameCount())
	}
}

// OnEnter is called when the scene becomes current
func (s *Stage) OnEnter() {
	log.Printf("[Stage] entered, mode=%s", s.ctrl.Mode())
}

// OnExit saves any recording in progress
func (s *Stage) OnExit() {
	s.saveRecording()
}
