package main

import (
	"fmt"

	"github.com/younwookim/talkscene/internal/application/replay"
	"github.com/younwookim/talkscene/internal/application/system"
	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

// runReplay plays a recording through a fresh, silent scene and describes
// where it ended.
func runReplay(path string, cfg *config.SceneConfig, script []entity.DialogueLine) (string, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return "", err
	}

	ctrl, err := system.NewSceneController(cfg, script, nil)
	if err != nil {
		return "", err
	}

	replayer := replay.NewReplayer(*data)
	final := replayer.Run(ctrl)

	return summarize(replayer.TotalFrames(), data.Duration(), final), nil
}

// summarize formats the final frame of a replay
func summarize(frames int, seconds float64, f system.Frame) string {
	dialogue := "hidden"
	if f.DialogueVisible {
		dialogue = fmt.Sprintf("%s: %q", f.Speaker, f.DialogueText)
	}
	return fmt.Sprintf(
		"replayed %d frames (%.2fs): mode=%s cutscene=%s player=(%.1f, %.1f) zoom=%.2f dialogue=%s volume=%.2f",
		frames, seconds, f.Mode, f.CutscenePhase,
		f.PlayerPosition.X, f.PlayerPosition.Y, f.Camera.Zoom, dialogue, f.Volume,
	)
}
