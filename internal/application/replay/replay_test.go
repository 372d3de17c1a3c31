package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/talkscene/internal/application/state"
	"github.com/younwookim/talkscene/internal/application/system"
	"github.com/younwookim/talkscene/internal/domain/entity"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

const dt = 1.0 / 60

func testScript() []entity.DialogueLine {
	return []entity.DialogueLine{
		{Speaker: "NPC", Text: "Hello"},
		{Speaker: "Character", Text: "Hi"},
	}
}

func newController(t *testing.T) *system.SceneController {
	t.Helper()
	c, err := system.NewSceneController(config.DefaultSceneConfig(), testScript(), nil)
	require.NoError(t, err)
	return c
}

// session is a scripted play-through: click PLAY, sit through the intro,
// talk to the NPC, then walk toward the storm.
func session() []system.InputState {
	inputs := []system.InputState{{Clicked: true, Cursor: entity.Vec2{X: 640, Y: 360}}}
	for i := 0; i < 520; i++ {
		inputs = append(inputs, system.InputState{})
	}
	for i := 0; i < 5; i++ {
		inputs = append(inputs, system.InputState{Interact: true}, system.InputState{})
	}
	for i := 0; i < 200; i++ {
		inputs = append(inputs, system.InputState{Right: true, ShowColliders: i%50 == 0})
	}
	return inputs
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Frames: []FrameInput{
			{F: 0, DT: dt, L: true, MX: 100, MY: 100},
			{F: 1, DT: 0.02, R: true, I: true, MX: 110, MY: 95},
			{F: 2, DT: dt, C: true, Col: true, MX: 120, MY: 90},
		},
	}

	replayer := NewReplayer(data)

	input, d, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, dt, d)
	assert.Equal(t, entity.Vec2{X: 100, Y: 100}, input.Cursor)

	input, d, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.Interact)
	assert.Equal(t, 0.02, d)

	input, _, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Clicked)
	assert.True(t, input.ShowColliders)

	_, _, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_FrameCounters(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, dt, 640, 360))

	assert.Equal(t, 5, replayer.TotalFrames())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	input, _, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Clicked)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, dt, 200, 150)

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, "test", data.Scene)
	require.Len(t, data.Frames, 60)
	assert.InDelta(t, 1.0, data.Duration(), 1e-9)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "frame number mismatch at index %d", i)
		assert.Equal(t, i == 0, frame.C)
		assert.Equal(t, 200.0, frame.MX)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder("talk")
	assert.True(t, rec.IsRecording())

	rec.RecordFrame(dt, system.InputState{Left: true, Cursor: entity.Vec2{X: 3, Y: 4}})
	rec.RecordFrame(0.02, system.InputState{Interact: true})
	rec.Stop()
	rec.RecordFrame(dt, system.InputState{})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.GetData()
	assert.Equal(t, "talk", data.Scene)
	assert.Equal(t, FrameInput{F: 0, DT: dt, L: true, MX: 3, MY: 4}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 1, DT: 0.02, I: true}, data.Frames[1])
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), GenerateFilename())

	rec := NewRecorder("talk")
	assert.Error(t, rec.Save(path), "empty recordings are not written")

	for _, in := range session()[:10] {
		rec.RecordFrame(dt, in)
	}
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.GetData().Frames, data.Frames)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.ErrorContains(t, err, "failed to decode replay")

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"0.1","frames":[]}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestReplay_ReproducesSession(t *testing.T) {
	live := newController(t)
	rec := NewRecorder("talk")

	var want system.Frame
	for _, in := range session() {
		rec.RecordFrame(dt, in)
		want = live.Update(dt, in)
	}
	require.Equal(t, state.ModePlaying, want.Mode)
	require.True(t, live.Cutscene().IsFinished())

	got := NewReplayer(rec.GetData()).Run(newController(t))

	assert.Equal(t, want, got)
}

func TestReplay_IdleRunFinishesCutscene(t *testing.T) {
	ctrl := newController(t)
	replayer := NewReplayer(CreateTestReplayData(600, dt, 640, 360))

	f := replayer.Run(ctrl)

	assert.Equal(t, state.ModePlaying, f.Mode)
	assert.Equal(t, "Finished", f.CutscenePhase)
	assert.Equal(t, 540.0, f.PlayerPosition.X)
	assert.Equal(t, 600, replayer.CurrentFrame())
}
