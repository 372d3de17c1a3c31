package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadScene(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadScene()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 1280.0, cfg.World.Width)
	assert.Equal(t, 150.0, cfg.Player.Speed)
	assert.Equal(t, 128.0, cfg.NPC.Collider.W)
	assert.Equal(t, 0.5, cfg.Cutscene.TargetZoomFactor)
	assert.Equal(t, 60.0, cfg.Cutscene.StopOffset)
	assert.Equal(t, 0.03, cfg.Dialogue.CharInterval)
	assert.Equal(t, "dialogue.yaml", cfg.Dialogue.Script)
	assert.Equal(t, 0.7, cfg.Proximity.MaxVolume)
}

func TestLoader_LoadScript(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadScript("dialogue.yaml")
	require.NoError(t, err)

	require.NotEmpty(t, cfg.Lines)
	assert.Equal(t, "NPC", cfg.Lines[0].Speaker)
	assert.Contains(t, cfg.Lines[0].Text, "dialogues")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Scene)
	assert.NotNil(t, cfg.Script)
}

func TestLoader_LoadScene_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"scene.json": {Data: []byte(`{"player": {"speed": 200}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadScene()
	require.NoError(t, err)

	assert.Equal(t, 200.0, cfg.Player.Speed)
	assert.Equal(t, 64.0, cfg.Player.SpawnY, "unset fields come from DefaultSceneConfig")
	assert.Equal(t, 300.0, cfg.Proximity.FarDistance)
}

func TestLoader_LoadScene_RejectsInvalidFalloff(t *testing.T) {
	fsys := fstest.MapFS{
		"scene.json": {Data: []byte(`{"proximity": {"nearDistance": 300, "farDistance": 50}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadScene()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFalloff))
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"scene.json":  {Data: []byte(`{not json`)},
		"broken.yaml": {Data: []byte("lines: [unclosed")},
		"empty.yaml":  {Data: []byte("")},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadScene()
	assert.ErrorContains(t, err, "failed to parse scene.json")

	_, err = loader.LoadScript("missing.yaml")
	assert.ErrorContains(t, err, "failed to read script missing.yaml")

	_, err = loader.LoadScript("broken.yaml")
	assert.ErrorContains(t, err, "failed to parse script broken.yaml")

	script, err := loader.LoadScript("empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, script.Lines)
}

func TestSceneConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SceneConfig)
		wantErr error
	}{
		{"defaults are valid", func(c *SceneConfig) {}, nil},
		{"zero world", func(c *SceneConfig) { c.World.Width = 0 }, ErrInvalidConfig},
		{"zero zoom", func(c *SceneConfig) { c.Camera.Zoom = 0 }, ErrInvalidConfig},
		{"zero char interval", func(c *SceneConfig) { c.Dialogue.CharInterval = 0 }, ErrInvalidConfig},
		{"zero cutscene speed", func(c *SceneConfig) { c.Cutscene.MoveSpeed = 0 }, ErrInvalidConfig},
		{"zoom factor above one", func(c *SceneConfig) { c.Cutscene.TargetZoomFactor = 1.5 }, ErrInvalidConfig},
		{"far equals near", func(c *SceneConfig) { c.Proximity.FarDistance = c.Proximity.NearDistance }, ErrInvalidFalloff},
		{"volume above one", func(c *SceneConfig) { c.Proximity.MaxVolume = 1.5 }, ErrInvalidConfig},
		{"zero pulse", func(c *SceneConfig) { c.Proximity.PulseDuration = 0 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSceneConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
