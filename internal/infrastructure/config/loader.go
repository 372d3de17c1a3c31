package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads scene configuration from files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadScene loads scene.json on top of DefaultSceneConfig and validates it.
// Fields missing from the file keep their default values.
func (l *Loader) LoadScene() (*SceneConfig, error) {
	data, err := fs.ReadFile(l.fsys, "scene.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read scene.json: %w", err)
	}

	cfg := DefaultSceneConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene.json: %w", err)
	}

	return cfg, nil
}

// LoadScript loads a dialogue script YAML file.
// An empty file yields an empty script, not an error.
func (l *Loader) LoadScript(name string) (*ScriptConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}

	var cfg ScriptConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads the scene and the dialogue script it references
func (l *Loader) LoadAll() (*GameConfig, error) {
	scene, err := l.LoadScene()
	if err != nil {
		return nil, err
	}

	script, err := l.LoadScript(scene.Dialogue.Script)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Scene:  scene,
		Script: script,
	}, nil
}
