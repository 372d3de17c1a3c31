package state

// SceneMode is the top-level mode of the scene
type SceneMode int

const (
	ModeMenu SceneMode = iota
	ModePlaying
)

// String returns the string representation of the scene mode
func (m SceneMode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Next returns the mode a PLAY click leads to. Playing never goes back.
func (m SceneMode) Next() SceneMode {
	if m == ModeMenu {
		return ModePlaying
	}
	return m
}
