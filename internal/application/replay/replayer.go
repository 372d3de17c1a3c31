package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/talkscene/internal/application/system"
	"github.com/younwookim/talkscene/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// GetInput returns the input and delta time for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:          fi.L,
		Right:         fi.R,
		Interact:      fi.I,
		Clicked:       fi.C,
		Cursor:        entity.Vec2{X: fi.MX, Y: fi.MY},
		ShowColliders: fi.Col,
	}, fi.DT, true
}

// Run feeds every remaining frame to ctrl and returns the last frame produced
func (r *Replayer) Run(ctrl *system.SceneController) system.Frame {
	var last system.Frame
	for {
		input, dt, ok := r.GetInput()
		if !ok {
			return last
		}
		last = ctrl.Update(dt, input)
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: one PLAY click at the
// cursor followed by idle frames at a fixed delta.
func CreateTestReplayData(frames int, dt, cursorX, cursorY float64) ReplayData {
	data := ReplayData{
		Version: FormatVersion,
		Scene:   "test",
		Frames:  make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: dt,
			C:  i == 0,
			MX: cursorX,
			MY: cursorY,
		}
	}

	return data
}
