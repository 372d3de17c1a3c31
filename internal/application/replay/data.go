package replay

// FormatVersion is written to every recording
const FormatVersion = "1.0"

// FrameInput records input state and delta time for a single frame
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	DT  float64 `json:"dt"`            // Delta time in seconds
	L   bool    `json:"l,omitempty"`   // Left
	R   bool    `json:"r,omitempty"`   // Right
	I   bool    `json:"i,omitempty"`   // Interact (just pressed)
	C   bool    `json:"c,omitempty"`   // Click (just pressed)
	MX  float64 `json:"mx"`            // CursorX
	MY  float64 `json:"my"`            // CursorY
	Col bool    `json:"col,omitempty"` // ShowColliders
}

// ReplayData contains all data needed to replay a scene session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Duration returns the summed delta time of all frames
func (d ReplayData) Duration() float64 {
	total := 0.0
	for _, f := range d.Frames {
		total += f.DT
	}
	return total
}
