package system

import (
	"log"

	"github.com/younwookim/talkscene/internal/domain/entity"
)

// revealEpsilon absorbs float drift so deltas that sum to exactly
// n*interval reveal n characters.
const revealEpsilon = 1e-9

// DialogueState is the engine's session state.
// The set is closed: Hidden, Typing and Waiting.
type DialogueState interface {
	isDialogueState()
	String() string
}

// Hidden means no session is active
type Hidden struct{}

// Typing is revealing line Line one character at a time
type Typing struct {
	Line     int
	Revealed int     // characters shown so far
	Elapsed  float64 // seconds accumulated toward the next character
}

// Waiting shows line Line in full until the player advances
type Waiting struct {
	Line int
}

func (Hidden) isDialogueState()  {}
func (Typing) isDialogueState()  {}
func (Waiting) isDialogueState() {}

func (Hidden) String() string  { return "Hidden" }
func (Typing) String() string  { return "Typing" }
func (Waiting) String() string { return "Waiting" }

// DialogueEvent reports what HandleAdvanceInput did
type DialogueEvent int

const (
	EventNone     DialogueEvent = iota
	EventStarted                // session opened at line 0
	EventSkipped                // typing skipped, full line shown
	EventAdvanced               // moved on to the next line
	EventFinished               // script exhausted, session hidden
)

// String returns the string representation of the event
func (e DialogueEvent) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventStarted:
		return "Started"
	case EventSkipped:
		return "Skipped"
	case EventAdvanced:
		return "Advanced"
	case EventFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// SilencesAmbient reports whether the event starts a new line, which must
// cut the ambient sound.
func (e DialogueEvent) SilencesAmbient() bool {
	return e == EventStarted || e == EventAdvanced
}

// DialogueEngine plays a fixed script with a typewriter reveal
type DialogueEngine struct {
	script       []entity.DialogueLine
	lines        [][]rune
	charInterval float64
	state        DialogueState
}

// NewDialogueEngine creates an engine for script. The script is copied and
// never changes afterwards.
func NewDialogueEngine(script []entity.DialogueLine, charInterval float64) *DialogueEngine {
	e := &DialogueEngine{
		script:       append([]entity.DialogueLine(nil), script...),
		charInterval: charInterval,
		state:        Hidden{},
	}
	e.lines = make([][]rune, len(e.script))
	for i, line := range e.script {
		e.lines[i] = []rune(line.Text)
	}
	return e
}

// StartSession opens the script at line 0.
// An empty script leaves the session hidden.
func (e *DialogueEngine) StartSession() {
	e.state = e.enterLine(0)
	if _, hidden := e.state.(Hidden); !hidden {
		log.Printf("[Dialogue] session started (%d lines)", len(e.script))
	}
}

// HandleAdvanceInput applies one press of the interact key.
// gateOpen is the InteractionGate result for this frame and only matters
// while the session is hidden.
func (e *DialogueEngine) HandleAdvanceInput(gateOpen bool) DialogueEvent {
	switch s := e.state.(type) {
	case Hidden:
		if !gateOpen {
			return EventNone
		}
		e.StartSession()
		if !e.IsVisible() {
			return EventNone
		}
		return EventStarted

	case Typing:
		e.state = Waiting{Line: s.Line}
		return EventSkipped

	case Waiting:
		e.state = e.enterLine(s.Line + 1)
		if !e.IsVisible() {
			log.Printf("[Dialogue] session finished")
			return EventFinished
		}
		return EventAdvanced
	}

	return EventNone
}

// enterLine returns the state for starting line i. Past the end of the
// script the session is hidden; an empty line is complete immediately.
func (e *DialogueEngine) enterLine(i int) DialogueState {
	if i < 0 || i >= len(e.lines) {
		return Hidden{}
	}
	if len(e.lines[i]) == 0 {
		return Waiting{Line: i}
	}
	return Typing{Line: i}
}

// Update advances the typewriter by dt seconds
func (e *DialogueEngine) Update(dt float64) {
	s, ok := e.state.(Typing)
	if !ok {
		return
	}

	text := e.lines[s.Line]
	s.Elapsed += entity.ClampDelta(dt)
	for s.Elapsed+revealEpsilon >= e.charInterval && s.Revealed < len(text) {
		s.Revealed++
		s.Elapsed -= e.charInterval
	}
	if s.Elapsed < 0 {
		s.Elapsed = 0
	}

	if s.Revealed >= len(text) {
		e.state = Waiting{Line: s.Line}
		return
	}
	e.state = s
}

// Hide closes the session and resets it
func (e *DialogueEngine) Hide() {
	e.state = Hidden{}
}

// State returns the current session state
func (e *DialogueEngine) State() DialogueState {
	return e.state
}

// IsVisible reports whether a session is open
func (e *DialogueEngine) IsVisible() bool {
	_, hidden := e.state.(Hidden)
	return !hidden
}

// IsTyping reports whether the current line is still being revealed
func (e *DialogueEngine) IsTyping() bool {
	_, typing := e.state.(Typing)
	return typing
}

// LineIndex returns the current line, or len(script) when hidden
func (e *DialogueEngine) LineIndex() int {
	switch s := e.state.(type) {
	case Typing:
		return s.Line
	case Waiting:
		return s.Line
	}
	return len(e.script)
}

// CurrentSpeaker returns the speaker of the current line, "" when hidden
func (e *DialogueEngine) CurrentSpeaker() string {
	if !e.IsVisible() {
		return ""
	}
	return e.script[e.LineIndex()].Speaker
}

// CurrentDisplayText returns the revealed part of the current line
func (e *DialogueEngine) CurrentDisplayText() string {
	switch s := e.state.(type) {
	case Typing:
		return string(e.lines[s.Line][:s.Revealed])
	case Waiting:
		return e.script[s.Line].Text
	}
	return ""
}
