package system

// Phase is one step of the intro cutscene.
// The set of phases is closed: only the types in this file implement it.
type Phase interface {
	isPhase()
	String() string
}

// ZoomingIn narrows the view toward the target zoom while following the player
type ZoomingIn struct{}

// WaitBeforeMove holds the zoomed view before the walk starts
type WaitBeforeMove struct {
	Remaining float64 // seconds
}

// MovingToTarget walks the player toward the NPC
type MovingToTarget struct{}

// WaitAfterMove holds the view after the player has stopped
type WaitAfterMove struct {
	Remaining float64 // seconds
}

// ZoomingOut eases the camera back to its original position and zoom
type ZoomingOut struct{}

// Finished is terminal
type Finished struct{}

func (ZoomingIn) isPhase()      {}
func (WaitBeforeMove) isPhase() {}
func (MovingToTarget) isPhase() {}
func (WaitAfterMove) isPhase()  {}
func (ZoomingOut) isPhase()     {}
func (Finished) isPhase()       {}

func (ZoomingIn) String() string      { return "ZoomingIn" }
func (WaitBeforeMove) String() string { return "WaitBeforeMove" }
func (MovingToTarget) String() string { return "MovingToTarget" }
func (WaitAfterMove) String() string  { return "WaitAfterMove" }
func (ZoomingOut) String() string     { return "ZoomingOut" }
func (Finished) String() string       { return "Finished" }
