package input

import (
	"time"

	"github.com/xj9zitto/terminal-game-test/constants"
)

// Tracker debounces raw key events into held state. Terminals deliver
// key repeats as discrete events with gaps, so a key counts as held
// while its last event is within the hold window. Owned by the frame
// loop; not safe for concurrent use.
type Tracker struct {
	lastSeen map[Action]time.Time
	window   time.Duration
}

// NewTracker creates a tracker using the default hold window.
func NewTracker() *Tracker {
	return NewTrackerWindow(constants.HoldWindow)
}

// NewTrackerWindow creates a tracker with an explicit hold window.
func NewTrackerWindow(window time.Duration) *Tracker {
	return &Tracker{
		lastSeen: make(map[Action]time.Time),
		window:   window,
	}
}

// Record notes that a was observed at t. Later events overwrite
// earlier ones; entries are never removed.
func (tr *Tracker) Record(a Action, t time.Time) {
	tr.lastSeen[a] = t
}

// IsHeld reports whether a was observed within the hold window before
// now. Actions never recorded are not held.
func (tr *Tracker) IsHeld(a Action, now time.Time) bool {
	last, ok := tr.lastSeen[a]
	if !ok {
		return false
	}
	return now.Sub(last) <= tr.window
}

// Held is the debounced state of every action at one instant.
type Held struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	LookUp      bool
	LookDown    bool
	Quit        bool
}

// Snapshot evaluates all actions against now in one pass.
func (tr *Tracker) Snapshot(now time.Time) Held {
	return Held{
		Forward:     tr.IsHeld(ActionForward, now),
		Back:        tr.IsHeld(ActionBack, now),
		StrafeLeft:  tr.IsHeld(ActionStrafeLeft, now),
		StrafeRight: tr.IsHeld(ActionStrafeRight, now),
		TurnLeft:    tr.IsHeld(ActionTurnLeft, now),
		TurnRight:   tr.IsHeld(ActionTurnRight, now),
		LookUp:      tr.IsHeld(ActionLookUp, now),
		LookDown:    tr.IsHeld(ActionLookDown, now),
		Quit:        tr.IsHeld(ActionQuit, now),
	}
}
