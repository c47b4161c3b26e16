package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/xj9zitto/terminal-game-test/constants"
)

func TestIsHeldWindow(t *testing.T) {
	tr := NewTracker()
	t0 := time.Now()

	tr.Record(ActionForward, t0)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"At record time", t0, true},
		{"Within window", t0.Add(constants.HoldWindow / 2), true},
		{"At window boundary", t0.Add(constants.HoldWindow), true},
		{"Just past boundary", t0.Add(constants.HoldWindow + time.Millisecond), false},
		{"Before record time", t0.Add(-time.Millisecond), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.IsHeld(ActionForward, tt.now); got != tt.want {
				t.Errorf("Expected IsHeld to be %v, got %v", tt.want, got)
			}
		})
	}

	if tr.IsHeld(ActionBack, t0) {
		t.Error("Expected unrecorded action to not be held")
	}
}

func TestRecordLatestWins(t *testing.T) {
	tr := NewTracker()
	t0 := time.Now()

	// Same-tick repeats leave only the newest timestamp.
	tr.Record(ActionQuit, t0)
	tr.Record(ActionQuit, t0.Add(50*time.Millisecond))
	tr.Record(ActionQuit, t0.Add(100*time.Millisecond))

	probe := t0.Add(100*time.Millisecond + constants.HoldWindow)
	if !tr.IsHeld(ActionQuit, probe) {
		t.Error("Expected latest record to keep the action held")
	}
	if tr.IsHeld(ActionQuit, probe.Add(time.Millisecond)) {
		t.Error("Expected action released after the latest record ages out")
	}
}

func TestSnapshot(t *testing.T) {
	tr := NewTrackerWindow(100 * time.Millisecond)
	t0 := time.Now()

	tr.Record(ActionForward, t0)
	tr.Record(ActionStrafeRight, t0)
	tr.Record(ActionLookDown, t0.Add(-200*time.Millisecond))

	held := tr.Snapshot(t0.Add(50 * time.Millisecond))

	if !held.Forward || !held.StrafeRight {
		t.Error("Expected forward and strafe_right to be held")
	}
	if held.LookDown {
		t.Error("Expected stale look_down to be released")
	}
	if held.Back || held.TurnLeft || held.Quit {
		t.Error("Expected unrecorded actions to be released")
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		ev     tcell.Event
		action Action
		ok     bool
	}{
		{"Forward key", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionForward, true},
		{"Back key", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionBack, true},
		{"Strafe left key", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionStrafeLeft, true},
		{"Strafe right key", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionStrafeRight, true},
		{"Quit key", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit, true},
		{"Turn left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionTurnLeft, true},
		{"Turn right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionTurnRight, true},
		{"Look up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionLookUp, true},
		{"Look down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionLookDown, true},
		{"Escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit, true},
		{"Ctrl+C quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), ActionQuit, true},
		{"Uppercase ignored", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), 0, false},
		{"Unbound rune ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"Unbound key ignored", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), 0, false},
		{"Resize ignored", tcell.NewEventResize(80, 24), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := Translate(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && a != tt.action {
				t.Errorf("Expected action %v, got %v", tt.action, a)
			}
		})
	}
}
