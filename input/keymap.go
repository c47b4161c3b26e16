package input

import "github.com/gdamore/tcell/v2"

// runeActions binds lowercase movement keys. Uppercase is deliberately
// unbound; holding shift mid-walk would silently halt the player.
var runeActions = map[rune]Action{
	'w': ActionForward,
	's': ActionBack,
	'a': ActionStrafeLeft,
	'd': ActionStrafeRight,
	'q': ActionQuit,
}

var keyActions = map[tcell.Key]Action{
	tcell.KeyLeft:   ActionTurnLeft,
	tcell.KeyRight:  ActionTurnRight,
	tcell.KeyUp:     ActionLookUp,
	tcell.KeyDown:   ActionLookDown,
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
}

// Translate maps a raw terminal event to its action. Events that are
// not key presses, and keys outside the map, return false and are
// dropped by the caller.
func Translate(ev tcell.Event) (Action, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return 0, false
	}

	if key.Key() == tcell.KeyRune {
		a, ok := runeActions[key.Rune()]
		return a, ok
	}
	a, ok := keyActions[key.Key()]
	return a, ok
}
