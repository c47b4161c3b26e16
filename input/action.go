package input

// Action is a logical control the player can hold.
type Action uint8

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionLookUp
	ActionLookDown
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:     "forward",
	ActionBack:        "back",
	ActionStrafeLeft:  "strafe_left",
	ActionStrafeRight: "strafe_right",
	ActionTurnLeft:    "turn_left",
	ActionTurnRight:   "turn_right",
	ActionLookUp:      "look_up",
	ActionLookDown:    "look_down",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}
