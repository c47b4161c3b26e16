package engine

import (
	"github.com/xj9zitto/terminal-game-test/input"
	"github.com/xj9zitto/terminal-game-test/world"
)

// Context owns all simulation state for one session. Every field is
// accessed only from the frame loop goroutine; no synchronization.
type Context struct {
	Grid    *world.Grid
	Player  *Player
	Tracker *input.Tracker
}

// NewContext creates a session on g with the player at its spawn.
func NewContext(g *world.Grid) *Context {
	return &Context{
		Grid:    g,
		Player:  NewPlayer(g),
		Tracker: input.NewTracker(),
	}
}
