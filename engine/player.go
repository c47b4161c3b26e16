package engine

import (
	"github.com/xj9zitto/terminal-game-test/render"
	"github.com/xj9zitto/terminal-game-test/world"
)

// Player is the camera-bearing state: position in map-cell units,
// facing angle in radians, tilt in screen rows. The angle is never
// normalized; trigonometry wraps it implicitly.
type Player struct {
	X, Y  float64
	Angle float64
	Tilt  int
}

// NewPlayer spawns a player at the grid's spawn point facing east.
func NewPlayer(g *world.Grid) *Player {
	x, y := g.Spawn()
	return &Player{X: x, Y: y}
}

// Camera returns the view for the current state.
func (p *Player) Camera() render.Camera {
	return render.Camera{X: p.X, Y: p.Y, Angle: p.Angle, Tilt: p.Tilt}
}
