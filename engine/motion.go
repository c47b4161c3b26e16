package engine

import (
	"math"

	"github.com/xj9zitto/terminal-game-test/constants"
	"github.com/xj9zitto/terminal-game-test/input"
	"github.com/xj9zitto/terminal-game-test/world"
)

// Outcome reports what one motion tick did to the player.
type Outcome struct {
	Turned  bool
	Tilted  bool
	Moved   bool
	Blocked bool // movement was attempted and fully rejected
}

// Changed reports whether the view needs a redraw.
func (o Outcome) Changed() bool {
	return o.Turned || o.Tilted || o.Moved
}

// Advance folds one tick of held input into the player: rotation and
// tilt first, then movement using the updated facing angle.
//
// Movement sums up to four axis contributions, normalizes the result
// to unit length so diagonals are no faster than a single axis, and
// scales by the move step. Collision is all or nothing: if the
// candidate cell is out of bounds or a wall the whole step is
// rejected, with no sliding along the clear axis.
func Advance(held input.Held, p *Player, g *world.Grid) Outcome {
	var out Outcome

	prevAngle := p.Angle
	if held.TurnLeft {
		p.Angle -= constants.RotStep
	}
	if held.TurnRight {
		p.Angle += constants.RotStep
	}
	out.Turned = p.Angle != prevAngle

	prevTilt := p.Tilt
	if held.LookUp {
		p.Tilt -= constants.TiltStep
		if p.Tilt < -constants.TiltLimit {
			p.Tilt = -constants.TiltLimit
		}
	}
	if held.LookDown {
		p.Tilt += constants.TiltStep
		if p.Tilt > constants.TiltLimit {
			p.Tilt = constants.TiltLimit
		}
	}
	out.Tilted = p.Tilt != prevTilt

	sin, cos := math.Sin(p.Angle), math.Cos(p.Angle)
	var moveX, moveY float64
	if held.Forward {
		moveX += cos
		moveY += sin
	}
	if held.Back {
		moveX -= cos
		moveY -= sin
	}
	if held.StrafeLeft {
		moveX += sin
		moveY -= cos
	}
	if held.StrafeRight {
		moveX -= sin
		moveY += cos
	}

	// Opposing keys cancel to an exact zero vector; nothing to do.
	if moveX != 0 || moveY != 0 {
		length := math.Hypot(moveX, moveY)
		nx := p.X + moveX/length*constants.MoveStep
		ny := p.Y + moveY/length*constants.MoveStep

		if g.WalkableAt(nx, ny) {
			p.X = nx
			p.Y = ny
			out.Moved = true
		} else {
			out.Blocked = true
		}
	}

	return out
}
