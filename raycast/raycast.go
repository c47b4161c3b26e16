package raycast

import (
	"math"

	"github.com/xj9zitto/terminal-game-test/constants"
	"github.com/xj9zitto/terminal-game-test/world"
)

// Hit describes where a marched ray stopped. Distance is in map-cell
// units along the ray; X and Y are the sample coordinates at the stop
// point. VerticalFace approximates which wall face was struck so the
// renderer can pick the texture axis.
type Hit struct {
	Distance     float64
	X, Y         float64
	VerticalFace bool
}

// Cast marches from (px, py) along angle in StepLength increments,
// sampling the grid at each step. Three outcomes:
//
//   - The sample leaves the grid: the ray escaped the map. Returns the
//     traveled distance and the out-of-bounds coordinates.
//   - The sample lands on a wall cell: returns the traveled distance,
//     the sample coordinates, and the face heuristic.
//   - The step budget runs out: returns MissDistance with the origin
//     coordinates.
//
// The face check |cos| > |sin| is a deliberate approximation, not true
// side detection. Texture orientation on corner hits depends on it;
// replacing it with exact DDA changes the rendered output.
func Cast(px, py, angle float64, g *world.Grid) Hit {
	sin := math.Sin(angle)
	cos := math.Cos(angle)

	for i := 1; i < constants.MaxSteps; i++ {
		dist := float64(i) * constants.StepLength
		x := px + cos*dist
		y := py + sin*dist

		col, row := int(x), int(y)
		if !g.InBounds(col, row) {
			return Hit{Distance: dist, X: x, Y: y}
		}
		if g.IsWall(col, row) {
			return Hit{
				Distance:     dist,
				X:            x,
				Y:            y,
				VerticalFace: math.Abs(cos) > math.Abs(sin),
			}
		}
	}

	return Hit{Distance: constants.MissDistance, X: px, Y: py}
}
