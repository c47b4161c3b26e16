package world

import (
	"math/rand"
	"time"
)

// MazeConfig controls maze generation. Width and Height are desired
// grid dimensions in cells and are rounded down to odd values (minimum
// 5) so that corridors and walls alternate cleanly.
type MazeConfig struct {
	Width  int
	Height int

	// Braiding opens a fraction of dead ends into loops: 0 keeps a
	// perfect maze (spanning tree), 1 removes every dead end it can
	// without creating open plazas or free-standing pillar walls.
	Braiding float64

	// Seed selects the layout; 0 picks one from the clock.
	Seed int64
}

// GenerateMaze carves a maze grid with a solid wall border and places
// the spawn at the center of the carve origin cell (1, 1).
func GenerateMaze(cfg MazeConfig) *Grid {
	w := oddDim(cfg.Width)
	h := oddDim(cfg.Height)

	cells := make([][]Cell, h)
	for r := range cells {
		cells[r] = make([]Cell, w)
		for c := range cells[r] {
			cells[r][c] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	carve(cells, rng)
	if cfg.Braiding > 0 {
		braid(cells, cfg.Braiding, rng)
	}

	return &Grid{
		cells:    cells,
		width:    w,
		height:   h,
		spawnX:   1.5,
		spawnY:   1.5,
		hasSpawn: true,
	}
}

func oddDim(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

type cellPos struct{ col, row int }

// jump directions between corridor nodes; nodes sit on odd coordinates
// with one wall cell between neighbors
var jumpDirs = [4]cellPos{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

var orthoDirs = [4]cellPos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// carve runs a randomized depth-first walk over the odd-coordinate
// node lattice, knocking out the wall between each visited pair. The
// outermost ring is never touched, so the border stays solid.
func carve(cells [][]Cell, rng *rand.Rand) {
	h, w := len(cells), len(cells[0])
	start := cellPos{1, 1}
	cells[start.row][start.col] = Floor

	stack := []cellPos{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []cellPos
		for _, d := range jumpDirs {
			nc, nr := cur.col+d.col, cur.row+d.row
			if nc > 0 && nc < w-1 && nr > 0 && nr < h-1 && cells[nr][nc] == Wall {
				next = append(next, d)
			}
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := next[rng.Intn(len(next))]
		cells[cur.row+d.row/2][cur.col+d.col/2] = Floor
		cells[cur.row+d.row][cur.col+d.col] = Floor
		stack = append(stack, cellPos{cur.col + d.col, cur.row + d.row})
	}
}

// braid opens dead ends with the given probability by removing one
// adjoining wall, skipping removals that would create a 2×2 open plaza
// or leave a wall cell with no wall neighbors.
func braid(cells [][]Cell, probability float64, rng *rand.Rand) {
	h, w := len(cells), len(cells[0])

	for row := 1; row < h-1; row += 2 {
		for col := 1; col < w-1; col += 2 {
			if cells[row][col] == Wall {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if cells[row+d.row][col+d.col] == Floor {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			var options []cellPos
			for _, d := range jumpDirs {
				nc, nr := col+d.col, row+d.row
				wc, wr := col+d.col/2, row+d.row/2
				if nc < 0 || nc >= w || nr < 0 || nr >= h {
					continue
				}
				if cells[nr][nc] == Floor && cells[wr][wc] == Wall && removableWall(cells, wc, wr) {
					options = append(options, cellPos{wc, wr})
				}
			}

			if len(options) > 0 {
				pick := options[rng.Intn(len(options))]
				cells[pick.row][pick.col] = Floor
			}
		}
	}
}

// removableWall reports whether opening the wall at (col, row) keeps
// the maze texture intact: no 2×2 floor plaza may appear and no
// neighboring wall may end up orphaned from every other wall.
func removableWall(cells [][]Cell, col, row int) bool {
	h, w := len(cells), len(cells[0])

	floorAt := func(c, r int) bool {
		if c < 0 || c >= w || r < 0 || r >= h {
			return false
		}
		return cells[r][c] == Floor
	}

	// The four 2×2 quadrants that would include (col, row)
	quads := [4][3]cellPos{
		{{col - 1, row - 1}, {col, row - 1}, {col - 1, row}},
		{{col, row - 1}, {col + 1, row - 1}, {col + 1, row}},
		{{col - 1, row}, {col - 1, row + 1}, {col, row + 1}},
		{{col + 1, row}, {col, row + 1}, {col + 1, row + 1}},
	}
	for _, q := range quads {
		if floorAt(q[0].col, q[0].row) && floorAt(q[1].col, q[1].row) && floorAt(q[2].col, q[2].row) {
			return false
		}
	}

	for _, d := range orthoDirs {
		nc, nr := col+d.col, row+d.row
		if nc < 0 || nc >= w || nr < 0 || nr >= h || cells[nr][nc] != Wall {
			continue
		}
		// (col, row) is about to become floor; it no longer counts as
		// a wall connection for this neighbor.
		connections := 0
		for _, d2 := range orthoDirs {
			cc, cr := nc+d2.col, nr+d2.row
			if cc == col && cr == row {
				continue
			}
			if cc >= 0 && cc < w && cr >= 0 && cr < h && cells[cr][cc] == Wall {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}

	return true
}
