package world

import (
	"fmt"
	"os"
	"strings"
)

// Cell is a single tile of the map.
type Cell uint8

const (
	Floor Cell = iota
	Wall
)

// Map file glyphs
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

// Grid is a rectangular tile map, immutable after construction.
// Coordinates are (col, row) with row 0 at the top; real-valued
// positions use map-cell units where cell (c, r) spans [c,c+1)×[r,r+1).
type Grid struct {
	cells  [][]Cell
	width  int
	height int

	spawnX, spawnY float64
	hasSpawn       bool
}

// Parse builds a grid from text rows using '#' for wall and '.' for
// floor. All rows must have equal nonzero length and the map must
// contain at least one floor cell.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map is empty")
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("map row 0 is empty")
	}

	cells := make([][]Cell, len(rows))
	floors := 0
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("map row %d has length %d, want %d", r, len(row), width)
		}
		cells[r] = make([]Cell, width)
		for c, ch := range []byte(row) {
			switch ch {
			case GlyphWall:
				cells[r][c] = Wall
			case GlyphFloor:
				cells[r][c] = Floor
				floors++
			default:
				return nil, fmt.Errorf("map row %d col %d: unknown glyph %q", r, c, ch)
			}
		}
	}

	if floors == 0 {
		return nil, fmt.Errorf("map has no floor cells")
	}

	return &Grid{cells: cells, width: width, height: len(rows)}, nil
}

// Load reads a map file, one text row per line. Blank trailing lines
// are dropped; interior blank lines are a format error surfaced by
// Parse as a ragged row.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	g, err := Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return g, nil
}

// defaultRows is the built-in room: a 12×6 walled rectangle with an
// open interior.
var defaultRows = []string{
	"############",
	"#..........#",
	"#..........#",
	"#..........#",
	"#..........#",
	"############",
}

// Default returns the built-in map with its spawn point.
func Default() *Grid {
	g, err := Parse(defaultRows)
	if err != nil {
		panic("world: default map invalid: " + err.Error())
	}
	g.spawnX, g.spawnY = 3.0, 3.0
	g.hasSpawn = true
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// IsWall reports whether (col, row) is a wall cell. Out-of-bounds
// coordinates are not walls; callers that care do their own bounds
// check first, as the ray caster does.
func (g *Grid) IsWall(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.cells[row][col] == Wall
}

// WalkableAt reports whether the real-valued position lands on a floor
// cell. Truncation toward zero matches the collision rule used by the
// motion controller.
func (g *Grid) WalkableAt(x, y float64) bool {
	col, row := int(x), int(y)
	if !g.InBounds(col, row) {
		return false
	}
	return g.cells[row][col] == Floor
}

// Spawn returns the player start position. Grids constructed with an
// explicit spawn (the default map, generated mazes) return it; for
// loaded maps the first floor cell's center is used.
func (g *Grid) Spawn() (x, y float64) {
	if g.hasSpawn {
		return g.spawnX, g.spawnY
	}
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == Floor {
				return float64(c) + 0.5, float64(r) + 0.5
			}
		}
	}
	// Unreachable: Parse requires at least one floor cell
	return 0, 0
}

// String renders the grid in map file glyphs, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			if cell == Wall {
				b.WriteByte(GlyphWall)
			} else {
				b.WriteByte(GlyphFloor)
			}
		}
	}
	return b.String()
}
