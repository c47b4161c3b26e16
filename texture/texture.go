package texture

import "fmt"

// Texture is a rectangular grid of shading runes, immutable after
// construction. The reference wall texture is 8 rows by 11 columns;
// brightness falls toward the lower-right so that the proportional row
// mapping darkens wall slices toward their base.
type Texture struct {
	rows   [][]rune
	width  int
	height int
}

// Parse builds a texture from text rows. Rows must be nonzero and of
// equal rune length.
func Parse(rows []string) (*Texture, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("texture is empty")
	}

	grid := make([][]rune, len(rows))
	width := -1
	for i, row := range rows {
		r := []rune(row)
		if len(r) == 0 {
			return nil, fmt.Errorf("texture row %d is empty", i)
		}
		if width == -1 {
			width = len(r)
		} else if len(r) != width {
			return nil, fmt.Errorf("texture row %d has %d runes, want %d", i, len(r), width)
		}
		grid[i] = r
	}

	return &Texture{rows: grid, width: width, height: len(grid)}, nil
}

// Width returns the number of columns.
func (t *Texture) Width() int { return t.width }

// Height returns the number of rows.
func (t *Texture) Height() int { return t.height }

// At returns the rune at (col, row), clamping both coordinates into
// range.
func (t *Texture) At(col, row int) rune {
	if col < 0 {
		col = 0
	} else if col >= t.width {
		col = t.width - 1
	}
	if row < 0 {
		row = 0
	} else if row >= t.height {
		row = t.height - 1
	}
	return t.rows[row][col]
}

// Column maps a fractional hit coordinate in [0, 1) to a texture
// column, truncating and clamping at both ends.
func (t *Texture) Column(frac float64) int {
	col := int(frac * float64(t.width))
	if col < 0 {
		return 0
	}
	if col >= t.width {
		return t.width - 1
	}
	return col
}

// Row maps a relative slice position in [0, 1] to a texture row,
// truncating with an upper clamp only; callers never pass negative
// positions.
func (t *Texture) Row(rel float64) int {
	row := int(rel * float64(t.height))
	if row >= t.height {
		return t.height - 1
	}
	return row
}

// Ramp is an ordered dark-to-bright rune sequence used for ceiling and
// floor shading.
type Ramp []rune

// Level returns the rune at index i, clamped into range.
func (r Ramp) Level(i int) rune {
	if i < 0 {
		i = 0
	} else if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}

// Shade selects the ramp rune for a row dy screen rows away from the
// horizon on a screen of height screenH. Rows at or past the horizon
// take the darkest rune; the level brightens as dy shrinks.
func (r Ramp) Shade(screenH, dy int) rune {
	if dy <= 0 {
		return r[0]
	}
	lvl := int(float64(screenH) / float64(dy+1) / 2)
	if lvl >= len(r) {
		lvl = len(r) - 1
	}
	return r[lvl]
}

// Bank holds the fixed texture set the renderer draws from.
type Bank struct {
	Wall    *Texture
	Ceiling Ramp
	Floor   Ramp
}

var defaultWallRows = []string{
	"@@###%%%***",
	"@###%%%***+",
	"##%%**++---",
	"#%%**++---.",
	"%%%**+---..",
	"%%**+--....",
	"%**+--.....",
	"**+--......",
}

const defaultRamp = ".-+*%#@"

// Default returns the built-in bank: the reference wall texture and
// identical ceiling and floor ramps.
func Default() *Bank {
	wall, err := Parse(defaultWallRows)
	if err != nil {
		panic("texture: default wall texture invalid: " + err.Error())
	}
	return &Bank{
		Wall:    wall,
		Ceiling: Ramp(defaultRamp),
		Floor:   Ramp(defaultRamp),
	}
}
