package texture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Texture file names looked up by LoadBank inside a texture directory.
const (
	WallFile    = "wall.txt"
	CeilingFile = "ceiling.txt"
	FloorFile   = "floor.txt"
)

func readRows(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if strings.ContainsRune(text, '\x1b') {
		return nil, fmt.Errorf("%s contains ANSI escapes; regenerate without --color", path)
	}
	return strings.Split(text, "\n"), nil
}

// LoadTexture reads a texture from a plain-text file, one row per
// line. Files produced by img2ascii without --color load directly.
func LoadTexture(path string) (*Texture, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadRamp reads a shading ramp from a file holding a single
// dark-to-bright line.
func LoadRamp(path string) (Ramp, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) != 1 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: ramp must be a single nonempty line", path)
	}
	return Ramp(rows[0]), nil
}

// LoadBank assembles a bank from dir, falling back to the built-in
// piece for each file that does not exist. Present but malformed files
// are errors.
func LoadBank(dir string) (*Bank, error) {
	bank := Default()

	wall, err := LoadTexture(filepath.Join(dir, WallFile))
	switch {
	case err == nil:
		bank.Wall = wall
	case !os.IsNotExist(err):
		return nil, err
	}

	ceiling, err := LoadRamp(filepath.Join(dir, CeilingFile))
	switch {
	case err == nil:
		bank.Ceiling = ceiling
	case !os.IsNotExist(err):
		return nil, err
	}

	floor, err := LoadRamp(filepath.Join(dir, FloorFile))
	switch {
	case err == nil:
		bank.Floor = floor
	case !os.IsNotExist(err):
		return nil, err
	}

	return bank, nil
}
