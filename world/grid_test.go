package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr bool
	}{
		{"Valid room", []string{"###", "#.#", "###"}, false},
		{"Empty input", nil, true},
		{"Empty row", []string{""}, true},
		{"Ragged rows", []string{"####", "#.#", "####"}, true},
		{"Unknown glyph", []string{"###", "#x#", "###"}, true},
		{"No floor", []string{"##", "##"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.rows)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got grid %v", g)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected grid, got error: %v", err)
			}
			if g.Width() != len(tt.rows[0]) || g.Height() != len(tt.rows) {
				t.Errorf("Expected %dx%d, got %dx%d",
					len(tt.rows[0]), len(tt.rows), g.Width(), g.Height())
			}
		})
	}
}

func TestGridQueries(t *testing.T) {
	g, err := Parse([]string{
		"####",
		"#..#",
		"####",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !g.IsWall(0, 0) {
		t.Errorf("Expected (0,0) to be wall")
	}
	if g.IsWall(1, 1) {
		t.Errorf("Expected (1,1) to be floor")
	}
	if g.IsWall(-1, 0) || g.IsWall(4, 0) {
		t.Errorf("Expected out-of-bounds cells to not report wall")
	}
	if g.InBounds(4, 1) || g.InBounds(1, 3) || g.InBounds(-1, -1) {
		t.Errorf("Expected out-of-bounds coordinates to be rejected")
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Cell center", 1.5, 1.5, true},
		{"Truncates down within cell", 2.99, 1.01, true},
		{"Wall cell", 0.5, 0.5, false},
		{"Negative truncates to col 0 wall", -0.5, 1.5, false},
		{"Beyond right edge", 4.2, 1.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.WalkableAt(tt.x, tt.y); got != tt.want {
				t.Errorf("Expected WalkableAt(%v, %v) to be %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestDefaultMap(t *testing.T) {
	g := Default()

	if g.Width() != 12 || g.Height() != 6 {
		t.Fatalf("Expected 12x6 default map, got %dx%d", g.Width(), g.Height())
	}

	for c := 0; c < g.Width(); c++ {
		if !g.IsWall(c, 0) || !g.IsWall(c, g.Height()-1) {
			t.Errorf("Expected column %d border to be wall", c)
		}
	}
	for r := 0; r < g.Height(); r++ {
		if !g.IsWall(0, r) || !g.IsWall(g.Width()-1, r) {
			t.Errorf("Expected row %d border to be wall", r)
		}
	}

	x, y := g.Spawn()
	if x != 3.0 || y != 3.0 {
		t.Errorf("Expected spawn (3, 3), got (%v, %v)", x, y)
	}
	if !g.WalkableAt(x, y) {
		t.Errorf("Expected spawn position to be walkable")
	}
}

func TestSpawnFallback(t *testing.T) {
	g, err := Parse([]string{
		"####",
		"##.#",
		"####",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	x, y := g.Spawn()
	if x != 2.5 || y != 1.5 {
		t.Errorf("Expected spawn at first floor cell center (2.5, 1.5), got (%v, %v)", x, y)
	}
}

func TestStringRoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#...#",
		"#.#.#",
		"#####",
	}
	g, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := g.String(); got != strings.Join(rows, "\n") {
		t.Errorf("Expected String to reproduce map, got:\n%s", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.map")
	content := "#####\n#...#\n#####\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g.Width() != 5 || g.Height() != 3 {
		t.Errorf("Expected 5x3 grid, got %dx%d", g.Width(), g.Height())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.map")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
