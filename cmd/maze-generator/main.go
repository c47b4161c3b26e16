package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xj9zitto/terminal-game-test/world"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE MAP GENERATOR ===")

		w := getInt(reader, "Width [odd preferred] (default 21): ", 21)
		h := getInt(reader, "Height [odd preferred] (default 15): ", 15)
		braid := getFloat(reader, "Braiding factor [0.0 - 1.0] (default 0.15): ", 0.15)
		seed := getInt(reader, "Seed (default 0 = random): ", 0)

		fmt.Println("\nGenerating...")
		startT := time.Now()
		g := world.GenerateMaze(world.MazeConfig{
			Width:    w,
			Height:   h,
			Braiding: braid,
			Seed:     int64(seed),
		})
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid dimensions: %dx%d\n", g.Width(), g.Height())

		draw(g)

		fmt.Print("\nSave as map file (empty to skip): ")
		pathStr, _ := reader.ReadString('\n')
		if path := strings.TrimSpace(pathStr); path != "" {
			if err := os.WriteFile(path, []byte(g.String()+"\n"), 0o644); err != nil {
				fmt.Printf("Save failed: %v\n", err)
			} else {
				fmt.Printf("Wrote %s (play it with: raywalk -map %s)\n", path, path)
			}
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// draw previews the maze with the spawn cell marked
func draw(g *world.Grid) {
	sx, sy := g.Spawn()
	spawnCol, spawnRow := int(sx), int(sy)

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			switch {
			case col == spawnCol && row == spawnRow:
				fmt.Print("S")
			case g.IsWall(col, row):
				fmt.Print("█")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
