package render

import (
	"math"

	"github.com/xj9zitto/terminal-game-test/constants"
	"github.com/xj9zitto/terminal-game-test/raycast"
	"github.com/xj9zitto/terminal-game-test/terminal"
	"github.com/xj9zitto/terminal-game-test/texture"
	"github.com/xj9zitto/terminal-game-test/world"
)

// Surface receives the rendered frame one cell at a time.
type Surface interface {
	// Size returns current surface dimensions
	Size() (width, height int)

	// SetCell writes one character cell
	SetCell(x, y int, ch rune, band terminal.Band)
}

// Camera is the viewpoint for one frame: position and facing in
// map-cell units, tilt in screen rows.
type Camera struct {
	X, Y  float64
	Angle float64
	Tilt  int
}

// Renderer draws first-person frames from a fixed texture bank.
type Renderer struct {
	bank *texture.Bank
}

// NewRenderer creates a renderer drawing from bank.
func NewRenderer(bank *texture.Bank) *Renderer {
	return &Renderer{bank: bank}
}

// Frame casts one ray per screen column and paints that column top to
// bottom: ceiling ramp, textured wall slice, floor ramp. The last
// column is never written. Texture column and color bands are fixed
// per cast, so each column costs exactly one march.
func (r *Renderer) Frame(s Surface, cam Camera, g *world.Grid) {
	width, height := s.Size()
	if width <= 0 || height <= 0 {
		return
	}
	horizon := height / 2

	for col := 0; col < width-1; col++ {
		angle := cam.Angle - constants.FOV/2 + float64(col)/float64(width)*constants.FOV
		hit := raycast.Cast(cam.X, cam.Y, angle, g)

		wallH := int(float64(height) / (hit.Distance + constants.DistEpsilon))
		start := clamp(horizon-wallH/2-cam.Tilt, 0, height)
		end := clamp(horizon+wallH/2-cam.Tilt, 0, height)

		// Sample along the non-dominant axis so the texture runs along
		// the wall face instead of across it.
		frac := hit.X - math.Trunc(hit.X)
		if hit.VerticalFace {
			frac = hit.Y - math.Trunc(hit.Y)
		}
		tx := r.bank.Wall.Column(frac)

		for row := 0; row < start; row++ {
			dy := horizon - row + cam.Tilt
			s.SetCell(col, row, r.bank.Ceiling.Shade(height, dy), terminal.BandCeiling)
		}

		span := end - start
		if span < 1 {
			span = 1
		}
		for row := start; row < end; row++ {
			rel := float64(row-start) / float64(span)
			ty := r.bank.Wall.Row(rel)
			s.SetCell(col, row, r.bank.Wall.At(tx, ty), wallBand(ty, r.bank.Wall.Height()))
		}

		for row := end; row < height; row++ {
			dy := row - horizon + cam.Tilt
			s.SetCell(col, row, r.bank.Floor.Shade(height, dy), terminal.BandFloor)
		}
	}
}

// wallBand picks the color band by vertical third of the texture.
func wallBand(ty, texH int) terminal.Band {
	switch {
	case float64(ty) < float64(texH)*0.33:
		return terminal.BandWallTop
	case float64(ty) < float64(texH)*0.66:
		return terminal.BandWallMid
	default:
		return terminal.BandWallBottom
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
