package main

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// asciiRamp orders glyphs dark to bright. Each glyph becomes one texel
// in the written texture file.
const asciiRamp = ".:-=+*#%@"

const sgrReset = "\x1b[0m"

// Options select the output texture's size and encoding.
type Options struct {
	// Size is the output edge length; textures are always square.
	Size int
	// Invert flips the brightness mapping (dark becomes bright).
	Invert bool
	// Color wraps every glyph in an ANSI 24-bit foreground sequence.
	// Such files are for direct terminal display; the game's texture
	// loader rejects them.
	Color bool
}

// Convert resamples the image to Size×Size and maps each pixel's
// Rec. 709 luminance onto the ramp, one output line per texture row.
func Convert(img image.Image, opts Options) []string {
	scaled := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	lines := make([]string, 0, opts.Size)
	for y := 0; y < opts.Size; y++ {
		var row strings.Builder
		for x := 0; x < opts.Size; x++ {
			c := scaled.RGBAAt(x, y)
			lum := int(0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B))
			if opts.Invert {
				lum = 255 - lum
			}

			idx := lum * (len(asciiRamp) - 1) / 255
			if idx < 0 {
				idx = 0
			}
			if idx >= len(asciiRamp) {
				idx = len(asciiRamp) - 1
			}

			if opts.Color {
				fmt.Fprintf(&row, "\x1b[38;2;%d;%d;%dm%c%s", c.R, c.G, c.B, asciiRamp[idx], sgrReset)
			} else {
				row.WriteByte(asciiRamp[idx])
			}
		}
		lines = append(lines, row.String())
	}
	return lines
}
