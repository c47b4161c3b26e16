package main

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/xj9zitto/terminal-game-test/texture"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestConvertRampEndpoints(t *testing.T) {
	tests := []struct {
		name string
		fill color.RGBA
		want byte
	}{
		{"black maps to darkest glyph", color.RGBA{0, 0, 0, 255}, '.'},
		{"bright gray maps near the top", color.RGBA{250, 250, 250, 255}, '%'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Convert(solidImage(8, 8, tt.fill), Options{Size: 8})
			if len(lines) != 8 {
				t.Fatalf("Expected 8 lines, got %d", len(lines))
			}
			for i, line := range lines {
				if line != strings.Repeat(string(tt.want), 8) {
					t.Errorf("Expected line %d to be all %q, got %q", i, tt.want, line)
				}
			}
		})
	}
}

func TestConvertLuminanceWeights(t *testing.T) {
	// Rec. 709 weighting: green dominates, blue barely registers
	tests := []struct {
		name string
		fill color.RGBA
		want byte
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, ':'},
		{"pure green", color.RGBA{0, 255, 0, 255}, '*'},
		{"pure blue", color.RGBA{0, 0, 255, 255}, '.'},
		{"mid gray", color.RGBA{100, 100, 100, 255}, '='},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Convert(solidImage(4, 4, tt.fill), Options{Size: 4})
			if lines[0][0] != tt.want {
				t.Errorf("Expected glyph to be %q, got %q", tt.want, lines[0][0])
			}
		})
	}
}

func TestConvertInvert(t *testing.T) {
	lines := Convert(solidImage(4, 4, color.RGBA{255, 255, 255, 255}), Options{Size: 4, Invert: true})
	if lines[0][0] != '.' {
		t.Errorf("Expected inverted white to map to %q, got %q", '.', lines[0][0])
	}

	lines = Convert(solidImage(4, 4, color.RGBA{0, 0, 0, 255}), Options{Size: 4, Invert: true})
	if lines[0][0] != '@' {
		t.Errorf("Expected inverted black to map to %q, got %q", '@', lines[0][0])
	}
}

func TestConvertResizes(t *testing.T) {
	lines := Convert(solidImage(100, 40, color.RGBA{128, 128, 128, 255}), Options{Size: 16})
	if len(lines) != 16 {
		t.Fatalf("Expected 16 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) != 16 {
			t.Errorf("Expected line %d to have 16 glyphs, got %d", i, len(line))
		}
	}
}

func TestConvertColorWrapsEachGlyph(t *testing.T) {
	lines := Convert(solidImage(4, 4, color.RGBA{200, 30, 60, 255}), Options{Size: 4, Color: true})

	cell := "\x1b[38;2;200;30;60m-\x1b[0m"
	want := strings.Repeat(cell, 4)
	if lines[0] != want {
		t.Errorf("Expected color line to be %q, got %q", want, lines[0])
	}

	plain := Convert(solidImage(4, 4, color.RGBA{200, 30, 60, 255}), Options{Size: 4})
	if strings.ContainsRune(plain[0], '\x1b') {
		t.Error("Expected plain output to carry no escape sequences")
	}
}

func TestConvertOutputParsesAsTexture(t *testing.T) {
	lines := Convert(solidImage(10, 10, color.RGBA{90, 90, 90, 255}), Options{Size: 6})

	tex, err := texture.Parse(lines)
	if err != nil {
		t.Fatalf("Expected converter output to parse as a texture, got %v", err)
	}
	if tex.Width() != 6 || tex.Height() != 6 {
		t.Errorf("Expected a 6x6 texture, got %dx%d", tex.Width(), tex.Height())
	}
}
