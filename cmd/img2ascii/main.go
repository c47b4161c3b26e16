// Usage examples:
//
// # Convert a photo into a wall texture for the game
// ./img2ascii -i brick.png -o wall.txt
//
// # Preview in the terminal with truecolor
// ./img2ascii -i brick.png -o - -color
//
// # Higher resolution, inverted for light-on-dark source art
// ./img2ascii -i sketch.jpg -o wall.txt -size 64 -invert

package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
)

func main() {
	var (
		input    string
		output   string
		size     int
		invert   bool
		colorize bool
	)

	flag.StringVar(&input, "i", "", "Input image path")
	flag.StringVar(&output, "o", "", "Output text file (use '-' for stdout)")
	flag.IntVar(&size, "size", 32, "Output texture size (NxN)")
	flag.BoolVar(&invert, "invert", false, "Invert brightness mapping (dark<->light)")
	flag.BoolVar(&colorize, "color", false, "Wrap glyphs in ANSI truecolor sequences")
	flag.Parse()

	if input == "" || output == "" {
		fmt.Fprintln(os.Stderr, "Usage: img2ascii -i input.png -o wall.txt [options]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if size <= 0 {
		fmt.Fprintf(os.Stderr, "Texture size must be positive, got %d\n", size)
		os.Exit(1)
	}

	img, err := loadImage(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Fprintf(os.Stderr, "Image: %s (%dx%d)\n", input, bounds.Dx(), bounds.Dy())

	lines := Convert(img, Options{Size: size, Invert: invert, Color: colorize})
	text := strings.Join(lines, "\n") + "\n"

	if output == "-" {
		fmt.Print(text)
	} else {
		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (size=%d, color=%v, invert=%v)\n", output, size, colorize, invert)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
