// Package canvas holds a rendered grid of colors and writes it out as a
// PPM, PNG, or BMP image file.
package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
	"golang.org/x/image/bmp"
)

// Canvas is a Width x Height grid of colors, row-major from the top-left.
type Canvas struct {
	Width, Height int
	pixels        []prim.Color
}

// New returns a black canvas of the given dimensions.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]prim.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0, fmt.Errorf("canvas: index out of bounds: (%d, %d), size (%d, %d)", x, y, c.Width, c.Height)
	}
	return y*c.Width + x, nil
}

// Write stores col at (x, y).
func (c *Canvas) Write(x, y int, col prim.Color) error {
	idx, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[idx] = col
	return nil
}

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) (prim.Color, error) {
	idx, err := c.index(x, y)
	if err != nil {
		return prim.Color{}, err
	}
	return c.pixels[idx], nil
}

// Image returns the canvas as a standard image.Image, for interop with
// code (including tests) that wants to compare or further process the
// render without going through Save.
func (c *Canvas) Image() image.Image {
	return c.toImage()
}

// DrawCircle fills a filled white circle of the given radius centered at
// (x, y), clamped to the canvas bounds.
func (c *Canvas) DrawCircle(x, y, radius int) {
	for i := x - radius; i <= x+radius; i++ {
		for j := y - radius; j <= y+radius; j++ {
			dx, dy := i-x, j-y
			if dx*dx+dy*dy <= radius*radius {
				_ = c.Write(i, j, prim.White)
			}
		}
	}
}

// Save writes the canvas to path, choosing the encoding from its
// extension (.ppm, .png, or .bmp).
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, c.toImage())
	case ".bmp":
		return bmp.Encode(f, c.toImage())
	case ".ppm", "":
		w := bufio.NewWriter(f)
		if err := c.writePPM(w); err != nil {
			return err
		}
		return w.Flush()
	default:
		return fmt.Errorf("canvas: unsupported output extension %q", filepath.Ext(path))
	}
}

func (c *Canvas) toImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.Set(x, y, c.pixels[y*c.Width+x])
		}
	}
	return img
}

func to255(channel float32) int {
	c := channel
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return int(c * 255)
}

// writePPM writes the canvas in plain PPM (P3) format, matching the
// classic 70-column line wrap.
func (c *Canvas) writePPM(w *bufio.Writer) error {
	fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height)

	charCount := 0
	for _, p := range c.pixels {
		s := fmt.Sprintf("%d %d %d ", to255(p.R), to255(p.G), to255(p.B))
		if _, err := w.WriteString(s); err != nil {
			return err
		}
		charCount += len(s)
		if charCount+12 > 70 {
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
			charCount = 0
		}
	}
	return w.WriteByte('\n')
}
