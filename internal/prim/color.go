package prim

import (
	"fmt"
	"math"
)

// Color is a normalized RGB color; components are not clamped to [0, 1]
// until ClampI is called, since intermediate shading math can overshoot.
type Color struct {
	R, G, B float32
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%.5f, %.5f, %.5f)", c.R, c.G, c.B)
}

// RGB is a convenience function to construct a Color from normalized
// RGB values [0.0, 1.0].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// Add returns the sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// AddI is an in-place version of Add.
func (c *Color) AddI(other Color) *Color {
	c.R += other.R
	c.G += other.G
	c.B += other.B
	return c
}

// Sub returns the difference of two colors.
func (c Color) Sub(other Color) Color {
	return Color{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Mul multiplies two colors componentwise (the Hadamard product used for
// light/surface interaction).
func (c Color) Mul(other Color) Color {
	return Color{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B}
}

// Scale multiplies c by a scalar.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// ApproxEqual reports whether c and other are equal within EPSILON.
func (c Color) ApproxEqual(other Color) bool {
	return approxEqual(c.R, other.R) && approxEqual(c.G, other.G) && approxEqual(c.B, other.B)
}

// RGBA implements the image/color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	const max = 0xffff
	return uint32(clamp(0, 1, c.R) * max), uint32(clamp(0, 1, c.G) * max), uint32(clamp(0, 1, c.B) * max), max
}

// ClampI clamps the R, G, and B values between 0 and 1, in place.
func (c *Color) ClampI() *Color {
	c.R = clamp(0, 1, c.R)
	c.G = clamp(0, 1, c.G)
	c.B = clamp(0, 1, c.B)
	return c
}

// clamp limits x between min and max.
func clamp(min, max, x float32) float32 {
	return float32(math.Min(math.Max(float64(x), float64(min)), float64(max)))
}
