package pattern

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Checkers alternates between two colors in a 3D checkerboard.
type Checkers struct {
	base
	Even, Odd prim.Color
}

// NewCheckers constructs a Checkers pattern.
func NewCheckers(even, odd prim.Color) *Checkers {
	return &Checkers{base: newBase(), Even: even, Odd: odd}
}

func (c *Checkers) ColorAt(p prim.Point) prim.Color {
	sum := math.Floor(float64(p.X)) + math.Floor(float64(p.Y)) + math.Floor(float64(p.Z))
	if int64(sum)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
