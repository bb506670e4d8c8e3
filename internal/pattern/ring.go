package pattern

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Ring alternates between two colors in concentric rings around the
// local y axis.
type Ring struct {
	base
	Even, Odd prim.Color
}

// NewRing constructs a Ring pattern.
func NewRing(even, odd prim.Color) *Ring {
	return &Ring{base: newBase(), Even: even, Odd: odd}
}

func (r *Ring) ColorAt(p prim.Point) prim.Color {
	distance := math.Hypot(float64(p.X), float64(p.Z))
	if int64(math.Floor(distance))%2 == 0 {
		return r.Even
	}
	return r.Odd
}
