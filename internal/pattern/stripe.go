package pattern

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Stripe alternates between two colors along the local x axis.
type Stripe struct {
	base
	Even, Odd prim.Color
}

// NewStripe constructs a Stripe pattern.
func NewStripe(even, odd prim.Color) *Stripe {
	return &Stripe{base: newBase(), Even: even, Odd: odd}
}

func (s *Stripe) ColorAt(p prim.Point) prim.Color {
	if int64(math.Floor(float64(p.X)))%2 == 0 {
		return s.Even
	}
	return s.Odd
}
