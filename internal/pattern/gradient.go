package pattern

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// LinearGradient interpolates linearly between two colors along the
// local x axis: from Start to End across each even unit, and back from
// End to Start across each odd unit, so the pattern repeats every two
// units.
type LinearGradient struct {
	base
	Start, End prim.Color
	distance   prim.Color
}

// NewLinearGradient constructs a LinearGradient pattern.
func NewLinearGradient(start, end prim.Color) *LinearGradient {
	return &LinearGradient{
		base:     newBase(),
		Start:    start,
		End:      end,
		distance: end.Sub(start),
	}
}

func (g *LinearGradient) ColorAt(p prim.Point) prim.Color {
	floorX := float32(math.Floor(float64(p.X)))
	fraction := p.X - floorX
	if int64(floorX)%2 == 0 {
		return g.Start.Add(g.distance.Scale(fraction))
	}
	return g.End.Sub(g.distance.Scale(fraction))
}
