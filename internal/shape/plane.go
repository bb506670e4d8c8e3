package shape

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Plane is the xz plane through the local origin.
type Plane struct {
	baseShape
}

// NewPlane constructs an xz plane with the default material.
func NewPlane() *Plane {
	p := &Plane{}
	p.baseShape = newBaseShape(p)
	return p
}

func (p *Plane) LocalIntersect(r prim.Ray) []Intersection {
	if math.Abs(float64(r.Direction.Y)) < prim.EPSILON {
		return nil
	}
	t := -r.Origin.Y / r.Direction.Y
	return []Intersection{{T: t, Object: p}}
}

func (p *Plane) LocalNormal(_ prim.Point) prim.Vector {
	return prim.Vector{Y: 1}
}
