package shape

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Cylinder is a cylinder of radius 1 along the local y axis, optionally
// truncated to [Minimum, Maximum] and optionally capped.
type Cylinder struct {
	baseShape
	Minimum, Maximum float32
	Closed           bool
}

// NewCylinder constructs an untruncated, open cylinder.
func NewCylinder() *Cylinder {
	c := &Cylinder{
		Minimum: float32(math.Inf(-1)),
		Maximum: float32(math.Inf(1)),
	}
	c.baseShape = newBaseShape(c)
	return c
}

func (c *Cylinder) LocalIntersect(r prim.Ray) []Intersection {
	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z

	var result []Intersection
	if approxEqual32(a, 0) {
		c.intersectCaps(r, &result)
		return result
	}

	b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
	cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	y0 := r.Origin.Y + t0*r.Direction.Y
	if c.Minimum < y0 && y0 < c.Maximum {
		result = append(result, Intersection{T: t0, Object: c})
	}

	y1 := r.Origin.Y + t1*r.Direction.Y
	if c.Minimum < y1 && y1 < c.Maximum {
		result = append(result, Intersection{T: t1, Object: c})
	}

	c.intersectCaps(r, &result)
	return result
}

func (c *Cylinder) checkCap(r prim.Ray, t float32) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= 1+prim.EPSILON
}

func (c *Cylinder) intersectCaps(r prim.Ray, xs *[]Intersection) {
	if !c.Closed || approxEqual32(r.Direction.Y, 0) {
		return
	}

	t0 := (c.Minimum - r.Origin.Y) / r.Direction.Y
	if c.checkCap(r, t0) {
		*xs = append(*xs, Intersection{T: t0, Object: c})
	}

	t1 := (c.Maximum - r.Origin.Y) / r.Direction.Y
	if c.checkCap(r, t1) {
		*xs = append(*xs, Intersection{T: t1, Object: c})
	}
}

func (c *Cylinder) LocalNormal(p prim.Point) prim.Vector {
	distance := p.X*p.X + p.Z*p.Z

	if distance < 1 && p.Y >= c.Maximum-prim.EPSILON {
		return prim.Vector{Y: 1}
	}
	if distance < 1 && p.Y <= c.Minimum+prim.EPSILON {
		return prim.Vector{Y: -1}
	}
	return prim.Vector{X: p.X, Z: p.Z}
}

func approxEqual32(a, b float32) bool {
	return math.Abs(float64(a-b)) < prim.EPSILON
}
