package shape

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Cube is the axis-aligned cube spanning [-1, 1] in each local axis.
type Cube struct {
	baseShape
}

// NewCube constructs a cube with the default material.
func NewCube() *Cube {
	c := &Cube{}
	c.baseShape = newBaseShape(c)
	return c
}

func (c *Cube) LocalIntersect(r prim.Ray) []Intersection {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z)

	tmin := max3(xtmin, ytmin, ztmin)
	tmax := min3(xtmax, ytmax, ztmax)

	if tmin > tmax {
		return nil
	}

	return []Intersection{
		{T: tmin, Object: c},
		{T: tmax, Object: c},
	}
}

func (c *Cube) LocalNormal(p prim.Point) prim.Vector {
	absX, absY, absZ := abs32(p.X), abs32(p.Y), abs32(p.Z)
	maxc := max3(absX, absY, absZ)

	switch {
	case maxc == absX:
		return prim.Vector{X: p.X}
	case maxc == absY:
		return prim.Vector{Y: p.Y}
	default:
		return prim.Vector{Z: p.Z}
	}
}

func checkAxis(origin, direction float32) (tmin, tmax float32) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if abs32(direction) >= prim.EPSILON {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * float32(math.Inf(1))
		tmax = tmaxNumerator * float32(math.Inf(1))
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
