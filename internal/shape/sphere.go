package shape

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Sphere is a unit sphere centered at the local origin.
type Sphere struct {
	baseShape
}

// NewSphere constructs a unit sphere with the default material.
func NewSphere() *Sphere {
	s := &Sphere{}
	s.baseShape = newBaseShape(s)
	return s
}

// NewGlassSphere constructs a unit sphere with a transparent, refractive
// default material, handy for building dielectric test scenes.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.mat.Transparency = 1.0
	s.mat.RefractiveIndex = 1.5
	return s
}

func (s *Sphere) LocalIntersect(r prim.Ray) []Intersection {
	sphereToRay := r.Origin.Sub(prim.Point{})
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

func (s *Sphere) LocalNormal(p prim.Point) prim.Vector {
	return p.Sub(prim.Point{})
}
