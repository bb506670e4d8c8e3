// Package tracer implements the Whitted-style recursive integrator (World)
// and the pinhole camera that drives it (Camera).
package tracer

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/light"
	"github.com/corrigan-holt/whitted-tracer/internal/prim"
	"github.com/corrigan-holt/whitted-tracer/internal/shape"
)

// MaxReflectionDepth bounds the reflection/refraction recursion of
// World.ColorAt.
const MaxReflectionDepth = 5

// World is the scene: one light source and the objects it illuminates.
type World struct {
	Light   light.PointLight
	Objects []shape.Shape
}

func (w *World) intersectWorld(r prim.Ray) []shape.Intersection {
	var xs []shape.Intersection
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(r)...)
	}
	shape.SortIntersections(xs)
	return xs
}

func (w *World) shadeHit(comps shape.PrecomputedHit, remaining int) prim.Color {
	shadowed := w.IsShadowed(comps.OverPoint)

	mat := comps.Intersection.Object.Material()
	surface := w.Light.CalculateLighting(mat, comps.Intersection.Object, comps.OverPoint, comps.Eye, comps.Normal, shadowed)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := comps.SchlickReflectance()
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// ColorAt traces r through the world, recursing up to remaining times for
// reflection/refraction, and returns the resolved color.
func (w *World) ColorAt(r prim.Ray, remaining int) prim.Color {
	xs := w.intersectWorld(r)

	hit, ok := shape.Hit(xs)
	if !ok {
		return prim.Black
	}

	comps := shape.PrecomputeHit(hit, r, xs)
	return w.shadeHit(comps, remaining)
}

// IsShadowed reports whether p is shadowed from the world's light by any
// object.
func (w *World) IsShadowed(p prim.Point) bool {
	v := w.Light.Position.Sub(p)
	distance := v.Magnitude()
	direction := v.Normalize()

	r := prim.Ray{Origin: p, Direction: direction}
	xs := w.intersectWorld(r)

	hit, ok := shape.Hit(xs)
	return ok && hit.T < distance
}

// ReflectedColor computes the contribution of the mirror-reflected ray at
// comps, or black if the surface isn't reflective or the budget is spent.
func (w *World) ReflectedColor(comps shape.PrecomputedHit, remaining int) prim.Color {
	if remaining <= 0 {
		return prim.Black
	}

	reflective := comps.Intersection.Object.Material().Reflective
	if reflective == 0 {
		return prim.Black
	}

	reflectedRay := prim.Ray{Origin: comps.OverPoint, Direction: comps.ReflectedVector}
	color := w.ColorAt(reflectedRay, remaining-1)
	return color.Scale(reflective)
}

// RefractedColor computes the contribution of the refracted ray at comps,
// or black if the surface is opaque, the budget is spent, or the ray
// undergoes total internal reflection.
func (w *World) RefractedColor(comps shape.PrecomputedHit, remaining int) prim.Color {
	if remaining <= 0 {
		return prim.Black
	}

	transparency := comps.Intersection.Object.Material().Transparency
	if transparency == 0 {
		return prim.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return prim.Black
	}

	cosT := float32(math.Sqrt(float64(1 - sin2T)))
	direction := comps.Normal.Scale(nRatio*cosI - cosT).Sub(comps.Eye.Scale(nRatio))

	refractedRay := prim.Ray{Origin: comps.UnderPoint, Direction: direction}
	color := w.ColorAt(refractedRay, remaining-1)
	return color.Scale(transparency)
}
