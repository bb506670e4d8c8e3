package shape

import (
	"math"
	"sort"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Intersection records where along a ray (T) it crossed Object.
type Intersection struct {
	T      float32
	Object Shape
}

// SortIntersections orders xs by increasing T, in place.
func SortIntersections(xs []Intersection) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visible intersection: the smallest non-negative T.
// xs need not be pre-sorted.
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// PrecomputedHit bundles the geometric quantities the shading integrator
// needs at a hit point: surface frame, shadow/refraction offset points,
// the reflection direction, and the refractive indices on either side of
// the surface.
type PrecomputedHit struct {
	Intersection    Intersection
	Point           prim.Point
	Eye             prim.Vector
	Normal          prim.Vector
	Inside          bool
	OverPoint       prim.Point
	UnderPoint      prim.Point
	ReflectedVector prim.Vector
	N1, N2          float32
}

// PrecomputeHit resolves i against ray r into the quantities shading
// needs. xs is every intersection produced along r, sorted by increasing
// T (as SortIntersections leaves it); it is walked in that order to build
// the refraction-index stack described by the containing objects at this
// point of the ray.
func PrecomputeHit(i Intersection, r prim.Ray, xs []Intersection) PrecomputedHit {
	point := r.Position(i.T)
	eye := r.Direction.Neg()
	normal := i.Object.WorldNormal(point)
	inside := false
	if normal.Dot(eye) < 0 {
		normal = normal.Neg()
		inside = true
	}

	overPoint := point.Add(normal.Scale(prim.EPSILON))
	underPoint := point.SubVector(normal.Scale(prim.EPSILON))
	reflected := r.Direction.Reflect(normal)
	n1, n2 := refractiveIndices(i, xs)

	return PrecomputedHit{
		Intersection:    i,
		Point:           point,
		Eye:             eye,
		Normal:          normal,
		Inside:          inside,
		OverPoint:       overPoint,
		UnderPoint:      underPoint,
		ReflectedVector: reflected,
		N1:              n1,
		N2:              n2,
	}
}

// refractiveIndices walks xs tracking which transparent objects the ray
// is currently "inside" (by a containers stack, pushed/popped by object
// identity) to find the refractive index the ray is leaving (n1) and
// entering (n2) at intersection i.
func refractiveIndices(i Intersection, xs []Intersection) (n1, n2 float32) {
	var containers []Shape

	for _, x := range xs {
		isSelf := x.T == i.T && x.Object.ID() == i.Object.ID()

		if isSelf {
			if len(containers) == 0 {
				n1 = 1
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOfShape(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isSelf {
			if len(containers) == 0 {
				n2 = 1
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

func indexOfShape(containers []Shape, s Shape) int {
	for idx, c := range containers {
		if c.ID() == s.ID() {
			return idx
		}
	}
	return -1
}

// SchlickReflectance approximates the Fresnel reflectance at this hit
// using Schlick's formula.
func (p PrecomputedHit) SchlickReflectance() float32 {
	cos := p.Eye.Dot(p.Normal)

	if p.N1 > p.N2 {
		n := p.N1 / p.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = float32(math.Sqrt(float64(1 - sin2t)))
	}

	r0 := (p.N1 - p.N2) / (p.N1 + p.N2)
	r0 *= r0
	return r0 + (1-r0)*float32(math.Pow(float64(1-cos), 5))
}
