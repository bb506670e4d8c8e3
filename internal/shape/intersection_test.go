package shape

import (
	"testing"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

func TestHitWhenAllIntersectionsHavePositiveT(t *testing.T) {
	s := NewSphere()
	i1 := Intersection{T: 1, Object: s}
	i2 := Intersection{T: 2, Object: s}

	h, ok := Hit([]Intersection{i1, i2})
	if !ok || h != i1 {
		t.Fatalf("Hit() = %v, %v, want %v, true", h, ok, i1)
	}
}

func TestHitWhenSomeIntersectionsHaveNegativeT(t *testing.T) {
	s := NewSphere()
	i1 := Intersection{T: -1, Object: s}
	i2 := Intersection{T: 1, Object: s}

	h, ok := Hit([]Intersection{i2, i1})
	if !ok || h != i2 {
		t.Fatalf("Hit() = %v, %v, want %v, true", h, ok, i2)
	}
}

func TestHitWhenAllIntersectionsHaveNegativeT(t *testing.T) {
	s := NewSphere()
	i1 := Intersection{T: -2, Object: s}
	i2 := Intersection{T: -1, Object: s}

	_, ok := Hit([]Intersection{i1, i2})
	if ok {
		t.Fatalf("Hit() found a hit among all-negative intersections")
	}
}

func TestHitIsAlwaysLowestNonnegative(t *testing.T) {
	s := NewSphere()
	i1 := Intersection{T: 5, Object: s}
	i2 := Intersection{T: -7, Object: s}
	i3 := Intersection{T: -3, Object: s}
	i4 := Intersection{T: 2, Object: s}

	h, ok := Hit([]Intersection{i1, i2, i3, i4})
	if !ok || h != i4 {
		t.Fatalf("Hit() = %v, %v, want %v, true", h, ok, i4)
	}
}

func TestPrecomputeHitOutsideHit(t *testing.T) {
	r := prim.Ray{Origin: prim.NewPoint(0, 0, -5), Direction: prim.NewVector(0, 0, 1)}
	s := NewSphere()
	i := Intersection{T: 4, Object: s}

	comps := PrecomputeHit(i, r, []Intersection{i})
	if comps.Inside {
		t.Fatalf("expected hit to be outside the shape")
	}
	if !comps.Point.ApproxEqual(prim.NewPoint(0, 0, -1)) {
		t.Fatalf("Point = %v", comps.Point)
	}
	if !comps.Eye.ApproxEqual(prim.NewVector(0, 0, -1)) {
		t.Fatalf("Eye = %v", comps.Eye)
	}
	if !comps.Normal.ApproxEqual(prim.NewVector(0, 0, -1)) {
		t.Fatalf("Normal = %v", comps.Normal)
	}
}

func TestPrecomputeHitInsideHit(t *testing.T) {
	r := prim.Ray{Origin: prim.NewPoint(0, 0, 0), Direction: prim.NewVector(0, 0, 1)}
	s := NewSphere()
	i := Intersection{T: 1, Object: s}

	comps := PrecomputeHit(i, r, []Intersection{i})
	if !comps.Inside {
		t.Fatalf("expected hit to be inside the shape")
	}
	if !comps.Point.ApproxEqual(prim.NewPoint(0, 0, 1)) {
		t.Fatalf("Point = %v", comps.Point)
	}
	if !comps.Eye.ApproxEqual(prim.NewVector(0, 0, -1)) {
		t.Fatalf("Eye = %v", comps.Eye)
	}
	if !comps.Normal.ApproxEqual(prim.NewVector(0, 0, -1)) {
		t.Fatalf("Normal = %v, inside flips the surface normal", comps.Normal)
	}
}

func TestPrecomputeHitOffsetsThePoint(t *testing.T) {
	r := prim.Ray{Origin: prim.NewPoint(0, 0, -5), Direction: prim.NewVector(0, 0, 1)}
	s := NewSphere()
	s.SetTransform(prim.Identity4().Translate(prim.NewVector(0, 0, 1)))
	i := Intersection{T: 5, Object: s}

	comps := PrecomputeHit(i, r, []Intersection{i})
	if comps.OverPoint.Z >= -prim.EPSILON/2 {
		t.Fatalf("OverPoint.Z = %v, want < -EPSILON/2", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Fatalf("OverPoint should be in front of Point along the normal")
	}
}

func TestPrecomputeHitReflectedVector(t *testing.T) {
	p := NewPlane()
	r := prim.Ray{
		Origin:    prim.NewPoint(0, 1, -1),
		Direction: prim.NewVector(0, -float32(0.7071067811865476), float32(0.7071067811865476)),
	}
	i := Intersection{T: float32(1.4142135623730951), Object: p}

	comps := PrecomputeHit(i, r, []Intersection{i})
	want := prim.NewVector(0, float32(0.7071067811865476), float32(0.7071067811865476))
	if !comps.ReflectedVector.ApproxEqual(want) {
		t.Fatalf("ReflectedVector = %v, want %v", comps.ReflectedVector, want)
	}
}

func TestRefractiveIndicesAtVariousIntersections(t *testing.T) {
	a := NewGlassSphere()
	a.SetTransform(prim.Identity4().Scale(prim.NewVector(2, 2, 2)))
	a.Material().RefractiveIndex = 1.5

	b := NewGlassSphere()
	b.SetTransform(prim.Identity4().Translate(prim.NewVector(0, 0, -0.25)))
	b.Material().RefractiveIndex = 2.0

	c := NewGlassSphere()
	c.SetTransform(prim.Identity4().Translate(prim.NewVector(0, 0, 0.25)))
	c.Material().RefractiveIndex = 2.5

	r := prim.Ray{Origin: prim.NewPoint(0, 0, -4), Direction: prim.NewVector(0, 0, 1)}
	xs := []Intersection{
		{T: 2, Object: a},
		{T: 2.75, Object: b},
		{T: 3.25, Object: c},
		{T: 4.75, Object: b},
		{T: 5.25, Object: c},
		{T: 6, Object: a},
	}

	wantN1 := []float32{1.0, 1.5, 2.0, 2.5, 2.5, 1.5}
	wantN2 := []float32{1.5, 2.0, 2.5, 2.5, 1.5, 1.0}

	for idx, x := range xs {
		comps := PrecomputeHit(x, r, xs)
		if comps.N1 != wantN1[idx] || comps.N2 != wantN2[idx] {
			t.Errorf("xs[%d]: N1=%v N2=%v, want N1=%v N2=%v", idx, comps.N1, comps.N2, wantN1[idx], wantN2[idx])
		}
	}
}

func TestPrecomputeHitUnderPointIsBelowSurface(t *testing.T) {
	r := prim.Ray{Origin: prim.NewPoint(0, 0, -5), Direction: prim.NewVector(0, 0, 1)}
	s := NewGlassSphere()
	s.SetTransform(prim.Identity4().Translate(prim.NewVector(0, 0, 1)))
	i := Intersection{T: 5, Object: s}

	comps := PrecomputeHit(i, r, []Intersection{i})
	if comps.UnderPoint.Z <= prim.EPSILON/2 {
		t.Fatalf("UnderPoint.Z = %v, want > EPSILON/2", comps.UnderPoint.Z)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Fatalf("UnderPoint should be behind Point along the normal")
	}
}

func TestSchlickUnderTotalInternalReflection(t *testing.T) {
	s := NewGlassSphere()
	r := prim.Ray{Origin: prim.NewPoint(0, 0, float32(0.7071067811865476)), Direction: prim.NewVector(0, 1, 0)}
	xs := []Intersection{
		{T: -float32(0.7071067811865476), Object: s},
		{T: float32(0.7071067811865476), Object: s},
	}

	comps := PrecomputeHit(xs[1], r, xs)
	if got := comps.SchlickReflectance(); got != 1.0 {
		t.Fatalf("SchlickReflectance() = %v, want 1.0", got)
	}
}

func TestSchlickWithPerpendicularAngle(t *testing.T) {
	s := NewGlassSphere()
	r := prim.Ray{Origin: prim.NewPoint(0, 0, 0), Direction: prim.NewVector(0, 1, 0)}
	xs := []Intersection{
		{T: -1, Object: s},
		{T: 1, Object: s},
	}

	comps := PrecomputeHit(xs[1], r, xs)
	got := comps.SchlickReflectance()
	if approxFloat(got, 0.04) > 1e-4 {
		t.Fatalf("SchlickReflectance() = %v, want ~0.04", got)
	}
}

func TestSchlickWithSmallAngleAndN2GreaterThanN1(t *testing.T) {
	s := NewGlassSphere()
	r := prim.Ray{Origin: prim.NewPoint(0, 0.99, -2), Direction: prim.NewVector(0, 0, 1)}
	xs := []Intersection{
		{T: 1.8589, Object: s},
	}

	comps := PrecomputeHit(xs[0], r, xs)
	got := comps.SchlickReflectance()
	if approxFloat(got, 0.48873067) > 1e-3 {
		t.Fatalf("SchlickReflectance() = %v, want ~0.48873067", got)
	}
}

func approxFloat(a, b float32) float32 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
