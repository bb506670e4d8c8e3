package shape

import (
	"testing"

	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

func TestPlaneNormalIsConstantEverywhere(t *testing.T) {
	p := NewPlane()
	want := prim.NewVector(0, 1, 0)

	for _, pt := range []prim.Point{
		prim.NewPoint(0, 0, 0),
		prim.NewPoint(10, 0, -10),
		prim.NewPoint(-5, 0, 150),
	} {
		if got := p.LocalNormal(pt); !got.ApproxEqual(want) {
			t.Errorf("LocalNormal(%v) = %v, want %v", pt, got, want)
		}
	}
}

func TestPlaneIntersectWithParallelRay(t *testing.T) {
	p := NewPlane()
	r := prim.Ray{Origin: prim.NewPoint(0, 10, 0), Direction: prim.NewVector(0, 0, 1)}

	if xs := p.LocalIntersect(r); xs != nil {
		t.Fatalf("LocalIntersect() = %v, want nil", xs)
	}
}

func TestPlaneIntersectWithCoplanarRay(t *testing.T) {
	p := NewPlane()
	r := prim.Ray{Origin: prim.NewPoint(0, 0, 0), Direction: prim.NewVector(0, 0, 1)}

	if xs := p.LocalIntersect(r); xs != nil {
		t.Fatalf("LocalIntersect() = %v, want nil", xs)
	}
}

func TestPlaneIntersectFromAbove(t *testing.T) {
	p := NewPlane()
	r := prim.Ray{Origin: prim.NewPoint(0, 1, 0), Direction: prim.NewVector(0, -1, 0)}

	xs := p.LocalIntersect(r)
	if len(xs) != 1 || xs[0].T != 1 || xs[0].Object != Shape(p) {
		t.Fatalf("LocalIntersect() = %v, want [{1 p}]", xs)
	}
}

func TestPlaneIntersectFromBelow(t *testing.T) {
	p := NewPlane()
	r := prim.Ray{Origin: prim.NewPoint(0, -1, 0), Direction: prim.NewVector(0, 1, 0)}

	xs := p.LocalIntersect(r)
	if len(xs) != 1 || xs[0].T != 1 {
		t.Fatalf("LocalIntersect() = %v, want [{1 p}]", xs)
	}
}
