package prim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-4, 0.0)

func TestVectorMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float32
	}{
		{"unit x", Vector{1, 0, 0}, 1},
		{"unit y", Vector{0, 1, 0}, 1},
		{"unit z", Vector{0, 0, 1}, 1},
		{"mixed", Vector{1, 2, 3}, float32(math.Sqrt(14))},
		{"negated mixed", Vector{-1, -2, -3}, float32(math.Sqrt(14))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Magnitude()
			if diff := cmp.Diff(float64(got), float64(tt.want), approxOpts); diff != "" {
				t.Errorf("Magnitude() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestVectorNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Vector
	}{
		{"axis-aligned", Vector{4, 0, 0}, Vector{1, 0, 0}},
		{"mixed", Vector{1, 2, 3}, Vector{
			float32(1.0 / math.Sqrt(14)),
			float32(2.0 / math.Sqrt(14)),
			float32(3.0 / math.Sqrt(14)),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !got.ApproxEqual(tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizedVectorHasUnitMagnitude(t *testing.T) {
	got := Vector{1, 2, 3}.Normalize().Magnitude()
	if diff := cmp.Diff(float64(got), 1.0, approxOpts); diff != "" {
		t.Errorf("Magnitude() mismatch (-got +want):\n%s", diff)
	}
}

func TestVectorDotProduct(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{2, 3, 4}
	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot() = %v, want 20", got)
	}
}

func TestVectorCrossProduct(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{2, 3, 4}
	if got := a.Cross(b); got != (Vector{-1, 2, -1}) {
		t.Errorf("a.Cross(b) = %v, want (-1, 2, -1)", got)
	}
	if got := b.Cross(a); got != (Vector{1, -2, 1}) {
		t.Errorf("b.Cross(a) = %v, want (1, -2, 1)", got)
	}
}

func TestSubtractingPoints(t *testing.T) {
	p1 := Point{3, 2, 1}
	p2 := Point{5, 6, 7}
	if got := p1.Sub(p2); got != (Vector{-2, -4, -6}) {
		t.Errorf("p1.Sub(p2) = %v, want (-2, -4, -6)", got)
	}
}

func TestSubtractingVectorFromPoint(t *testing.T) {
	p := Point{3, 2, 1}
	v := Vector{5, 6, 7}
	if got := p.SubVector(v); got != (Point{-2, -4, -6}) {
		t.Errorf("p.SubVector(v) = %v, want (-2, -4, -6)", got)
	}
}

func TestReflectVectorAt45Degrees(t *testing.T) {
	v := Vector{1, -1, 0}
	n := Vector{0, 1, 0}
	got := v.Reflect(n)
	if !got.ApproxEqual(Vector{1, 1, 0}) {
		t.Errorf("Reflect() = %v, want (1, 1, 0)", got)
	}
}

func TestReflectVectorOffSlantedSurface(t *testing.T) {
	v := Vector{0, -1, 0}
	sqrt2over2 := float32(math.Sqrt2 / 2)
	n := Vector{sqrt2over2, sqrt2over2, 0}
	got := v.Reflect(n)
	if !got.ApproxEqual(Vector{1, 0, 0}) {
		t.Errorf("Reflect() = %v, want (1, 0, 0)", got)
	}
}
