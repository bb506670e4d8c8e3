// Package pattern implements procedural surface colorings: stripes,
// rings, checkers, and linear gradients, each carrying their own
// transform independent of the object they decorate.
package pattern

import "github.com/corrigan-holt/whitted-tracer/internal/prim"

// Shaped is the minimal view of a shape a pattern needs to resolve a
// world-space point into object space. internal/shape's Shape interface
// satisfies this structurally, without pattern importing internal/shape.
type Shaped interface {
	InverseTransform() prim.Matrix4
}

// Pattern computes a color as a function of position.
type Pattern interface {
	ColorAt(p prim.Point) prim.Color
	Transform() prim.Matrix4
	SetTransform(m prim.Matrix4)
	InverseTransform() prim.Matrix4
}

// ColorForObject resolves the color a pattern contributes at a
// world-space point on the given object, accounting for both the
// object's transform and the pattern's own transform.
func ColorForObject(pat Pattern, object Shaped, worldPoint prim.Point) prim.Color {
	objectPoint := object.InverseTransform().MulPoint(worldPoint)
	patternPoint := pat.InverseTransform().MulPoint(objectPoint)
	return pat.ColorAt(patternPoint)
}

// base holds the transform bookkeeping shared by every concrete pattern.
type base struct {
	transform        prim.Matrix4
	inverseTransform prim.Matrix4
}

func newBase() base {
	return base{transform: prim.Identity4(), inverseTransform: prim.Identity4()}
}

func (b *base) Transform() prim.Matrix4 {
	return b.transform
}

func (b *base) InverseTransform() prim.Matrix4 {
	return b.inverseTransform
}

func (b *base) SetTransform(m prim.Matrix4) {
	b.transform = m
	b.inverseTransform = m.Inverse()
}
