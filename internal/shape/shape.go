// Package shape implements the intersectable primitives a scene is built
// from, their world/local transform bookkeeping, and the hit-precomputation
// and refraction-stack machinery the shading integrator depends on.
package shape

import (
	"sync/atomic"

	"github.com/corrigan-holt/whitted-tracer/internal/material"
	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Shape is anything a ray can intersect and shade against.
type Shape interface {
	Intersect(r prim.Ray) []Intersection
	LocalIntersect(r prim.Ray) []Intersection
	WorldNormal(p prim.Point) prim.Vector
	LocalNormal(p prim.Point) prim.Vector
	Material() *material.Material
	Transform() prim.Matrix4
	InverseTransform() prim.Matrix4
	SetTransform(m prim.Matrix4)
	ID() uint64
}

// localShape is what a concrete shape must provide; baseShape dispatches
// to it through the self reference set at construction, since Go has no
// virtual methods.
type localShape interface {
	LocalIntersect(r prim.Ray) []Intersection
	LocalNormal(p prim.Point) prim.Vector
}

var idCounter uint64

// baseShape implements the shared bookkeeping (identity, transform,
// material, world/local dispatch) that every concrete shape embeds.
//
// Object identity uses a monotonic counter rather than a random UUID:
// all that the refraction stack needs is a stable, comparable identity
// per shape, and atomic counters are cheaper and require no extra
// dependency.
type baseShape struct {
	id               uint64
	transform        prim.Matrix4
	inverseTransform prim.Matrix4
	mat              material.Material
	self             localShape
}

func newBaseShape(self localShape) baseShape {
	return baseShape{
		id:               atomic.AddUint64(&idCounter, 1),
		transform:        prim.Identity4(),
		inverseTransform: prim.Identity4(),
		mat:              material.Default(),
		self:             self,
	}
}

func (b *baseShape) Intersect(r prim.Ray) []Intersection {
	localRay := r.Transform(b.inverseTransform)
	return b.self.LocalIntersect(localRay)
}

func (b *baseShape) WorldNormal(p prim.Point) prim.Vector {
	localPoint := b.inverseTransform.MulPoint(p)
	localNormal := b.self.LocalNormal(localPoint)
	worldNormal := b.inverseTransform.Transpose().MulVector(localNormal)
	return worldNormal.Normalize()
}

func (b *baseShape) Material() *material.Material { return &b.mat }

func (b *baseShape) Transform() prim.Matrix4 { return b.transform }

func (b *baseShape) InverseTransform() prim.Matrix4 { return b.inverseTransform }

func (b *baseShape) SetTransform(m prim.Matrix4) {
	b.transform = m
	b.inverseTransform = m.Inverse()
}

func (b *baseShape) ID() uint64 { return b.id }
