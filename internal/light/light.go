// Package light implements the Phong reflection model used to shade a
// hit point against a single point light source.
package light

import (
	"math"

	"github.com/corrigan-holt/whitted-tracer/internal/material"
	"github.com/corrigan-holt/whitted-tracer/internal/pattern"
	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// PointLight is a single, non-attenuating point source.
type PointLight struct {
	Position  prim.Point
	Intensity prim.Color
}

// CalculateLighting applies the Phong model at point on object, given
// the eye and surface normal vectors and whether point lies in shadow
// of this light. When mat.Pattern is set it overrides mat.Color,
// resolved in object space per-pixel.
func (l PointLight) CalculateLighting(mat *material.Material, object pattern.Shaped, point prim.Point, eyeVector, normalVector prim.Vector, inShadow bool) prim.Color {
	color := mat.Color
	if mat.Pattern != nil {
		color = pattern.ColorForObject(mat.Pattern, object, point)
	}

	effectiveColor := color.Mul(l.Intensity)
	ambient := effectiveColor.Scale(mat.Ambient)

	if inShadow {
		return ambient
	}

	lightVector := l.Position.Sub(point).Normalize()
	lightDotNormal := lightVector.Dot(normalVector)

	diffuse := prim.Black
	specular := prim.Black

	if lightDotNormal >= 0 {
		diffuse = effectiveColor.Scale(mat.Diffuse * lightDotNormal)

		reflectVector := lightVector.Neg().Reflect(normalVector)
		reflectDotEye := reflectVector.Dot(eyeVector)

		if reflectDotEye >= 0 {
			factor := float32(math.Pow(float64(reflectDotEye), float64(mat.Shininess)))
			specular = l.Intensity.Scale(mat.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
