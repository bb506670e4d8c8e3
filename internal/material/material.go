// Package material holds the Phong shading coefficients and optional
// procedural pattern attached to a shape's surface.
package material

import (
	"github.com/corrigan-holt/whitted-tracer/internal/pattern"
	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// Material describes how a surface responds to light.
type Material struct {
	Color     prim.Color
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32

	// Reflective is 0 for a fully diffuse surface and 1 for a perfect
	// mirror.
	Reflective float32

	// Transparency is 0 for opaque and 1 for fully transparent.
	Transparency float32

	// RefractiveIndex is meaningless when Transparency is 0.
	RefractiveIndex float32

	// Pattern, when set, overrides Color for lighting purposes.
	Pattern pattern.Pattern
}

// Default returns the material every new shape starts with.
func Default() Material {
	return Material{
		Color:           prim.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		RefractiveIndex: 1.0,
	}
}
