package prim

import "fmt"

// Ray is a half-line starting at Origin heading in Direction.
type Ray struct {
	Origin    Point
	Direction Vector
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v)", r.Origin, r.Direction)
}

// Position returns the point at distance t along the ray.
func (r Ray) Position(t float32) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray with m applied to its origin and direction.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{Origin: m.MulPoint(r.Origin), Direction: m.MulVector(r.Direction)}
}
