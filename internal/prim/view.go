package prim

// ViewTransform builds the world-to-camera matrix for an eye positioned at
// from, looking toward to, with the given up direction.
func ViewTransform(from, to Point, up Vector) Matrix4 {
	forward := to.Sub(from).Normalize()
	upNormalized := up.Normalize()
	left := forward.Cross(upNormalized)
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return orientation.Mul(Identity4().Translate(Vector{X: -from.X, Y: -from.Y, Z: -from.Z}))
}
