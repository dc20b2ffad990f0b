// Package vecmath provides the single-precision vector and quaternion
// primitives the simulation core is built on.
package vecmath

import "github.com/chewxy/math32"

// Epsilon is the single-precision machine epsilon used to guard
// normalization and rotation against division blow-up.
const Epsilon = 1.192093e-7

// Vec3 is a three-component single-precision vector.
type Vec3 struct {
	X, Y, Z float32
}

// Zero is the additive identity.
var Zero = Vec3{0, 0, 0}

// Up, Down, Right and Back are the world-axis unit vectors used throughout
// the frame and builder code (Back is -Z, matching the default track
// direction).
var (
	Up    = Vec3{0, 1, 0}
	Down  = Vec3{0, -1, 0}
	Right = Vec3{1, 0, 0}
	Back  = Vec3{0, 0, -1}
)

// NewVec3 builds a vector from components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns v x other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector in the direction of v, or the zero vector
// if v's magnitude falls below Epsilon.
func (v Vec3) Normalize() Vec3 {
	m := v.Magnitude()
	if m < Epsilon {
		return Zero
	}
	return v.Scale(1 / m)
}
