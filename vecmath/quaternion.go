package vecmath

import "github.com/chewxy/math32"

// Quaternion is a unit quaternion (x, y, z, w) under the Hamilton
// convention.
type Quaternion struct {
	X, Y, Z, W float32
}

// Identity is the no-rotation quaternion.
var Identity = Quaternion{0, 0, 0, 1}

// FromAxisAngle builds a unit quaternion rotating by angle radians about
// axis. The axis is normalized first; a degenerate (near-zero) axis yields
// Identity.
func FromAxisAngle(axis Vec3, angle float32) Quaternion {
	a := axis.Normalize()
	if a == Zero {
		return Identity
	}
	half := angle * 0.5
	s := math32.Sin(half)
	return Quaternion{a.X * s, a.Y * s, a.Z * s, math32.Cos(half)}
}

// MulVec rotates v by q using the optimized cross-product sandwich form
// v + 2w(q̂×v) + 2(q̂×(q̂×v)), equivalent to q*v*q⁻¹ for unit q but avoiding
// the full quaternion multiply.
func (q Quaternion) MulVec(v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// Mul returns the Hamilton product q*other.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}
