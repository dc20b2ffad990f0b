// Package frame implements the orthonormal rider frame {direction, normal,
// lateral} and its roll/pitch/yaw decomposition.
package frame

import (
	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/vecmath"
)

// Frame is a right-handed orthonormal basis: Direction is the tangent along
// the track, Normal points from the rider's seat toward the rider's head
// (so the default frame has Normal pointing DOWN, under the hang-style rider
// convention this system models), and Lateral points to the rider's right.
// The invariant Direction x Lateral == Normal holds modulo floating-point
// noise.
type Frame struct {
	Direction vecmath.Vec3
	Normal    vecmath.Vec3
	Lateral   vecmath.Vec3
}

// Default is the frame a fresh anchor starts from.
var Default = Frame{
	Direction: vecmath.Back,
	Normal:    vecmath.Down,
	Lateral:   vecmath.Right,
}

// Roll returns atan2(lateral.y, -normal.y).
func (f Frame) Roll() float32 {
	return math32.Atan2(f.Lateral.Y, -f.Normal.Y)
}

// Pitch returns atan2(direction.y, sqrt(direction.x^2 + direction.z^2)).
func (f Frame) Pitch() float32 {
	horiz := math32.Sqrt(f.Direction.X*f.Direction.X + f.Direction.Z*f.Direction.Z)
	return math32.Atan2(f.Direction.Y, horiz)
}

// Yaw returns atan2(-direction.x, -direction.z).
func (f Frame) Yaw() float32 {
	return math32.Atan2(-f.Direction.X, -f.Direction.Z)
}

// RotateAround rotates all three basis vectors by angle about axis.
func (f Frame) RotateAround(axis vecmath.Vec3, angle float32) Frame {
	q := vecmath.FromAxisAngle(axis, angle)
	return Frame{
		Direction: q.MulVec(f.Direction).Normalize(),
		Normal:    q.MulVec(f.Normal).Normalize(),
		Lateral:   q.MulVec(f.Lateral).Normalize(),
	}
}

// WithRoll rotates the frame about Direction by -delta radians (the sign
// matches Roll()'s atan2(lateral.y, -normal.y) definition) and re-derives
// Normal via cross product.
func (f Frame) WithRoll(delta float32) Frame {
	q := vecmath.FromAxisAngle(f.Direction, -delta)
	lateral := q.MulVec(f.Lateral).Normalize()
	return Frame{
		Direction: f.Direction,
		Normal:    f.Direction.Cross(lateral).Normalize(),
		Lateral:   lateral,
	}
}

// PitchAxis returns the axis pitch rotations are taken about: world-up x
// direction when Normal.Y >= 0, or world-down x direction when Normal.Y < 0,
// so that pitch stays measured against the horizon on both upright and
// inverted track.
func (f Frame) PitchAxis() vecmath.Vec3 {
	up := vecmath.Up
	if f.Normal.Y < 0 {
		up = vecmath.Down
	}
	return up.Cross(f.Direction).Normalize()
}

// WithPitch rotates the frame about PitchAxis() by delta radians.
func (f Frame) WithPitch(delta float32) Frame {
	q := vecmath.FromAxisAngle(f.PitchAxis(), delta)
	direction := q.MulVec(f.Direction).Normalize()
	lateral := q.MulVec(f.Lateral).Normalize()
	return Frame{
		Direction: direction,
		Normal:    direction.Cross(lateral).Normalize(),
		Lateral:   lateral,
	}
}

// WithYaw rotates the frame about the world-up axis by delta radians.
func (f Frame) WithYaw(delta float32) Frame {
	q := vecmath.FromAxisAngle(vecmath.Up, delta)
	direction := q.MulVec(f.Direction).Normalize()
	lateral := q.MulVec(f.Lateral).Normalize()
	return Frame{
		Direction: direction,
		Normal:    direction.Cross(lateral).Normalize(),
		Lateral:   lateral,
	}
}
