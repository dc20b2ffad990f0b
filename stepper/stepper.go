// Package stepper implements the fixed-rate force stepper every builder
// ultimately advances a Point through: given target normal/lateral forces,
// it derives the small-angle rotation that would produce them, advances
// position by a trapezoidal rule, and updates energy/velocity.
package stepper

import (
	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/curvature"
	"github.com/kexedit/kexsim/frame"
	"github.com/kexedit/kexsim/point"
	"github.com/kexedit/kexsim/simcore"
	"github.com/kexedit/kexsim/vecmath"
)

// Physics bundles the per-step physics parameters a builder supplies on top
// of the target forces. Driven must already be reflected in prev's
// Velocity/Energy (via point.WithVelocity) before calling Step — Step only
// performs the non-driven energy integration; a driven prev simply carries
// its (already-overridden) velocity and energy forward.
type Physics struct {
	HeartOffset float32
	Friction    float32
	Resistance  float32
	DeltaRoll   float32
	Driven      bool
}

// PositionAdvance computes the new spine position and the per-step
// heart/spine advances given the previous and current direction/normal and
// the velocity carried into the step. The correction term
// (prevNormal-currNormal)*heartOffset keeps the heart line smooth when the
// frame's normal rotates during a step, independent of heart_offset itself
// changing: the heart position (spine + currNormal*heartOffset) moves by
// exactly the trapezoidal step, so heartAdvance is that step's length while
// spineAdvance includes the correction.
func PositionAdvance(prevSpine, prevDirection, prevNormal, currDirection, currNormal vecmath.Vec3, velocity, heartOffset float32) (spine vecmath.Vec3, heartAdvance, spineAdvance float32) {
	halfStep := velocity / (2 * simcore.HZ)
	trapAdvance := currDirection.Add(prevDirection).Scale(halfStep)
	correction := prevNormal.Sub(currNormal).Scale(heartOffset)
	spine = prevSpine.Add(trapAdvance).Add(correction)
	heartAdvance = trapAdvance.Magnitude()
	spineAdvance = trapAdvance.Add(correction).Magnitude()
	return spine, heartAdvance, spineAdvance
}

// Step advances prev by one fixed-rate sample given target normal/lateral
// forces and the physics parameters in effect, stamping rollSpeed into the
// output for diagnostic/export purposes.
func Step(prev point.Point, targetNormalForce, targetLateralForce float32, physics Physics, rollSpeed float32) point.Point {
	prevFrame := prev.Frame()

	forceVec := prevFrame.Normal.Scale(-targetNormalForce).
		Add(prevFrame.Lateral.Scale(-targetLateralForce)).
		Add(vecmath.Down)
	normalAccel := -forceVec.Dot(prevFrame.Normal) * simcore.G
	lateralAccel := -forceVec.Dot(prevFrame.Lateral) * simcore.G

	// The pitch rotation is driven off an estimated velocity derived from
	// the previous step's SpineAdvance (the corrected spine advance every
	// builder stores there) rather than the tracked velocity itself; the yaw
	// rotation uses the tracked velocity directly. Both are floored at
	// Epsilon to avoid dividing by (near) zero on a stalled point.
	estimatedVelocity := prev.Velocity
	if math32.Abs(prev.SpineAdvance) >= simcore.Epsilon {
		estimatedVelocity = prev.SpineAdvance * simcore.HZ
	}
	if math32.Abs(estimatedVelocity) < simcore.Epsilon {
		estimatedVelocity = simcore.Epsilon
	}
	safeVelocity := prev.Velocity
	if math32.Abs(safeVelocity) < simcore.Epsilon {
		safeVelocity = simcore.Epsilon
	}

	qPitch := vecmath.FromAxisAngle(prevFrame.Lateral, normalAccel/estimatedVelocity/simcore.HZ)
	qYaw := vecmath.FromAxisAngle(prevFrame.Normal, -lateralAccel/safeVelocity/simcore.HZ)
	q := qPitch.Mul(qYaw)

	direction := q.MulVec(prevFrame.Direction).Normalize()
	lateral := qYaw.MulVec(prevFrame.Lateral).Normalize()
	normal := direction.Cross(lateral).Normalize()

	spine, heartAdvance, spineAdvance := PositionAdvance(
		prev.SpinePosition, prevFrame.Direction, prevFrame.Normal, direction, normal, prev.Velocity, physics.HeartOffset)

	rolled := frame.Frame{Direction: direction, Normal: normal, Lateral: lateral}.WithRoll(physics.DeltaRoll)

	next := point.Point{
		SpinePosition:  spine,
		Direction:      rolled.Direction,
		Normal:         rolled.Normal,
		Lateral:        rolled.Lateral,
		HeartArc:       prev.HeartArc + heartAdvance,
		SpineArc:       prev.SpineArc + spineAdvance,
		SpineAdvance:   spineAdvance,
		FrictionOrigin: prev.FrictionOrigin,
		RollSpeed:      rollSpeed,
		HeartOffset:    physics.HeartOffset,
		Friction:       physics.Friction,
		Resistance:     physics.Resistance,
		Velocity:       prev.Velocity,
		Energy:         prev.Energy,
	}

	if !physics.Driven {
		newEnergy, newVelocity := simcore.UpdateEnergy(
			prev.Energy, prev.Velocity, next.CenterY(), next.EffectiveFrictionDistance(), physics.Friction, physics.Resistance)
		next.Energy = newEnergy
		next.Velocity = newVelocity
	}

	nf, lf := curvature.Forces(next.Frame(), prevFrame, next.Velocity, spineAdvance)
	next.NormalForce = nf
	next.LateralForce = lf

	return next
}
