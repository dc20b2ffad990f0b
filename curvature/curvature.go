// Package curvature converts frame-to-frame angular change into the
// instantaneous rider-felt forces reported on each Point.
package curvature

import (
	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/frame"
	"github.com/kexedit/kexsim/simcore"
	"github.com/kexedit/kexsim/vecmath"
)

// Deltas holds the angular change between two consecutive frames.
type Deltas struct {
	PitchDelta    float32
	YawDelta      float32
	YawScale      float32
	AngleFromLast float32
	NormalAngle   float32
	LateralAngle  float32
}

// ComputeDeltas derives the body-frame angular rates that took curr from
// prev, expressed about prev's roll.
func ComputeDeltas(curr, prev frame.Frame) Deltas {
	pitchDelta := simcore.WrapAngle(curr.Pitch() - prev.Pitch())
	yawDelta := simcore.WrapAngle(curr.Yaw() - prev.Yaw())
	yawScale := math32.Abs(math32.Cos(curr.Pitch()))
	angleFromLast := math32.Sqrt((yawScale*yawDelta)*(yawScale*yawDelta) + pitchDelta*pitchDelta)

	roll := prev.Roll()
	sinRoll := math32.Sin(roll)
	cosRoll := math32.Cos(roll)
	normalAngle := -pitchDelta*cosRoll - yawScale*yawDelta*sinRoll
	lateralAngle := pitchDelta*sinRoll - yawScale*yawDelta*cosRoll

	return Deltas{
		PitchDelta:    pitchDelta,
		YawDelta:      yawDelta,
		YawScale:      yawScale,
		AngleFromLast: angleFromLast,
		NormalAngle:   normalAngle,
		LateralAngle:  lateralAngle,
	}
}

// Forces computes the (normalForce, lateralForce) reported at curr given the
// frame transition from prev to curr, the instantaneous velocity and the
// position advance over the step (every builder passes its corrected
// spine_advance here, never the uncorrected heart advance — see DESIGN.md).
// If the angular change is below machine epsilon the forces degenerate to
// pure gravity (normal=1, lateral=0).
func Forces(curr, prev frame.Frame, velocity, advance float32) (normalForce, lateralForce float32) {
	d := ComputeDeltas(curr, prev)
	if d.AngleFromLast < simcore.Epsilon {
		return 1, 0
	}

	lateralTerm := curr.Lateral.Scale(velocity * simcore.HZ * d.LateralAngle / simcore.G)
	normalTerm := curr.Normal.Scale(advance * simcore.HZ * simcore.HZ * d.NormalAngle / simcore.G)
	forceVec := vecmath.Down.Add(lateralTerm).Add(normalTerm)

	normalForce = -forceVec.Dot(curr.Normal)
	lateralForce = -forceVec.Dot(curr.Lateral)
	return normalForce, lateralForce
}
