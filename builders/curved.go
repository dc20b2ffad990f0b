package builders

import (
	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/curvature"
	"github.com/kexedit/kexsim/keyframe"
	"github.com/kexedit/kexsim/point"
	"github.com/kexedit/kexsim/simcore"
	"github.com/kexedit/kexsim/stepper"
	"github.com/kexedit/kexsim/vecmath"
)

const (
	degToRad = math32.Pi / 180
	radToDeg = 180 / math32.Pi
	// leadCalibration is the empirical constant the reference implementation
	// uses to convert a lead span in degrees into the expected arc distance
	// over which the smoothstep ramp runs.
	leadCalibration = 1.997
)

// BuildCurved iterates a fixed-radius turn of the given arc (degrees),
// optionally easing the turn rate in over the first LeadIn degrees of arc and
// out over the last LeadOut degrees via a smoothstep dampening so the transition in and out of
// the curve doesn't start or end with a velocity-dependent kink.
func BuildCurved(anchor point.Point, cfg CurvedConfig) []point.Point {
	out := []point.Point{anchor}
	if cfg.ArcDeg <= 0 || cfg.RadiusM == 0 {
		return out
	}

	axisRad := cfg.AxisDeg * degToRad
	prev := anchor
	angle := float32(0)

	leadOutStarted := false
	var leadOutStartState point.Point
	actualLeadOut := float32(0)

	for i := 0; i < maxIterations && angle < cfg.ArcDeg; i++ {
		deltaAngleDeg := prev.Velocity / cfg.RadiusM / simcore.HZ * radToDeg

		if cfg.LeadIn > 0 {
			distanceFromStart := prev.HeartArc - anchor.HeartArc
			expectedLeadIn := leadCalibration / simcore.HZ * prev.Velocity / deltaAngleDeg * cfg.LeadIn
			fTrans := distanceFromStart / expectedLeadIn
			if fTrans <= 1.0 {
				deltaAngleDeg *= smoothstep(fTrans)
			}
		}

		leadOutStartAngle := cfg.ArcDeg - cfg.LeadOut
		if !leadOutStarted && angle > leadOutStartAngle {
			leadOutStartState = prev
			actualLeadOut = cfg.ArcDeg - angle
			leadOutStarted = true
		}
		if leadOutStarted && cfg.LeadOut > 0 {
			distanceFromLeadOutStart := prev.HeartArc - leadOutStartState.HeartArc
			expectedLeadOut := leadCalibration / simcore.HZ * prev.Velocity / deltaAngleDeg * actualLeadOut
			fTrans := 1.0 - distanceFromLeadOutStart/expectedLeadOut
			if fTrans < 0 {
				break
			}
			deltaAngleDeg *= smoothstep(fTrans)
		}

		rollSpeed := keyframe.Evaluate(cfg.Curves.RollSpeed, angle, 0)
		heartOffset := keyframe.Evaluate(cfg.Curves.HeartOffset, angle, cfg.Defaults.Heart)
		friction := keyframe.Evaluate(cfg.Curves.Friction, angle, cfg.Defaults.Friction)
		resistance := keyframe.Evaluate(cfg.Curves.Resistance, angle, cfg.Defaults.Resistance)

		if cfg.Driven {
			drivenVelocity := keyframe.Evaluate(cfg.Curves.DrivenVelocity, angle, prev.Velocity)
			if drivenVelocity < simcore.MinVelocity {
				break
			}
			prev = prev.WithVelocity(drivenVelocity, heartOffset, friction, true)
		} else if prev.Velocity < simcore.MinVelocity {
			if prev.Frame().Pitch() >= 0 {
				break
			}
			prev = prev.WithVelocity(simcore.MinVelocity, heartOffset, friction, true)
		}

		next := stepCurved(prev, deltaAngleDeg, axisRad, heartOffset, friction, resistance, rollSpeed, cfg.Driven)
		out = append(out, next)
		prev = next
		angle += deltaAngleDeg
	}
	return out
}

// smoothstep is the cubic Hermite ease f^2*(3-2f) used to dampen the turn
// rate across a lead-in or lead-out span.
func smoothstep(f float32) float32 {
	return f * f * (3 - 2*f)
}

// stepCurved advances prev one sample around a fixed-radius curve whose
// plane is tilted axisRad from vertical, rotating by deltaAngleDeg of arc
// while independently applying rollSpeed as a roll rate and preserving
// whatever roll the frame already carried into the step.
func stepCurved(prev point.Point, deltaAngleDeg, axisRad, heartOffset, friction, resistance, rollSpeed float32, driven bool) point.Point {
	prevFrame := prev.Frame()
	deltaAngleRad := deltaAngleDeg * degToRad

	curveAxis := prevFrame.Normal.Scale(-math32.Cos(axisRad)).Add(prevFrame.Lateral.Scale(math32.Sin(axisRad)))
	curveQuat := vecmath.FromAxisAngle(curveAxis, deltaAngleRad)
	currDirection := curveQuat.MulVec(prevFrame.Direction).Normalize()

	originalRoll := simcore.WrapAngle(prevFrame.Roll())

	currLateral := currDirection.Cross(vecmath.Up)
	if currLateral.Magnitude() < simcore.Epsilon {
		currLateral = vecmath.Right
	}
	currLateral = currLateral.Normalize()
	currNormal := currDirection.Cross(currLateral).Normalize()

	if math32.Abs(originalRoll) > simcore.Epsilon {
		rollQuat := vecmath.FromAxisAngle(currDirection, -originalRoll)
		currLateral = rollQuat.MulVec(currLateral).Normalize()
		currNormal = currDirection.Cross(currLateral).Normalize()
	}

	spine, heartAdvance, spineAdvance := stepper.PositionAdvance(
		prev.SpinePosition, prevFrame.Direction, prevFrame.Normal, currDirection, currNormal, prev.Velocity, heartOffset)

	deltaRoll := rollSpeed / simcore.HZ
	rollQuat := vecmath.FromAxisAngle(currDirection, -deltaRoll)
	currLateral = rollQuat.MulVec(currLateral).Normalize()
	currNormal = currDirection.Cross(currLateral).Normalize()

	next := point.Point{
		SpinePosition:  spine,
		Direction:      currDirection,
		Normal:         currNormal,
		Lateral:        currLateral,
		HeartArc:       prev.HeartArc + heartAdvance,
		SpineArc:       prev.SpineArc + spineAdvance,
		SpineAdvance:   spineAdvance,
		FrictionOrigin: prev.FrictionOrigin,
		RollSpeed:      rollSpeed,
		HeartOffset:    heartOffset,
		Friction:       friction,
		Resistance:     resistance,
		Velocity:       prev.Velocity,
		Energy:         prev.Energy,
	}

	if !driven {
		newEnergy, newVelocity := simcore.UpdateEnergy(
			prev.Energy, prev.Velocity, next.CenterY(), next.EffectiveFrictionDistance(), friction, resistance)
		next.Energy = newEnergy
		next.Velocity = newVelocity
	}

	nf, lf := curvature.Forces(next.Frame(), prevFrame, next.Velocity, spineAdvance)
	next.NormalForce = nf
	next.LateralForce = lf

	return next
}
