package builders

import (
	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/curvature"
	"github.com/kexedit/kexsim/frame"
	"github.com/kexedit/kexsim/keyframe"
	"github.com/kexedit/kexsim/nodeschema"
	"github.com/kexedit/kexsim/point"
	"github.com/kexedit/kexsim/simcore"
	"github.com/kexedit/kexsim/vecmath"
)

// BuildGeometric iterates by prescribed pitch/yaw/roll rate curves instead
// of force curves. In steering mode an accumulated_roll scalar survives
// across the whole segment: pitch/yaw are applied in the un-banked frame,
// then the accumulated roll is re-applied, modeling a rider leaning into
// turns rather than rolling in place. Non-steering mode rolls directly
// in place after each pitch/yaw step.
func BuildGeometric(anchor point.Point, cfg GeometricConfig) []point.Point {
	out := []point.Point{anchor}
	if cfg.Duration <= 0 {
		return out
	}

	prev := anchor
	accumulatedRoll := float32(0)

	if cfg.DurationType == nodeschema.DurationDistance {
		targetArc := anchor.HeartArc + cfg.Duration
		for i := 0; i < maxIterations && prev.HeartArc < targetArc; i++ {
			d := prev.HeartArc - anchor.HeartArc + prev.Velocity/simcore.HZ
			scale := prev.Velocity / simcore.HZ
			next, stop := geometricStep(prev, cfg, d, scale, &accumulatedRoll)
			if stop {
				break
			}
			out = append(out, next)
			prev = next
		}
		return out
	}

	pointCount := int(math32.Floor(simcore.HZ * cfg.Duration))
	for i := 1; i < pointCount && i <= maxIterations; i++ {
		t := float32(i) / simcore.HZ
		next, stop := geometricStep(prev, cfg, t, simcore.DT, &accumulatedRoll)
		if stop {
			break
		}
		out = append(out, next)
		prev = next
	}
	return out
}

// geometricStep evaluates every curve at parameter. As in the force
// stepper, a driven velocity (or downhill stall rescue) is applied to prev
// before the kinematic update via point.WithVelocity, so the advance uses
// the corrected velocity and the friction window restarts cleanly.
func geometricStep(prev point.Point, cfg GeometricConfig, parameter, scale float32, accumulatedRoll *float32) (point.Point, bool) {
	pitchSpeed := keyframe.Evaluate(cfg.Curves.PitchSpeed, parameter, 0)
	yawSpeed := keyframe.Evaluate(cfg.Curves.YawSpeed, parameter, 0)
	rollSpeed := keyframe.Evaluate(cfg.Curves.RollSpeed, parameter, 0)
	heartOffset := keyframe.Evaluate(cfg.Curves.HeartOffset, parameter, cfg.Defaults.Heart)
	friction := keyframe.Evaluate(cfg.Curves.Friction, parameter, cfg.Defaults.Friction)
	resistance := keyframe.Evaluate(cfg.Curves.Resistance, parameter, cfg.Defaults.Resistance)

	if cfg.Driven {
		drivenVelocity := keyframe.Evaluate(cfg.Curves.DrivenVelocity, parameter, prev.Velocity)
		if drivenVelocity < simcore.MinVelocity {
			return prev, true
		}
		prev = prev.WithVelocity(drivenVelocity, heartOffset, friction, true)
	} else if prev.Velocity < simcore.MinVelocity {
		if prev.Frame().Pitch() >= 0 {
			return prev, true
		}
		prev = prev.WithVelocity(simcore.MinVelocity, heartOffset, friction, true)
	}

	deltaPitch := pitchSpeed * scale
	deltaYaw := yawSpeed * scale
	deltaRoll := rollSpeed * scale

	prevFrame := prev.Frame()
	halfStep := prev.Velocity / (2 * simcore.HZ)

	var curr frame.Frame
	var currSpine vecmath.Vec3
	if cfg.Steering {
		unrolled := prevFrame
		if math32.Abs(*accumulatedRoll) > simcore.Epsilon {
			unrolled = prevFrame.WithRoll(-*accumulatedRoll)
		}
		rotated := unrolled.RotateAround(unrolled.PitchAxis(), deltaPitch).WithYaw(deltaYaw)

		currSpine = prev.SpinePosition.Add(rotated.Direction.Scale(halfStep)).Add(prevFrame.Direction.Scale(halfStep))

		*accumulatedRoll += deltaRoll
		if math32.Abs(*accumulatedRoll) > simcore.Epsilon {
			curr = frame.Frame{Direction: rotated.Direction, Normal: rotated.Normal, Lateral: rotated.Lateral}.WithRoll(*accumulatedRoll)
		} else {
			curr = rotated
		}
	} else {
		rotated := prevFrame.WithPitch(deltaPitch).WithYaw(deltaYaw)

		prevHeartPos := prev.HeartPosition(heartOffset)
		currHeartPosIfStatic := prev.SpinePosition.Add(rotated.Normal.Scale(heartOffset))
		currSpine = prev.SpinePosition.
			Add(rotated.Direction.Scale(halfStep)).
			Add(prevFrame.Direction.Scale(halfStep)).
			Add(prevHeartPos.Sub(currHeartPosIfStatic))

		curr = rotated.WithRoll(deltaRoll)
	}

	heartAdvance := currSpine.Add(curr.Normal.Scale(heartOffset)).Sub(prev.HeartPosition(heartOffset)).Magnitude()
	spineAdvance := currSpine.Sub(prev.SpinePosition).Magnitude()

	next := point.Point{
		SpinePosition:  currSpine,
		Direction:      curr.Direction,
		Normal:         curr.Normal,
		Lateral:        curr.Lateral,
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

	if !cfg.Driven {
		newEnergy, newVelocity := simcore.UpdateEnergy(
			prev.Energy, prev.Velocity, next.CenterY(), next.EffectiveFrictionDistance(), friction, resistance)
		next.Energy = newEnergy
		next.Velocity = newVelocity
	}

	nf, lf := curvature.Forces(next.Frame(), prevFrame, next.Velocity, spineAdvance)
	next.NormalForce = nf
	next.LateralForce = lf

	return next, false
}
