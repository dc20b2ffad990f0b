package builders

import (
	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/keyframe"
	"github.com/kexedit/kexsim/nodeschema"
	"github.com/kexedit/kexsim/point"
	"github.com/kexedit/kexsim/simcore"
	"github.com/kexedit/kexsim/stepper"
)

// BuildForce iterates the force stepper by time or by arc length, sampling
// the roll/normal-force/lateral-force/driven-velocity/heart-offset/
// friction/resistance curves at each step. The first element of the
// returned sequence is always the unchanged anchor.
func BuildForce(anchor point.Point, cfg ForceConfig) []point.Point {
	out := []point.Point{anchor}
	if cfg.Duration <= 0 {
		return out
	}

	prev := anchor
	if cfg.DurationType == nodeschema.DurationDistance {
		targetArc := anchor.SpineArc + cfg.Duration
		for i := 0; i < maxIterations && prev.SpineArc < targetArc; i++ {
			d := prev.SpineArc - anchor.SpineArc + prev.Velocity/simcore.HZ
			next, stop := forceStep(prev, cfg, d, prev.Velocity/simcore.HZ)
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
		next, stop := forceStep(prev, cfg, t, 1.0/simcore.HZ)
		if stop {
			break
		}
		out = append(out, next)
		prev = next
	}
	return out
}

// forceStep evaluates every curve at parameter, builds the roll delta using
// rollScale (DT in time mode, v/HZ in distance mode). A driven velocity (or a
// downhill stall rescue) is applied to prev BEFORE stepping, via
// point.WithVelocity with the friction origin reset — this both supplies the
// velocity the stepper advances position with and, by zeroing the friction
// window, makes the resulting energy reduce to kinetic+gravitational only.
func forceStep(prev point.Point, cfg ForceConfig, parameter, rollScale float32) (point.Point, bool) {
	rollSpeed := keyframe.Evaluate(cfg.Curves.RollSpeed, parameter, 0)
	normalForce := keyframe.Evaluate(cfg.Curves.NormalForce, parameter, 1)
	lateralForce := keyframe.Evaluate(cfg.Curves.LateralForce, parameter, 0)
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

	physics := stepper.Physics{
		HeartOffset: heartOffset,
		Friction:    friction,
		Resistance:  resistance,
		DeltaRoll:   rollSpeed * rollScale,
		Driven:      cfg.Driven,
	}
	return stepper.Step(prev, normalForce, lateralForce, physics, rollSpeed), false
}
