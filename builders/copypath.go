package builders

import (
	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/curvature"
	"github.com/kexedit/kexsim/frame"
	"github.com/kexedit/kexsim/keyframe"
	"github.com/kexedit/kexsim/point"
	"github.com/kexedit/kexsim/simcore"
	"github.com/kexedit/kexsim/vecmath"
)

// BuildCopyPath resamples a slice of an existing path under the rigid
// transform that maps the source path's frame at the start index onto the
// anchor's frame, walking the result by arc length rather than by index so
// the output still advances at the anchor's own velocity/energy.
func BuildCopyPath(anchor point.Point, source []point.Point, cfg CopyPathConfig) []point.Point {
	out := []point.Point{anchor}
	if len(source) == 0 {
		return out
	}

	startIndex := 0
	if cfg.StartSeconds > 0 {
		startIndex = clampIndex(int(roundFloat(cfg.StartSeconds*simcore.HZ)), len(source))
	}
	endIndex := len(source) - 1
	if cfg.EndSeconds >= 0 {
		endIndex = clampIndex(int(roundFloat(cfg.EndSeconds*simcore.HZ)), len(source))
	}
	if endIndex <= startIndex {
		return out
	}
	segment := source[startIndex : endIndex+1]

	rotation, translation := copyPathTransform(anchor, segment[0])

	prev := anchor
	cursor := 0
	distance := float32(0)
	startArc := segment[0].HeartArc

	for i := 0; i < maxIterations; i++ {
		velocity := prev.Velocity
		heartOffset := keyframe.Evaluate(cfg.Curves.HeartOffset, distance, cfg.Defaults.Heart)
		friction := keyframe.Evaluate(cfg.Curves.Friction, distance, cfg.Defaults.Friction)
		resistance := keyframe.Evaluate(cfg.Curves.Resistance, distance, cfg.Defaults.Resistance)

		if cfg.Driven {
			drivenVelocity := keyframe.Evaluate(cfg.Curves.DrivenVelocity, distance, prev.Velocity)
			if drivenVelocity < simcore.MinVelocity {
				break
			}
			prev = prev.WithVelocity(drivenVelocity, heartOffset, friction, true)
			velocity = drivenVelocity
		} else if prev.Velocity < simcore.MinVelocity {
			if prev.Frame().Pitch() >= 0 {
				break
			}
			prev = prev.WithVelocity(simcore.MinVelocity, heartOffset, friction, true)
			velocity = simcore.MinVelocity
		}

		distance += velocity / simcore.HZ
		targetArc := startArc + distance
		if targetArc > segment[len(segment)-1].HeartArc {
			break
		}

		cursor = advanceCursor(segment, cursor, targetArc)
		sample := lerpSample(segment[cursor], segment[cursor+1], targetArc)

		prevFrame := prev.Frame()
		spine := rotation(sample.SpinePosition).Add(translation)
		direction := rotation(sample.Direction).Normalize()
		normal := rotation(sample.Normal).Normalize()
		lateral := rotation(sample.Lateral).Normalize()

		advance := spine.Sub(prev.SpinePosition).Magnitude()

		next := point.Point{
			SpinePosition:  spine,
			Direction:      direction,
			Normal:         normal,
			Lateral:        lateral,
			HeartArc:       prev.HeartArc + advance,
			SpineArc:       prev.SpineArc + advance,
			SpineAdvance:   advance,
			FrictionOrigin: prev.FrictionOrigin,
			RollSpeed:      sample.RollSpeed,
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

		nf, lf := curvature.Forces(next.Frame(), prevFrame, next.Velocity, advance)
		next.NormalForce = nf
		next.LateralForce = lf

		out = append(out, next)
		prev = next
	}
	return out
}

// copyPathTransform derives the rigid rotation (as a function applying it to
// a vector) and translation that map sourceStart's frame/position onto
// anchor's: R = anchorBasis * sourceBasis^-1, with each basis the matrix of
// columns (lateral, normal, direction) and ^-1 the transpose of an
// orthonormal matrix. t = anchor.SpinePosition - R*sourceStart.SpinePosition.
func copyPathTransform(anchor, sourceStart point.Point) (func(vecmath.Vec3) vecmath.Vec3, vecmath.Vec3) {
	anchorFrame := anchor.Frame()
	sourceFrame := sourceStart.Frame()
	rotation := basisRotation(sourceFrame, anchorFrame)
	translation := anchor.SpinePosition.Sub(rotation(sourceStart.SpinePosition))
	return rotation, translation
}

// basisRotation returns R*v = to * (from^T * v): project v onto from's
// basis, then re-expand those coordinates in to's basis. Equivalent to the
// 3x3 matrix product anchorBasis*sourceBasis^-1 without needing a Mat3 type.
func basisRotation(from, to frame.Frame) func(vecmath.Vec3) vecmath.Vec3 {
	return func(v vecmath.Vec3) vecmath.Vec3 {
		lat := v.Dot(from.Lateral)
		nor := v.Dot(from.Normal)
		dir := v.Dot(from.Direction)
		return to.Lateral.Scale(lat).Add(to.Normal.Scale(nor)).Add(to.Direction.Scale(dir))
	}
}

// advanceCursor walks cursor forward (never backward, keeping per-step
// lookup O(1) amortized) until segment[cursor+1].HeartArc >= targetArc.
func advanceCursor(segment []point.Point, cursor int, targetArc float32) int {
	for cursor < len(segment)-2 && segment[cursor+1].HeartArc < targetArc {
		cursor++
	}
	return cursor
}

// lerpSample linearly interpolates position/frame components between two
// bracketing source samples at arc length targetArc, then re-normalizes the
// frame vectors so floating-point blending can't drift them off unit
// length.
func lerpSample(a, b point.Point, targetArc float32) point.Point {
	span := b.HeartArc - a.HeartArc
	u := float32(0)
	if span > simcore.Epsilon {
		u = (targetArc - a.HeartArc) / span
	}

	lerp := func(x, y float32) float32 { return x + (y-x)*u }
	lerpVec := func(x, y vecmath.Vec3) vecmath.Vec3 { return x.Add(y.Sub(x).Scale(u)) }

	return point.Point{
		SpinePosition: lerpVec(a.SpinePosition, b.SpinePosition),
		Direction:     lerpVec(a.Direction, b.Direction).Normalize(),
		Normal:        lerpVec(a.Normal, b.Normal).Normalize(),
		Lateral:       lerpVec(a.Lateral, b.Lateral).Normalize(),
		RollSpeed:     lerp(a.RollSpeed, b.RollSpeed),
	}
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length-1 {
		return length - 1
	}
	return i
}

func roundFloat(v float32) float32 {
	return math32.Floor(v + 0.5)
}
