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

// bridgeSample is one precomputed point along the Bezier path connecting two
// anchors: position, tangent-derived frame, interpolated roll and the
// cumulative chord length up to this sample.
type bridgeSample struct {
	position  vecmath.Vec3
	direction vecmath.Vec3
	normal    vecmath.Vec3
	lateral   vecmath.Vec3
	roll      float32
	chord     float32
}

// minControlWeight and maxControlWeight clamp the Bezier control-point
// weights the geometry_params supply.
const (
	minControlWeight = 1e-3
	maxControlWeight = 1.0
)

// BuildBridge connects anchor to target via a cubic Bezier whose control
// points are offset along each endpoint's direction by length*weight, then
// walks the precomputed path by arc length exactly like the Force builder
// walks time/distance.
func BuildBridge(anchor, target point.Point, cfg BridgeConfig) []point.Point {
	out := []point.Point{anchor}

	length := target.HeartPosition(target.HeartOffset).Sub(anchor.HeartPosition(anchor.HeartOffset)).Magnitude()
	if length < simcore.Epsilon {
		return out
	}

	inWeight := clampWeight(cfg.InWeight)
	outWeight := clampWeight(cfg.OutWeight)

	p0 := anchor.HeartPosition(anchor.HeartOffset)
	p3 := target.HeartPosition(target.HeartOffset)
	p1 := p0.Add(anchor.Direction.Scale(length * inWeight))
	p2 := p3.Sub(target.Direction.Scale(length * outWeight))

	sampleCount := int(math32.Ceil(math32.Max(10, 2*length)))
	path := bridgePath(p0, p1, p2, p3, anchor.Roll(), target.Roll(), sampleCount)
	if len(path) < 2 {
		return out
	}

	prev := anchor
	cursor := 0
	distance := float32(0)
	totalChord := path[len(path)-1].chord

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
		if distance > totalChord {
			break
		}

		cursor = advanceChordCursor(path, cursor, distance)
		sample := lerpBridgeSample(path[cursor], path[cursor+1], distance)

		prevFrame := prev.Frame()
		heartPos := sample.position
		spine := heartPos.Sub(sample.normal.Scale(heartOffset))
		advance := spine.Sub(prev.SpinePosition).Magnitude()

		next := point.Point{
			SpinePosition:  spine,
			Direction:      sample.direction,
			Normal:         sample.normal,
			Lateral:        sample.lateral,
			HeartArc:       prev.HeartArc + advance,
			SpineArc:       prev.SpineArc + advance,
			SpineAdvance:   advance,
			FrictionOrigin: prev.FrictionOrigin,
			RollSpeed:      prev.RollSpeed,
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

		nf, lf := computeBridgeForce(next.Frame(), prevFrame, next.Velocity, advance)
		next.NormalForce = nf
		next.LateralForce = lf

		out = append(out, next)
		prev = next
	}
	return out
}

// computeBridgeForce mirrors curvature.Forces exactly, including the
// reference implementation's quirk of computing angle_from_last and then
// ignoring it: the normal/lateral projection below is used unconditionally,
// never short-circuited to pure gravity the way curvature.Forces degenerates
// when the angular change is tiny. Left as the reference behaves; see
// DESIGN.md.
func computeBridgeForce(curr, prev frame.Frame, velocity, advance float32) (float32, float32) {
	d := curvature.ComputeDeltas(curr, prev)
	_ = d.AngleFromLast

	lateralTerm := curr.Lateral.Scale(velocity * simcore.HZ * d.LateralAngle / simcore.G)
	normalTerm := curr.Normal.Scale(advance * simcore.HZ * simcore.HZ * d.NormalAngle / simcore.G)
	forceVec := vecmath.Down.Add(lateralTerm).Add(normalTerm)

	return -forceVec.Dot(curr.Normal), -forceVec.Dot(curr.Lateral)
}

// bridgePath samples the cubic Bezier p0-p1-p2-p3 at sampleCount points,
// recording position, tangent-derived frame and a roll interpolated from
// startRoll to endRoll via smoothstep (with wrap-angle correction on the
// difference so a +/-pi crossing takes the shorter arc).
func bridgePath(p0, p1, p2, p3 vecmath.Vec3, startRoll, endRoll float32, sampleCount int) []bridgeSample {
	path := make([]bridgeSample, 0, sampleCount)
	chord := float32(0)
	var prevPos vecmath.Vec3

	rollDelta := simcore.WrapAngle(endRoll - startRoll)

	for i := 0; i < sampleCount; i++ {
		u := float32(i) / float32(sampleCount-1)
		pos := bezierPoint(p0, p1, p2, p3, u)
		tangent := bezierTangent(p0, p1, p2, p3, u).Normalize()

		lateral := tangent.Cross(vecmath.Up)
		if lateral.Magnitude() < simcore.Epsilon {
			lateral = vecmath.Right
		}
		lateral = lateral.Normalize()
		normal := tangent.Cross(lateral).Normalize()

		roll := startRoll + rollDelta*smoothstep(u)
		if math32.Abs(roll) > simcore.Epsilon {
			q := vecmath.FromAxisAngle(tangent, -roll)
			lateral = q.MulVec(lateral).Normalize()
			normal = tangent.Cross(lateral).Normalize()
		}

		if i > 0 {
			chord += pos.Sub(prevPos).Magnitude()
		}
		prevPos = pos

		path = append(path, bridgeSample{
			position:  pos,
			direction: tangent,
			normal:    normal,
			lateral:   lateral,
			roll:      roll,
			chord:     chord,
		})
	}
	return path
}

func bezierPoint(p0, p1, p2, p3 vecmath.Vec3, u float32) vecmath.Vec3 {
	mu := 1 - u
	a := p0.Scale(mu * mu * mu)
	b := p1.Scale(3 * mu * mu * u)
	c := p2.Scale(3 * mu * u * u)
	d := p3.Scale(u * u * u)
	return a.Add(b).Add(c).Add(d)
}

func bezierTangent(p0, p1, p2, p3 vecmath.Vec3, u float32) vecmath.Vec3 {
	mu := 1 - u
	a := p1.Sub(p0).Scale(3 * mu * mu)
	b := p2.Sub(p1).Scale(6 * mu * u)
	c := p3.Sub(p2).Scale(3 * u * u)
	return a.Add(b).Add(c)
}

// advanceChordCursor walks cursor forward (never backward) until
// path[cursor+1].chord >= targetChord.
func advanceChordCursor(path []bridgeSample, cursor int, targetChord float32) int {
	for cursor < len(path)-2 && path[cursor+1].chord < targetChord {
		cursor++
	}
	return cursor
}

// lerpBridgeSample linearly interpolates position/direction/lateral/normal
// between two bracketing path samples at chord length targetChord, wrapping
// the roll difference through the shorter arc, then re-normalizes the frame
// vectors.
func lerpBridgeSample(a, b bridgeSample, targetChord float32) bridgeSample {
	span := b.chord - a.chord
	u := float32(0)
	if span > simcore.Epsilon {
		u = (targetChord - a.chord) / span
	}

	lerpVec := func(x, y vecmath.Vec3) vecmath.Vec3 { return x.Add(y.Sub(x).Scale(u)) }
	rollDelta := simcore.WrapAngle(b.roll - a.roll)

	return bridgeSample{
		position:  lerpVec(a.position, b.position),
		direction: lerpVec(a.direction, b.direction).Normalize(),
		normal:    lerpVec(a.normal, b.normal).Normalize(),
		lateral:   lerpVec(a.lateral, b.lateral).Normalize(),
		roll:      a.roll + rollDelta*u,
	}
}

func clampWeight(w float32) float32 {
	if w < minControlWeight {
		return minControlWeight
	}
	if w > maxControlWeight {
		return maxControlWeight
	}
	return w
}
