// Package point defines the immutable per-sample ride record every builder
// produces and consumes.
package point

import (
	"github.com/kexedit/kexsim/frame"
	"github.com/kexedit/kexsim/simcore"
	"github.com/kexedit/kexsim/vecmath"
)

// Point is the central record of the simulation. Every field is stored;
// derived quantities (HeartPosition, CenterY, ...) are computed on demand by
// the methods below, never cached in the struct.
type Point struct {
	SpinePosition vecmath.Vec3
	Direction     vecmath.Vec3
	Normal        vecmath.Vec3
	Lateral       vecmath.Vec3

	Velocity     float32
	Energy       float32
	NormalForce  float32
	LateralForce float32

	HeartArc      float32
	SpineArc      float32
	SpineAdvance  float32
	FrictionOrigin float32

	RollSpeed  float32
	HeartOffset float32
	Friction   float32
	Resistance float32
}

// Default is the anchor a fresh track root starts from: spine position
// (0, 3, 0), the default hanging-rider frame, velocity 10, heart offset 1.1.
// Its energy is computed from the spine height directly (G*spine.Y), not the
// heart center height — the reference implementation does this at
// construction time and golden tests depend on it.
var Default = Point{
	SpinePosition: vecmath.Vec3{X: 0, Y: 3, Z: 0},
	Direction:     frame.Default.Direction,
	Normal:        frame.Default.Normal,
	Lateral:       frame.Default.Lateral,
	Velocity:      10,
	Energy:        simcore.ComputeTotalEnergy(10, 3, 0, 0),
	HeartOffset:   1.1,
}

// Frame returns the point's orientation as a frame.Frame.
func (p Point) Frame() frame.Frame {
	return frame.Frame{Direction: p.Direction, Normal: p.Normal, Lateral: p.Lateral}
}

// Roll returns the point's roll angle.
func (p Point) Roll() float32 {
	return p.Frame().Roll()
}

// HeartPosition returns the rider's center-of-mass position at the given
// heart offset: SpinePosition + Normal*offset.
func (p Point) HeartPosition(offset float32) vecmath.Vec3 {
	return p.SpinePosition.Add(p.Normal.Scale(offset))
}

// CenterY returns the height used for potential-energy bookkeeping: the
// heart position's Y at 0.9*HeartOffset (a slightly conservative seated
// center of mass, offset from the full heart line).
func (p Point) CenterY() float32 {
	return p.HeartPosition(p.HeartOffset * 0.9).Y
}

// EffectiveFrictionDistance returns HeartArc - FrictionOrigin, the distance
// over which the current friction window has accumulated.
func (p Point) EffectiveFrictionDistance() float32 {
	return p.HeartArc - p.FrictionOrigin
}

// KineticEnergy returns 1/2*v^2.
func (p Point) KineticEnergy() float32 {
	return 0.5 * p.Velocity * p.Velocity
}

// GravitationalPE returns G*CenterY().
func (p Point) GravitationalPE() float32 {
	return simcore.G * p.CenterY()
}

// FrictionPE returns G*EffectiveFrictionDistance()*Friction.
func (p Point) FrictionPE() float32 {
	return simcore.G * p.EffectiveFrictionDistance() * p.Friction
}

// WithFrictionOrigin returns a copy of p with FrictionOrigin replaced.
func (p Point) WithFrictionOrigin(origin float32) Point {
	p.FrictionOrigin = origin
	return p
}

// WithForces returns a copy of p with NormalForce/LateralForce replaced.
func (p Point) WithForces(normalForce, lateralForce float32) Point {
	p.NormalForce = normalForce
	p.LateralForce = lateralForce
	return p
}

// WithVelocityAndEnergy returns a copy of p with Velocity and Energy
// replaced directly, with no recomputation. The builders' driven steps use
// WithVelocity instead, which derives Energy from the new velocity.
func (p Point) WithVelocityAndEnergy(velocity, energy float32) Point {
	p.Velocity = velocity
	p.Energy = energy
	return p
}

// WithVelocity replaces velocity and recomputes Energy from it via
// simcore.ComputeTotalEnergy at the point's current center height and
// friction window, optionally resetting the friction origin (used when a
// driven-velocity override needs to restart friction accounting from here).
func (p Point) WithVelocity(newVelocity, heartOffset, friction float32, resetFrictionOrigin bool) Point {
	p.HeartOffset = heartOffset
	p.Friction = friction
	p.Velocity = newVelocity
	if resetFrictionOrigin {
		p.FrictionOrigin = p.HeartArc
	}
	p.Energy = simcore.ComputeTotalEnergy(newVelocity, p.CenterY(), p.EffectiveFrictionDistance(), friction)
	return p
}

// FromDirectionAndRoll builds a frame given a direction and an explicit roll
// angle: derive lateral from direction x world-up (falling back to world
// right when direction is vertical), then apply the requested roll.
func FromDirectionAndRoll(direction vecmath.Vec3, roll float32) frame.Frame {
	up := vecmath.Up
	lateral := direction.Cross(up)
	if lateral.Magnitude() < simcore.Epsilon {
		lateral = vecmath.Right
	}
	lateral = lateral.Normalize()
	normal := direction.Cross(lateral).Normalize()
	f := frame.Frame{Direction: direction, Normal: normal, Lateral: lateral}
	return f.WithRoll(roll)
}

// Create builds a fresh Point from scratch: the frame is derived from
// direction and roll via FromDirectionAndRoll, and energy is the kinetic
// term plus G times the *full* heart position's height — no 0.9 scaling,
// no friction term, matching point.rs's create() exactly (as opposed to
// Default, which uses the spine height, and the stepper's ongoing energy
// bookkeeping, which folds in CenterY's 0.9 scaling and the friction window).
func Create(
	spinePosition, direction vecmath.Vec3,
	roll, velocity float32,
	heartOffset, friction, resistance float32,
	frictionOrigin, heartArc, spineArc, spineAdvance, rollSpeed float32,
) Point {
	f := FromDirectionAndRoll(direction, roll)
	p := Point{
		SpinePosition:  spinePosition,
		Direction:      f.Direction,
		Normal:         f.Normal,
		Lateral:        f.Lateral,
		Velocity:       velocity,
		HeartArc:       heartArc,
		SpineArc:       spineArc,
		SpineAdvance:   spineAdvance,
		FrictionOrigin: frictionOrigin,
		RollSpeed:      rollSpeed,
		HeartOffset:    heartOffset,
		Friction:       friction,
		Resistance:     resistance,
	}
	heartY := p.HeartPosition(heartOffset).Y
	p.Energy = 0.5*velocity*velocity + simcore.G*heartY
	return p
}
