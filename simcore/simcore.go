// Package simcore holds the simulation constants and the small scalar
// functions (angle wrapping, energy bookkeeping) shared by every builder.
package simcore

import "github.com/chewxy/math32"

const (
	// G is standard gravity in m/s^2.
	G = 9.80665
	// HZ is the fixed sample rate of the ride-state stepper.
	HZ = 100.0
	// DT is the fixed timestep, 1/HZ.
	DT = 1.0 / HZ
	// Epsilon is the single-precision machine epsilon.
	Epsilon = 1.192093e-7
	// MinVelocity is the stall floor below which a builder either halts
	// (uphill) or rescues to the floor (downhill).
	MinVelocity = 1e-3
)

// WrapAngle folds rad into (-pi, pi].
func WrapAngle(rad float32) float32 {
	const pi = math32.Pi
	if rad > -pi && rad <= pi {
		return rad
	}
	return math32.Mod(rad+3*pi, 2*pi) - pi
}

// ComputeTotalEnergy returns the specific mechanical energy
// 1/2*v^2 + G*centerY + G*frictionDistance*friction.
func ComputeTotalEnergy(v, centerY, frictionDistance, friction float32) float32 {
	return 0.5*v*v + G*centerY + G*frictionDistance*friction
}

// UpdateEnergy advances (prevEnergy, prevVelocity) by one step of
// aerodynamic drag (proportional to v^3) and returns the new energy and the
// velocity implied by it at height centerY with friction work
// frictionDistance*friction folded in. Velocity is clamped to zero rather
// than going imaginary when the coaster runs out of energy.
func UpdateEnergy(prevEnergy, prevVelocity, centerY, frictionDistance, friction, resistance float32) (newEnergy, newVelocity float32) {
	pe := G * (centerY + frictionDistance*friction)
	newEnergy = prevEnergy - prevVelocity*prevVelocity*prevVelocity*resistance*DT
	newVelocity = math32.Sqrt(2 * math32.Max(newEnergy-pe, 0))
	return newEnergy, newVelocity
}
