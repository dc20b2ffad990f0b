package builders

import "github.com/kexedit/kexsim/point"

// ReversePath reverses a Point sequence for playback in the opposite
// direction: direction and lateral are negated (flipping the rider's facing
// and handedness), lateral_force is negated (the rider now feels sideways
// force from the other side), and every arc-length/scalar field is carried
// over unchanged — they describe cumulative progress along the chassis
// line, which this operation does not recompute.
func ReversePath(path []point.Point) []point.Point {
	out := make([]point.Point, len(path))
	for i, p := range path {
		r := p
		r.Direction = p.Direction.Neg()
		r.Lateral = p.Lateral.Neg()
		r.LateralForce = -p.LateralForce
		out[len(path)-1-i] = r
	}
	return out
}
