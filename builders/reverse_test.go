package builders

import (
	"testing"

	"github.com/kexedit/kexsim/nodeschema"
	"github.com/kexedit/kexsim/point"
	"github.com/stretchr/testify/assert"
)

func TestReversePathEmptyPath(t *testing.T) {
	out := ReversePath(nil)
	assert.Empty(t, out)
}

func TestReversePathNegatesDirectionAndLateral(t *testing.T) {
	path := []point.Point{point.Default}
	out := ReversePath(path)
	assert.Equal(t, point.Default.Direction.Neg(), out[0].Direction)
	assert.Equal(t, point.Default.Lateral.Neg(), out[0].Lateral)
	assert.Equal(t, -point.Default.LateralForce, out[0].LateralForce)
}

func TestReversePathPreservesArcLengths(t *testing.T) {
	path := BuildForce(point.Default, ForceConfig{Duration: 0.5, DurationType: nodeschema.DurationTime})
	out := ReversePath(path)
	for i, p := range path {
		r := out[len(out)-1-i]
		assert.Equal(t, p.HeartArc, r.HeartArc)
		assert.Equal(t, p.SpineArc, r.SpineArc)
		assert.Equal(t, p.Velocity, r.Velocity)
	}
}

func TestReversePathRoundTrip(t *testing.T) {
	path := BuildForce(point.Default, ForceConfig{Duration: 0.3, DurationType: nodeschema.DurationTime})
	roundTripped := ReversePath(ReversePath(path))
	assert.Equal(t, path, roundTripped)
}
