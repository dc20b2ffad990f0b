package builders

import (
	"testing"

	"github.com/kexedit/kexsim/keyframe"
	"github.com/kexedit/kexsim/nodeschema"
	"github.com/kexedit/kexsim/point"
	"github.com/kexedit/kexsim/tolerance"
	"github.com/stretchr/testify/assert"
)

func TestBuildForceZeroDurationReturnsAnchor(t *testing.T) {
	out := BuildForce(point.Default, ForceConfig{Duration: 0})
	assert.Len(t, out, 1)
	assert.Equal(t, point.Default, out[0])
}

func TestBuildForceFirstSampleIsAnchor(t *testing.T) {
	out := BuildForce(point.Default, ForceConfig{Duration: 0.5})
	assert.Equal(t, point.Default, out[0])
}

func TestBuildForceTimeModeHalfSecond(t *testing.T) {
	out := BuildForce(point.Default, ForceConfig{Duration: 0.5, DurationType: nodeschema.DurationTime})
	assert.Len(t, out, 50)
	// The anchor plus 49 steps of 10 m/s / HZ = 0.1 m each.
	last := out[len(out)-1]
	assert.InDelta(t, 4.9, last.SpineArc, 0.05)
}

func TestBuildForceArcLengthsNonDecreasing(t *testing.T) {
	out := BuildForce(point.Default, ForceConfig{Duration: 1.0, DurationType: nodeschema.DurationTime})
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i].HeartArc, out[i-1].HeartArc)
		assert.GreaterOrEqual(t, out[i].SpineArc, out[i-1].SpineArc)
	}
}

func TestBuildForceEnergyDriftBoundedWithoutResistance(t *testing.T) {
	out := BuildForce(point.Default, ForceConfig{Duration: 2.0, DurationType: nodeschema.DurationTime})
	for i, p := range out {
		assert.InDelta(t, float64(point.Default.Energy), float64(p.Energy), float64(tolerance.AtSample(i))+0.2)
	}
}

func TestBuildForceDistanceModeFiveMeters(t *testing.T) {
	out := BuildForce(point.Default, ForceConfig{Duration: 5.0, DurationType: nodeschema.DurationDistance})
	assert.Greater(t, len(out), 1)
	last := out[len(out)-1]
	assert.GreaterOrEqual(t, last.SpineArc, point.Default.SpineArc+5.0)
}

func TestBuildForceSlowUphillAnchorStopsImmediately(t *testing.T) {
	// The default frame's pitch is exactly 0 (level, treated as uphill), so
	// a near-stalled anchor should halt on the very first step.
	anchor := point.Default
	anchor.Velocity = 1e-4
	out := BuildForce(anchor, ForceConfig{Duration: 1.0, DurationType: nodeschema.DurationTime})
	assert.Len(t, out, 1)
}

func TestBuildForceDrivenVelocityBelowFloorStops(t *testing.T) {
	cfg := ForceConfig{
		Duration:     1.0,
		DurationType: nodeschema.DurationTime,
		Driven:       true,
		Curves: Curves{
			DrivenVelocity: []keyframe.Keyframe{{Time: 0, Value: 0.0005, OutInterpolation: keyframe.Constant}},
		},
	}
	out := BuildForce(point.Default, cfg)
	assert.Len(t, out, 1)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Velocity, float32(0))
	}
}
