package builders

import (
	"testing"

	"github.com/kexedit/kexsim/keyframe"
	"github.com/kexedit/kexsim/nodeschema"
	"github.com/kexedit/kexsim/point"
	"github.com/stretchr/testify/assert"
)

func TestBuildGeometricZeroDurationReturnsAnchor(t *testing.T) {
	out := BuildGeometric(point.Default, GeometricConfig{Duration: 0})
	assert.Len(t, out, 1)
	assert.Equal(t, point.Default, out[0])
}

func TestBuildGeometricNonSteeringPitchRamp(t *testing.T) {
	cfg := GeometricConfig{
		Duration:     1.0,
		DurationType: nodeschema.DurationTime,
		Curves: Curves{
			PitchSpeed: []keyframe.Keyframe{{Time: 0, Value: 0.5, OutInterpolation: keyframe.Constant}},
		},
	}
	out := BuildGeometric(point.Default, cfg)
	assert.Greater(t, len(out), 1)
	last := out[len(out)-1]
	assert.NotEqual(t, point.Default.Direction, last.Direction)
}

func TestBuildGeometricSteeringAccumulatesRoll(t *testing.T) {
	cfg := GeometricConfig{
		Duration:     0.2,
		DurationType: nodeschema.DurationTime,
		Steering:     true,
		Curves: Curves{
			YawSpeed:  []keyframe.Keyframe{{Time: 0, Value: 1.0, OutInterpolation: keyframe.Constant}},
			RollSpeed: []keyframe.Keyframe{{Time: 0, Value: 2.0, OutInterpolation: keyframe.Constant}},
		},
	}
	out := BuildGeometric(point.Default, cfg)
	for _, p := range out {
		f := p.Frame()
		assert.InDelta(t, 1.0, f.Direction.Magnitude(), 1e-3)
		assert.InDelta(t, 0.0, f.Direction.Dot(f.Lateral), 1e-3)
	}
	// 19 steps of rollSpeed 2 * DT = 0.02 rad accumulate to 0.38 rad.
	assert.InDelta(t, 0.38, out[len(out)-1].Roll(), 1e-3)
}

func TestBuildGeometricArcLengthsNonDecreasing(t *testing.T) {
	cfg := GeometricConfig{
		Duration:     20.0,
		DurationType: nodeschema.DurationDistance,
		Curves: Curves{
			YawSpeed: []keyframe.Keyframe{{Time: 0, Value: 0.3, OutInterpolation: keyframe.Constant}},
		},
	}
	out := BuildGeometric(point.Default, cfg)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i].HeartArc, out[i-1].HeartArc)
	}
}
