package builders

import (
	"testing"

	"github.com/kexedit/kexsim/point"
	"github.com/stretchr/testify/assert"
)

func TestBuildCurvedZeroArcReturnsAnchor(t *testing.T) {
	out := BuildCurved(point.Default, CurvedConfig{RadiusM: 10, ArcDeg: 0})
	assert.Len(t, out, 1)
	assert.Equal(t, point.Default, out[0])
}

func TestBuildCurvedQuarterLoopDriven(t *testing.T) {
	cfg := CurvedConfig{
		RadiusM: 10,
		ArcDeg:  90,
		Driven:  true,
		Curves:  Curves{DrivenVelocity: nil},
		Defaults: AnchorDefaults{Heart: 1.1},
	}
	anchor := point.Default
	anchor.Velocity = 10
	out := BuildCurved(anchor, cfg)

	// 157 samples expected per spec.md's concrete scenario #6:
	// (pi/2*10)/(10/100) ~= 157.
	assert.InDelta(t, 157, len(out), 3)

	last := out[len(out)-1]
	lastFrame := last.Frame()
	assert.InDelta(t, 1.0, lastFrame.Direction.Magnitude(), 1e-4)
	assert.InDelta(t, 0.0, lastFrame.Direction.Dot(lastFrame.Normal), 1e-4)
}

func TestBuildCurvedFrameStaysOrthonormalThroughout(t *testing.T) {
	cfg := CurvedConfig{RadiusM: 20, ArcDeg: 180, LeadIn: 10, LeadOut: 10, Driven: true}
	anchor := point.Default
	anchor.Velocity = 15
	out := BuildCurved(anchor, cfg)
	for _, p := range out {
		f := p.Frame()
		assert.InDelta(t, 1.0, f.Direction.Magnitude(), 1e-3)
		assert.InDelta(t, 1.0, f.Normal.Magnitude(), 1e-3)
		assert.InDelta(t, 1.0, f.Lateral.Magnitude(), 1e-3)
		assert.InDelta(t, 0.0, f.Direction.Dot(f.Lateral), 1e-3)
	}
}

func TestBuildCurvedArcLengthsNonDecreasing(t *testing.T) {
	cfg := CurvedConfig{RadiusM: 15, ArcDeg: 45, Driven: true}
	anchor := point.Default
	anchor.Velocity = 12
	out := BuildCurved(anchor, cfg)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i].HeartArc, out[i-1].HeartArc)
	}
}
