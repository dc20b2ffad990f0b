package frame

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/kexedit/kexsim/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFrameOrthonormal(t *testing.T) {
	f := Default
	assert.Equal(t, vecmath.Vec3{X: 0, Y: 0, Z: -1}, f.Direction)
	assert.Equal(t, vecmath.Vec3{X: 0, Y: -1, Z: 0}, f.Normal)
	assert.Equal(t, vecmath.Vec3{X: 1, Y: 0, Z: 0}, f.Lateral)

	assert.InDelta(t, 1.0, f.Direction.Magnitude(), 1e-6)
	assert.InDelta(t, 1.0, f.Normal.Magnitude(), 1e-6)
	assert.InDelta(t, 1.0, f.Lateral.Magnitude(), 1e-6)

	assert.InDelta(t, 0.0, f.Direction.Dot(f.Normal), 1e-6)
	assert.InDelta(t, 0.0, f.Direction.Dot(f.Lateral), 1e-6)
	assert.InDelta(t, 0.0, f.Normal.Dot(f.Lateral), 1e-6)
}

func TestRotateAroundYaw90(t *testing.T) {
	rotated := Default.RotateAround(vecmath.Up, math32.Pi/2)
	assert.InDelta(t, -1.0, rotated.Direction.X, 1e-6)
	assert.InDelta(t, 0.0, rotated.Direction.Y, 1e-6)
	assert.InDelta(t, 0.0, rotated.Direction.Z, 1e-6)
}

func TestWithRollRoundTrip(t *testing.T) {
	rolled := Default.WithRoll(math32.Pi / 4).WithRoll(-math32.Pi / 4)
	assert.InDelta(t, Default.Direction.X, rolled.Direction.X, 1e-5)
	assert.InDelta(t, Default.Normal.Y, rolled.Normal.Y, 1e-5)
	assert.InDelta(t, Default.Lateral.X, rolled.Lateral.X, 1e-5)
}

func TestWithRollMatchesRollAngle(t *testing.T) {
	rolled := Default.WithRoll(math32.Pi / 4)
	assert.InDelta(t, float64(math32.Pi/4), float64(rolled.Roll()), 1e-6)
}
