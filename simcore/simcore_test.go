package simcore

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestWrapAngleInRangeUnchanged(t *testing.T) {
	assert.Equal(t, float32(0.5), WrapAngle(0.5))
	assert.Equal(t, math32.Pi, WrapAngle(math32.Pi))
}

func TestWrapAngleFoldsAboveRange(t *testing.T) {
	got := WrapAngle(math32.Pi * 1.5)
	assert.InDelta(t, float64(-math32.Pi*0.5), float64(got), 1e-4)
}

func TestWrapAngleFoldsBelowRange(t *testing.T) {
	got := WrapAngle(-math32.Pi * 1.5)
	assert.InDelta(t, float64(math32.Pi*0.5), float64(got), 1e-4)
}

func TestWrapAngleAlwaysInRange(t *testing.T) {
	for x := float32(-20); x <= 20; x += 0.37 {
		w := WrapAngle(x)
		assert.True(t, w > -math32.Pi-1e-4 && w <= math32.Pi+1e-4, "WrapAngle(%v) = %v out of range", x, w)
	}
}

func TestWrapAnglePeriodic(t *testing.T) {
	for x := float32(-5); x <= 5; x += 0.41 {
		a := WrapAngle(x)
		b := WrapAngle(x + 2*math32.Pi)
		assert.InDelta(t, float64(a), float64(b), 1e-3)
	}
}

func TestUpdateEnergyZeroResistanceConserves(t *testing.T) {
	e0 := ComputeTotalEnergy(10, 5, 0, 0)
	e1, _ := UpdateEnergy(e0, 10, 5, 0, 0, 0)
	assert.InDelta(t, float64(e0), float64(e1), 1e-4)
}

func TestUpdateEnergyResistanceDecreasesEnergy(t *testing.T) {
	e0 := ComputeTotalEnergy(10, 5, 0, 0)
	e1, _ := UpdateEnergy(e0, 10, 5, 0, 0, 0.01)
	assert.Less(t, e1, e0)
}

func TestUpdateEnergyHigherAltitudeLowerVelocity(t *testing.T) {
	e0 := ComputeTotalEnergy(10, 5, 0, 0)
	_, vLow := UpdateEnergy(e0, 10, 5, 0, 0, 0)
	_, vHigh := UpdateEnergy(e0, 10, 50, 0, 0, 0)
	assert.Less(t, vHigh, vLow)
}

func TestUpdateEnergyInsufficientEnergyClampsToZero(t *testing.T) {
	e0 := ComputeTotalEnergy(1, 0, 0, 0)
	_, v := UpdateEnergy(e0, 1, 1000, 0, 0, 0)
	assert.Equal(t, float32(0), v)
}
