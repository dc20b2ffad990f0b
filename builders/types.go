// Package builders implements the five segment builders (Force, Geometric,
// Curved, CopyPath, Bridge) plus ReversePath, each of which drives the
// fixed-rate stepper along its own geometric construction rule.
package builders

import (
	"github.com/kexedit/kexsim/keyframe"
	"github.com/kexedit/kexsim/nodeschema"
)

// maxIterations is the hard safety cap every builder loop respects.
const maxIterations = 1_000_000

// AnchorDefaults supplies the heart offset, friction and resistance a builder
// uses at every step whose property curve is empty. They serve only as curve
// fallbacks; the first step's previous-sample values come from the anchor.
type AnchorDefaults struct {
	Heart      float32
	Friction   float32
	Resistance float32
}

// Curves bundles the keyframe sequences a builder may consult. Only the
// subset relevant to a given builder is read. An empty slice falls back to the
// matching AnchorDefaults value for HeartOffset/Friction/Resistance, to the
// current velocity for DrivenVelocity, to 1 for NormalForce, and to a flat
// zero for RollSpeed, LateralForce and the pitch/yaw rates.
type Curves struct {
	RollSpeed      []keyframe.Keyframe
	NormalForce    []keyframe.Keyframe
	LateralForce   []keyframe.Keyframe
	PitchSpeed     []keyframe.Keyframe
	YawSpeed       []keyframe.Keyframe
	DrivenVelocity []keyframe.Keyframe
	HeartOffset    []keyframe.Keyframe
	Friction       []keyframe.Keyframe
	Resistance     []keyframe.Keyframe
}

// ForceConfig is the geometry/mode bundle for BuildForce.
type ForceConfig struct {
	Duration     float32
	DurationType nodeschema.DurationType
	Driven       bool
	Curves       Curves
	Defaults     AnchorDefaults
}

// GeometricConfig is the geometry/mode bundle for BuildGeometric.
type GeometricConfig struct {
	Duration     float32
	DurationType nodeschema.DurationType
	Driven       bool
	Steering     bool
	Curves       Curves
	Defaults     AnchorDefaults
}

// CurvedConfig is the geometry/mode bundle for BuildCurved.
type CurvedConfig struct {
	RadiusM  float32
	ArcDeg   float32
	AxisDeg  float32
	LeadIn   float32
	LeadOut  float32
	Driven   bool
	Curves   Curves
	Defaults AnchorDefaults
}

// CopyPathConfig is the geometry/mode bundle for BuildCopyPath.
type CopyPathConfig struct {
	StartSeconds float32
	EndSeconds   float32
	Driven       bool
	Curves       Curves
	Defaults     AnchorDefaults
}

// BridgeConfig is the geometry/mode bundle for BuildBridge.
type BridgeConfig struct {
	InWeight  float32
	OutWeight float32
	Driven    bool
	Curves    Curves
	Defaults  AnchorDefaults
}
