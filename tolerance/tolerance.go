// Package tolerance reproduces the reference implementation's per-sample
// drift tolerance model, used by builder tests that walk a full output
// sequence and need a tolerance that loosens with sample index to account
// for accumulated floating-point drift.
package tolerance

const (
	// Base is the tolerance at sample 0.
	Base float32 = 1e-3
	// PerStep is the additional tolerance each sample index contributes,
	// expressed in the reference implementation's own units (1024 ulps of
	// single-precision machine epsilon).
	PerStep float32 = 1.192093e-7 * 1024
)

// AtSample returns the tolerance to use when comparing the i'th sample of a
// builder's output: Base + PerStep*i.
func AtSample(i int) float32 {
	return Base + PerStep*float32(i)
}
