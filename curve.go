package transfinite

import "gonum.org/v1/gonum/spatial/r3"

// Curve describes a parametrized space curve.
//
// A curve maps a scalar parameter to points in 3D space. Surfaces only depend
// on this capability set, so any curve representation — lines, Béziers,
// B-splines, or custom types — can serve as a boundary curve.
//
// [Surface.SetupLoop] reparametrizes and reverses curves in place, which is
// why Normalize and Reverse are part of the interface and why implementations
// use pointer receivers.
type Curve interface {
	// Eval evaluates the curve at parameter t. After Normalize, t is in the
	// range [0, 1].
	Eval(t float64) r3.Vec

	// EvalAll evaluates the curve and its derivatives up to the given order.
	// The result holds order+1 vectors: the point at index 0, the k-th
	// derivative at index k. Derivatives beyond the curve's degree are zero.
	EvalAll(t float64, order int) []r3.Vec

	// Normalize reparametrizes the curve so that its domain is [0, 1].
	Normalize()

	// Reverse flips the direction of the curve.
	Reverse()

	Start() r3.Vec
	End() r3.Vec
}
