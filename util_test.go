package transfinite

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxVecs(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b r3.Vec) bool {
		return r3.Norm(r3.Sub(a, b)) <= tol
	})
}

func approxFloats(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b float64) bool {
		return math.Abs(a-b) <= tol
	})
}

// unitSquareCurves returns four lines tracing the unit square in the z=0
// plane, already consistently oriented: each curve's end meets the next
// curve's start.
func unitSquareCurves() []Curve {
	a := r3.Vec{}
	b := r3.Vec{X: 1}
	c := r3.Vec{X: 1, Y: 1}
	d := r3.Vec{Y: 1}
	return []Curve{
		&Line{P0: a, P1: b},
		&Line{P0: b, P1: c},
		&Line{P0: c, P1: d},
		&Line{P0: d, P1: a},
	}
}

// regularLoopCurves returns n lines tracing a regular n-gon inscribed in the
// unit circle in the z=0 plane.
func regularLoopCurves(n int) []Curve {
	corner := func(i int) r3.Vec {
		phi := 2.0 * math.Pi * float64(((i%n)+n)%n) / float64(n)
		return r3.Vec{X: math.Cos(phi), Y: math.Sin(phi)}
	}
	curves := make([]Curve, n)
	for i := range curves {
		curves[i] = &Line{P0: corner(i - 1), P1: corner(i)}
	}
	return curves
}
