package transfinite

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewBSplineErrors(t *testing.T) {
	ctrl := []r3.Vec{{}, {X: 1}, {X: 2}, {X: 3}}
	for _, tc := range []struct {
		name   string
		degree int
		knots  []float64
	}{
		{"degree zero", 0, []float64{0, 0, 0, 1, 1, 1}},
		{"knot count", 3, []float64{0, 0, 0, 0, 1, 1, 1}},
		{"unsorted knots", 3, []float64{0, 0, 0, 1, 0, 1, 1, 1}},
		{"too few control points", 4, []float64{0, 0, 0, 0, 0, 1, 1, 1, 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewBSpline(tc.degree, tc.knots, ctrl); err == nil {
				t.Error("got nil error")
			}
		})
	}
}

// A clamped cubic B-spline with no interior knots is a cubic Bézier; the two
// evaluators must agree.
func TestBSplineBezierEquivalence(t *testing.T) {
	ctrl := []r3.Vec{
		{},
		{X: 1.0 / 3.0, Z: 1},
		{X: 2.0 / 3.0, Y: 1.0 / 3.0, Z: -1},
		{X: 1, Y: 1},
	}
	b, err := NewBSpline(3, []float64{0, 0, 0, 0, 1, 1, 1, 1}, ctrl)
	if err != nil {
		t.Fatal(err)
	}
	c := CubicBez{ctrl[0], ctrl[1], ctrl[2], ctrl[3]}

	for i := 0; i < 11; i++ {
		ts := float64(i) / 10.0
		want := c.EvalAll(ts, 2)
		got := b.EvalAll(ts, 2)
		diff(t, want[0], b.Eval(ts), approxVecs(1e-12))
		diff(t, want[0], got[0], approxVecs(1e-12))
		diff(t, want[1], got[1], approxVecs(1e-10))
		diff(t, want[2], got[2], approxVecs(1e-9))
	}
}

func TestBSplineDerivFiniteDifference(t *testing.T) {
	b, err := NewBSpline(2,
		[]float64{0, 0, 0, 0.3, 0.7, 1, 1, 1},
		[]r3.Vec{{}, {X: 1, Y: 2}, {X: 2, Y: -1, Z: 1}, {X: 3, Z: 2}, {X: 4, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	// A grid that stays clear of the interior knots, where the second
	// derivative jumps and a centered difference straddles both sides.
	const n = 20
	const delta = 1e-6
	for i := 0; i < n; i++ {
		ts := (2.0*float64(i) + 1.0) / (2.0 * float64(n))
		der := b.EvalAll(ts, 1)
		dApprox := r3.Scale(1.0/(2.0*delta), r3.Sub(b.Eval(ts+delta), b.Eval(ts-delta)))
		if l := r3.Norm(r3.Sub(der[1], dApprox)); l >= 1e-5 {
			t.Errorf("t=%g: got difference of %g", ts, l)
		}
	}
}

func TestBSplineEvalAllHighOrder(t *testing.T) {
	// Derivatives beyond the degree are zero.
	b, err := NewBSpline(2,
		[]float64{0, 0, 0, 1, 1, 1},
		[]r3.Vec{{}, {X: 1, Y: 1}, {X: 2}})
	if err != nil {
		t.Fatal(err)
	}
	der := b.EvalAll(0.5, 4)
	if len(der) != 5 {
		t.Fatalf("got %d derivatives, want 5", len(der))
	}
	diff(t, r3.Vec{}, der[3])
	diff(t, r3.Vec{}, der[4])
}

func TestBSplineNormalize(t *testing.T) {
	knots := []float64{2, 2, 2, 5, 8, 8, 8}
	ctrl := []r3.Vec{{}, {X: 1, Y: 3}, {X: 2, Y: -1, Z: 2}, {X: 4}}
	orig, err := NewBSpline(2, knots, ctrl)
	if err != nil {
		t.Fatal(err)
	}
	norm, err := NewBSpline(2, knots, ctrl)
	if err != nil {
		t.Fatal(err)
	}
	norm.Normalize()

	lo, hi := norm.domain()
	diff(t, 0.0, lo)
	diff(t, 1.0, hi)
	for i := 0; i < 11; i++ {
		u := 2.0 + 6.0*float64(i)/10.0
		diff(t, orig.Eval(u), norm.Eval((u-2.0)/6.0), approxVecs(1e-12))
	}
}

func TestBSplineReverse(t *testing.T) {
	knots := []float64{0, 0, 0, 0.25, 0.6, 1, 1, 1}
	ctrl := []r3.Vec{{}, {X: 1, Y: 2}, {X: 2, Z: 1}, {X: 3, Y: -1}, {X: 4}}
	orig, err := NewBSpline(2, knots, ctrl)
	if err != nil {
		t.Fatal(err)
	}
	rev, err := NewBSpline(2, knots, ctrl)
	if err != nil {
		t.Fatal(err)
	}
	rev.Reverse()

	diff(t, orig.End(), rev.Start(), approxVecs(1e-12))
	diff(t, orig.Start(), rev.End(), approxVecs(1e-12))
	for i := 0; i < 11; i++ {
		u := float64(i) / 10.0
		diff(t, orig.Eval(u), rev.Eval(1.0-u), approxVecs(1e-12))
	}
}

func TestBSplineStartEndClamped(t *testing.T) {
	ctrl := []r3.Vec{{X: -1, Y: 2}, {X: 1}, {X: 2, Y: 2}, {X: 3, Z: 1}}
	b, err := NewBSpline(3, []float64{0, 0, 0, 0, 1, 1, 1, 1}, ctrl)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, ctrl[0], b.Start(), approxVecs(1e-12))
	diff(t, ctrl[3], b.End(), approxVecs(1e-12))
}
