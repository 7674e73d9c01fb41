package transfinite

import "gonum.org/v1/gonum/spatial/r3"

// Line represents a straight line segment between two points in space. Its
// natural parametrization is already linear on [0, 1], so Normalize is a
// no-op.
type Line struct {
	// The line's start point.
	P0 r3.Vec
	// The line's end point.
	P1 r3.Vec
}

var _ Curve = (*Line)(nil)

// Length returns the length of the line.
func (l *Line) Length() float64 {
	return r3.Norm(r3.Sub(l.P1, l.P0))
}

func (l *Line) Eval(t float64) r3.Vec {
	return r3.Add(l.P0, r3.Scale(t, r3.Sub(l.P1, l.P0)))
}

func (l *Line) EvalAll(t float64, order int) []r3.Vec {
	der := make([]r3.Vec, order+1)
	der[0] = l.Eval(t)
	if order >= 1 {
		der[1] = r3.Sub(l.P1, l.P0)
	}
	return der
}

func (l *Line) Normalize() {}

func (l *Line) Reverse() {
	l.P0, l.P1 = l.P1, l.P0
}

func (l *Line) Start() r3.Vec { return l.P0 }

func (l *Line) End() r3.Vec { return l.P1 }

func (l *Line) Midpoint() r3.Vec {
	return l.Eval(0.5)
}
