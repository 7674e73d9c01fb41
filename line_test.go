package transfinite

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLineEval(t *testing.T) {
	l := Line{P0: r3.Vec{X: 1, Y: 2, Z: 3}, P1: r3.Vec{X: 3, Y: 2, Z: 7}}
	diff(t, r3.Vec{X: 1, Y: 2, Z: 3}, l.Eval(0))
	diff(t, r3.Vec{X: 3, Y: 2, Z: 7}, l.Eval(1))
	diff(t, r3.Vec{X: 2, Y: 2, Z: 5}, l.Eval(0.5))
	diff(t, l.Midpoint(), l.Eval(0.5))
}

func TestLineEvalAll(t *testing.T) {
	l := Line{P1: r3.Vec{X: 2, Y: -4, Z: 6}}
	der := l.EvalAll(0.25, 2)
	if len(der) != 3 {
		t.Fatalf("got %d derivatives, want 3", len(der))
	}
	diff(t, l.Eval(0.25), der[0])
	diff(t, r3.Vec{X: 2, Y: -4, Z: 6}, der[1])
	diff(t, r3.Vec{}, der[2])
}

func TestLineReverse(t *testing.T) {
	l := Line{P0: r3.Vec{X: 1}, P1: r3.Vec{Y: 1}}
	orig := l
	l.Reverse()
	diff(t, orig.P1, l.Start())
	diff(t, orig.P0, l.End())
	diff(t, orig.Eval(0.25), l.Eval(0.75))
}

func TestLineLength(t *testing.T) {
	l := Line{P0: r3.Vec{X: 1, Y: 2}, P1: r3.Vec{X: 4, Y: 6}}
	diff(t, 5.0, l.Length())
}
