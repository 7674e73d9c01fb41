package transfinite

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Ribbon extends one boundary curve into the surface's interior. Evaluated at
// (s, d), it returns the boundary point at s offset into the interior by d
// times a cross-boundary tangent, so d = 0 lies exactly on the curve.
//
// The cross tangent is a Hermite blend of the neighboring curves' end
// tangents: at s = 0 it equals the reversed tangent of the previous curve at
// its end, at s = 1 the tangent of the next curve at its start. This makes
// ribbons of adjacent sides agree at the shared corner, which the surface's
// corner correction relies on.
//
// Neighbor references are non-owning; the Surface owns all ribbons of a curve
// set and rewires the references whenever the set changes.
type Ribbon struct {
	curve Curve
	prev  *Ribbon
	next  *Ribbon

	// Cross-tangent endpoints, recomputed by Update.
	prevTangent r3.Vec
	nextTangent r3.Vec
}

func (r *Ribbon) SetCurve(c Curve) { r.curve = c }

func (r *Ribbon) Curve() Curve { return r.curve }

func (r *Ribbon) SetNeighbors(prev, next *Ribbon) {
	r.prev = prev
	r.next = next
}

// Update recomputes the cross-tangent endpoints from the neighboring curves.
// It must run after the loop's orientation is settled and whenever a
// neighboring curve changes.
func (r *Ribbon) Update() {
	der := r.prev.curve.EvalAll(1.0, 1)
	r.prevTangent = r3.Scale(-1.0, der[1])
	der = r.next.curve.EvalAll(0.0, 1)
	r.nextTangent = der[1]
}

// Eval returns the ribbon point for sd = (s, d), s being the position along
// the boundary and d the distance-like parameter into the interior.
func (r *Ribbon) Eval(sd r2.Vec) r3.Vec {
	return r3.Add(r.curve.Eval(sd.X), r3.Scale(sd.Y, r.crossTangent(sd.X)))
}

func (r *Ribbon) crossTangent(s float64) r3.Vec {
	return r3.Add(
		r3.Scale(blendHermite(s), r.prevTangent),
		r3.Scale(blendHermite(1.0-s), r.nextTangent),
	)
}
