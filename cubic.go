package transfinite

import "gonum.org/v1/gonum/spatial/r3"

// CubicBez is a cubic Bézier segment in space, parametrized on [0, 1].
type CubicBez struct {
	P0 r3.Vec
	P1 r3.Vec
	P2 r3.Vec
	P3 r3.Vec
}

var _ Curve = (*CubicBez)(nil)

func (c *CubicBez) Eval(t float64) r3.Vec {
	mt := 1.0 - t
	p := r3.Scale(mt*mt*mt, c.P0)
	p = r3.Add(p, r3.Scale(3.0*mt*mt*t, c.P1))
	p = r3.Add(p, r3.Scale(3.0*mt*t*t, c.P2))
	return r3.Add(p, r3.Scale(t*t*t, c.P3))
}

func (c *CubicBez) EvalAll(t float64, order int) []r3.Vec {
	der := make([]r3.Vec, order+1)
	der[0] = c.Eval(t)
	if order < 1 {
		return der
	}
	mt := 1.0 - t
	d01 := r3.Sub(c.P1, c.P0)
	d12 := r3.Sub(c.P2, c.P1)
	d23 := r3.Sub(c.P3, c.P2)
	d := r3.Scale(mt*mt, d01)
	d = r3.Add(d, r3.Scale(2.0*mt*t, d12))
	d = r3.Add(d, r3.Scale(t*t, d23))
	der[1] = r3.Scale(3.0, d)
	if order < 2 {
		return der
	}
	dd1 := r3.Sub(d12, d01)
	dd2 := r3.Sub(d23, d12)
	der[2] = r3.Scale(6.0, r3.Add(r3.Scale(mt, dd1), r3.Scale(t, dd2)))
	if order >= 3 {
		der[3] = r3.Scale(6.0, r3.Sub(dd2, dd1))
	}
	return der
}

func (c *CubicBez) Normalize() {}

func (c *CubicBez) Reverse() {
	c.P0, c.P1, c.P2, c.P3 = c.P3, c.P2, c.P1, c.P0
}

func (c *CubicBez) Start() r3.Vec { return c.P0 }

func (c *CubicBez) End() r3.Vec { return c.P3 }

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c *CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	p01 := midpoint(c.P0, c.P1)
	p12 := midpoint(c.P1, c.P2)
	p23 := midpoint(c.P2, c.P3)
	return CubicBez{c.P0, p01, midpoint(p01, p12), pm},
		CubicBez{pm, midpoint(p12, p23), p23, c.P3}
}

func midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}
