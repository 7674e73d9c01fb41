package transfinite

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Parameterization maps a domain point to one (s, d) coordinate pair per
// side. d is the perpendicular distance from the side, normalized so that the
// farthest domain vertex is at distance 1; s is the position along the side,
// derived from the raw distances to the two neighboring sides:
//
//	s_i = h_{i-1} / (h_{i-1} + h_{i+1})
//
// This interconnected construction makes s_i equal 0 and 1 at the side's two
// corners and keeps the neighboring sides' s-parameters constant along side i
// (s_{i-1} = 1, s_{i+1} = 0), which the corner-based surface evaluation
// depends on.
type Parameterization struct {
	domain *Domain
	sides  []sideLine
}

type sideLine struct {
	base   r2.Vec
	normal r2.Vec // inward unit normal
	scale  float64
}

func NewParameterization(d *Domain) *Parameterization {
	return &Parameterization{domain: d}
}

// Update caches the side lines of the current domain polygon. It must run
// after every domain update.
func (p *Parameterization) Update() {
	vs := p.domain.Vertices()
	n := len(vs)
	p.sides = make([]sideLine, n)
	for i := range p.sides {
		from := vs[(i+n-1)%n]
		to := vs[i]
		dir := r2.Unit(r2.Sub(to, from))
		normal := r2.Vec{X: -dir.Y, Y: dir.X}
		scale := 0.0
		for _, v := range vs {
			scale = math.Max(scale, r2.Dot(r2.Sub(v, from), normal))
		}
		p.sides[i] = sideLine{base: from, normal: normal, scale: scale}
	}
}

// MapToRibbons returns the (s, d) pair of every side for a domain point.
func (p *Parameterization) MapToRibbons(uv r2.Vec) []r2.Vec {
	n := len(p.sides)
	h := make([]float64, n)
	for i, side := range p.sides {
		h[i] = r2.Dot(r2.Sub(uv, side.base), side.normal)
	}
	sds := make([]r2.Vec, n)
	for i := range sds {
		hp := h[(i+n-1)%n]
		hn := h[(i+1)%n]
		s := 0.5
		if hp+hn > epsilon {
			s = hp / (hp + hn)
		}
		sds[i] = r2.Vec{X: s, Y: h[i] / p.sides[i].scale}
	}
	return sds
}
