package transfinite

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// CornerBased is a multi-sided surface that blends one interpolant per
// corner. Each corner interpolant sums the two adjacent side interpolants and
// subtracts the corner correction, so the doubly counted corner behavior
// cancels and the boundary curves are reproduced exactly.
type CornerBased struct {
	base
}

var _ Surface = (*CornerBased)(nil)

func NewCornerBased() *CornerBased {
	return &CornerBased{base: newBase()}
}

func (s *CornerBased) Eval(uv r2.Vec) r3.Vec {
	sds := s.param.MapToRibbons(uv)
	blends := s.blendCorner(sds)
	var p r3.Vec
	for i := 0; i < s.n; i++ {
		p = r3.Add(p, r3.Scale(blends[i], s.cornerInterpolant(i, sds)))
	}
	return p
}

// cornerInterpolant evaluates the interpolant of corner i. Near the corner
// the s-parameter of each adjacent side serves as the distance coordinate of
// the other, so both side interpolants are evaluated in corner-local
// coordinates and their shared linear behavior is removed by the corner
// correction.
func (s *CornerBased) cornerInterpolant(i int, sds []r2.Vec) r3.Vec {
	ip := s.next(i)
	si := sds[i].X
	si1 := sds[ip].X
	p := r3.Add(
		s.sideInterpolant(i, si, si1),
		s.sideInterpolant(ip, si1, 1.0-si),
	)
	return r3.Sub(p, s.cornerCorrection(i, 1.0-si, si1))
}

func (s *CornerBased) EvalMesh(resolution int) *TriMesh {
	return s.evalMesh(s.Eval, resolution)
}
