package transfinite

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// SideBased is a multi-sided surface that blends one interpolant per side
// with the singular inverse-distance-squared weights. On side i the weight of
// that side reaches 1 and the surface reproduces the boundary curve exactly.
type SideBased struct {
	base
}

var _ Surface = (*SideBased)(nil)

func NewSideBased() *SideBased {
	return &SideBased{base: newBase()}
}

func (s *SideBased) Eval(uv r2.Vec) r3.Vec {
	sds := s.param.MapToRibbons(uv)
	blends := s.blendSideSingular(sds)
	var p r3.Vec
	for i := 0; i < s.n; i++ {
		p = r3.Add(p, r3.Scale(blends[i], s.sideInterpolant(i, sds[i].X, sds[i].Y)))
	}
	return p
}

func (s *SideBased) EvalMesh(resolution int) *TriMesh {
	return s.evalMesh(s.Eval, resolution)
}
