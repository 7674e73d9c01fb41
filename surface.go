package transfinite

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// epsilon is the boundary-detection threshold: a side whose d-coordinate is
// below it counts as lying on that side, which switches the blend functions
// to their singular branches instead of dividing by a vanishing distance.
const epsilon = 1.0e-5

// Surface is a multi-sided surface interpolating a closed loop of boundary
// curves. [SideBased] and [CornerBased] implement it with different blending
// schemes.
//
// The lifecycle is: set curves with SetCurve or SetCurves, call SetupLoop
// once to orient the loop and wire adjacency, then Update before evaluating.
// Update must run again whenever a curve changes. Evaluating an empty surface
// or one whose Update was skipped is undefined.
type Surface interface {
	// Eval evaluates the surface at a domain parameter point.
	Eval(uv r2.Vec) r3.Vec
	// EvalMesh samples the surface over the domain's discretization and
	// returns the resulting triangle mesh.
	EvalMesh(resolution int) *TriMesh

	SetCurve(i int, c Curve)
	SetCurves(curves []Curve)
	SetGamma(use bool)
	SetupLoop()
	Update()
	UpdateRibbon(i int)
	Ribbon(i int) *Ribbon
	Domain() *Domain
	Parameterization() *Parameterization
}

// cornerData holds the interpolation data of one corner: its position, the
// two side tangents pointing away from it, and the twist vectors estimating
// the surface's mixed derivative there. Corner i sits between sides i and
// i+1. The data is recomputed on every update and never persisted beyond it.
type cornerData struct {
	point    r3.Vec
	tangent1 r3.Vec
	tangent2 r3.Vec
	twist1   r3.Vec
	twist2   r3.Vec
}

// base carries the machinery shared by all surface variants: the ribbons,
// the domain and its parameterization, corner data, and the blend functions.
type base struct {
	n        int
	ribbons  []*Ribbon
	corners  []cornerData
	domain   *Domain
	param    *Parameterization
	useGamma bool
}

func newBase() base {
	d := &Domain{}
	return base{
		domain:   d,
		param:    NewParameterization(d),
		useGamma: true,
	}
}

func (s *base) next(i int) int { return (i + 1) % s.n }
func (s *base) prev(i int) int { return (i + s.n - 1) % s.n }

// SetGamma selects whether interior distances are remapped by gamma before
// they enter the side and corner interpolants. Enabled by default.
func (s *base) SetGamma(use bool) {
	s.useGamma = use
}

// SetCurve sets the boundary curve of side i, growing the surface as needed.
// The side's ribbon is replaced; SetupLoop and Update must run before the
// surface is evaluated again.
func (s *base) SetCurve(i int, c Curve) {
	if s.n <= i {
		for len(s.ribbons) <= i {
			s.ribbons = append(s.ribbons, nil)
		}
		s.n = i + 1
	}
	s.ribbons[i] = &Ribbon{}
	s.ribbons[i].SetCurve(c)
	s.domain.SetSide(i, c)
}

// SetCurves replaces the whole boundary loop, resetting the topology.
func (s *base) SetCurves(curves []Curve) {
	s.ribbons = make([]*Ribbon, 0, len(curves))
	for _, c := range curves {
		r := &Ribbon{}
		r.SetCurve(c)
		s.ribbons = append(s.ribbons, r)
	}
	s.domain.SetSides(curves)
	s.n = len(curves)
}

// SetupLoop makes the boundary a consistently oriented, consistently adjacent
// closed loop: every curve is normalized to [0, 1], neighbor references are
// wired, and curves are reversed where needed so that each curve's end meets
// the next curve's start. Curve 0 has no prior orientation to match, so it is
// oriented against curve 1 by comparing all four start/end combinations;
// every later curve is greedily chained to its predecessor's end.
func (s *base) SetupLoop() {
	for _, r := range s.ribbons {
		r.Curve().Normalize()
	}
	for i := 0; i < s.n; i++ {
		rp, rn := s.ribbons[s.prev(i)], s.ribbons[s.next(i)]
		s.ribbons[i].SetNeighbors(rp, rn)
		start := s.ribbons[i].Curve().Eval(0.0)
		end := s.ribbons[i].Curve().Eval(1.0)
		if i == 0 {
			nStart := rn.Curve().Eval(0.0)
			nEnd := rn.Curve().Eval(1.0)
			endToStart := r3.Norm(r3.Sub(end, nStart))
			endToEnd := r3.Norm(r3.Sub(end, nEnd))
			startToStart := r3.Norm(r3.Sub(start, nStart))
			startToEnd := r3.Norm(r3.Sub(start, nEnd))
			if math.Min(startToStart, startToEnd) < math.Min(endToStart, endToEnd) {
				s.ribbons[i].Curve().Reverse()
				s.ribbons[i].Curve().Normalize()
			}
		} else {
			pEnd := rp.Curve().Eval(1.0)
			if r3.Norm(r3.Sub(end, pEnd)) < r3.Norm(r3.Sub(start, pEnd)) {
				s.ribbons[i].Curve().Reverse()
				s.ribbons[i].Curve().Normalize()
			}
		}
	}
}

// UpdateRibbon recomputes the data derived from the curve of side i: the
// side's ribbon and the two corners it touches.
func (s *base) UpdateRibbon(i int) {
	if s.domain.Update() {
		s.param.Update()
	}
	if len(s.corners) != s.n {
		s.corners = make([]cornerData, s.n)
	}
	s.ribbons[i].Update()
	s.updateCorner(s.prev(i))
	s.updateCorner(i)
}

// Update recomputes all derived data: domain, parameterization, ribbons, and
// corner data. It must run before the first evaluation and after any curve
// change.
func (s *base) Update() {
	if s.domain.Update() {
		s.param.Update()
	}
	for _, r := range s.ribbons {
		r.Update()
	}
	s.updateCorners()
}

// Ribbon returns the ribbon of side i.
func (s *base) Ribbon(i int) *Ribbon { return s.ribbons[i] }

// Domain returns the surface's parameter domain.
func (s *base) Domain() *Domain { return s.domain }

// Parameterization returns the mapping from domain points to per-side (s, d)
// coordinates.
func (s *base) Parameterization() *Parameterization { return s.param }

// updateCorner recomputes the data of corner i, between sides i and i+1. The
// corner is where curve i ends and curve i+1 starts; both tangents are
// sign-adjusted to point away from it. The twists estimate the surface's
// mixed derivative at the corner by finite differences along the two ribbons.
func (s *base) updateCorner(i int) {
	const step = 1.0e-4
	ip := s.next(i)

	der := s.ribbons[i].Curve().EvalAll(1.0, 1)
	s.corners[i].point = der[0]
	s.corners[i].tangent1 = r3.Scale(-1.0, der[1])
	der = s.ribbons[ip].Curve().EvalAll(0.0, 1)
	s.corners[i].tangent2 = der[1]
	d1 := s.ribbons[i].Eval(r2.Vec{X: 1.0, Y: 1.0})
	d2 := s.ribbons[i].Eval(r2.Vec{X: 1.0 - step, Y: 1.0})
	s.corners[i].twist1 = r3.Scale(1.0/step, r3.Sub(d2, d1))
	d1 = s.ribbons[ip].Eval(r2.Vec{X: 0.0, Y: 1.0})
	d2 = s.ribbons[ip].Eval(r2.Vec{X: step, Y: 1.0})
	s.corners[i].twist2 = r3.Scale(1.0/step, r3.Sub(d2, d1))
}

func (s *base) updateCorners() {
	s.corners = make([]cornerData, s.n)
	for i := 0; i < s.n; i++ {
		s.updateCorner(i)
	}
}

// cornerCorrection evaluates the interpolant of corner i at local corner
// coordinates (si, si1), both 0 at the corner itself: the corner point, the
// two tangent terms, and the twist term.
func (s *base) cornerCorrection(i int, si, si1 float64) r3.Vec {
	si = clamp01(si)
	si1 = clamp01(si1)
	p := s.corners[i].point
	p = r3.Add(p, r3.Scale(s.gamma(si), s.corners[i].tangent1))
	p = r3.Add(p, r3.Scale(s.gamma(si1), s.corners[i].tangent2))
	twist := rationalTwist(si, si1, s.corners[i].twist1, s.corners[i].twist2)
	return r3.Add(p, r3.Scale(s.gamma(si)*s.gamma(si1), twist))
}

// sideInterpolant evaluates the ribbon of side i at (si, di), with si clamped
// to [0, 1] and di remapped by gamma.
func (s *base) sideInterpolant(i int, si, di float64) r3.Vec {
	si = clamp01(si)
	di = math.Max(s.gamma(di), 0.0)
	return s.ribbons[i].Eval(r2.Vec{X: si, Y: di})
}

// blendCorner returns the blend weight of every corner interpolant. Weights
// form a partition of unity. Interior points weight corner i by the inverse
// squared product of the two adjacent side distances; on the boundary the
// inverse distances become singular, so boundary points switch to dedicated
// branches: with one side on the boundary the two corners of that side split
// the weight by the inverse squared distances of the outer neighboring
// sides, with two or more only the corner between two boundary sides counts.
func (s *base) blendCorner(sds []r2.Vec) []float64 {
	blf := make([]float64, 0, s.n)

	closeToBoundary := 0
	for _, sd := range sds {
		if sd.Y < epsilon {
			closeToBoundary++
		}
	}

	if closeToBoundary > 0 {
		for i := 0; i < s.n; i++ {
			ip := s.next(i)
			switch {
			case closeToBoundary > 1:
				if sds[i].Y < epsilon && sds[ip].Y < epsilon {
					blf = append(blf, 1.0)
				} else {
					blf = append(blf, 0.0)
				}
			case sds[i].Y < epsilon:
				tmp := math.Pow(sds[ip].Y, -2.0)
				blf = append(blf, tmp/(tmp+math.Pow(sds[s.prev(i)].Y, -2.0)))
			case sds[ip].Y < epsilon:
				tmp := math.Pow(sds[i].Y, -2.0)
				blf = append(blf, tmp/(tmp+math.Pow(sds[s.next(ip)].Y, -2.0)))
			default:
				blf = append(blf, 0.0)
			}
		}
		return blf
	}

	denominator := 0.0
	for i := 0; i < s.n; i++ {
		blf = append(blf, math.Pow(sds[i].Y*sds[s.next(i)].Y, -2.0))
		denominator += blf[i]
	}
	for i := range blf {
		blf[i] /= denominator
	}
	return blf
}

// blendSideSingular returns the blend weight of every side interpolant.
// Weights form a partition of unity: interior points weight side i by its
// inverse squared distance, boundary points split the weight equally among
// the sides they lie on.
func (s *base) blendSideSingular(sds []r2.Vec) []float64 {
	blf := make([]float64, 0, s.n)

	closeToBoundary := 0
	for _, sd := range sds {
		if sd.Y < epsilon {
			closeToBoundary++
		}
	}

	if closeToBoundary > 0 {
		blendVal := 1.0 / float64(closeToBoundary)
		for _, sd := range sds {
			if sd.Y < epsilon {
				blf = append(blf, blendVal)
			} else {
				blf = append(blf, 0.0)
			}
		}
		return blf
	}

	denominator := 0.0
	for i, sd := range sds {
		blf = append(blf, math.Pow(sd.Y, -2.0))
		denominator += blf[i]
	}
	for i := range blf {
		blf[i] /= denominator
	}
	return blf
}

// gamma remaps an interior distance to shape the blending decay. When
// enabled it compresses [0, ∞) onto [0, 1/2); gamma(0) is 0 either way.
func (s *base) gamma(d float64) float64 {
	if s.useGamma {
		return d / (2.0*d + 1.0)
	}
	return d
}

// blendHermite is the cubic Hermite step from 1 at x=0 to 0 at x=1, with
// zero derivative at both ends.
func blendHermite(x float64) float64 {
	x2 := x * x
	return 2.0*x*x2 - 3.0*x2 + 1.0
}

// rationalTwist blends the two twist vectors by the barycentric weights
// (u, v). Both distances vanish at the corner itself, where the blend
// degenerates to the zero vector.
func rationalTwist(u, v float64, f, g r3.Vec) r3.Vec {
	if math.Abs(u+v) < epsilon {
		return r3.Vec{}
	}
	return r3.Scale(1.0/(u+v), r3.Add(r3.Scale(u, f), r3.Scale(v, g)))
}

// evalMesh samples eval over the domain's discretization. Topology decisions
// all live in the domain; this is a pure mapping.
func (s *base) evalMesh(eval func(r2.Vec) r3.Vec, resolution int) *TriMesh {
	mesh := s.domain.MeshTopology(resolution)
	uvs := s.domain.Parameters(resolution)
	points := make([]r3.Vec, 0, len(uvs))
	for _, uv := range uvs {
		points = append(points, eval(uv))
	}
	mesh.SetPoints(points)
	return mesh
}

func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0.0), 1.0)
}
