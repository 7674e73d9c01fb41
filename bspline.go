package transfinite

import (
	"fmt"
	"slices"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// BSpline is a B-spline curve of arbitrary degree with an explicit knot
// vector. Evaluation and derivative evaluation use the basis function
// algorithms from The NURBS Book (Piegl & Tiller, algorithms A2.2 and A2.3).
type BSpline struct {
	degree int
	knots  []float64
	ctrl   []r3.Vec
}

var _ Curve = (*BSpline)(nil)

// NewBSpline returns a B-spline curve of the given degree. The knot vector
// must be non-decreasing and hold len(ctrl) + degree + 1 values; the curve's
// parameter domain is [knots[degree], knots[len(ctrl)]].
func NewBSpline(degree int, knots []float64, ctrl []r3.Vec) (*BSpline, error) {
	if degree < 1 {
		return nil, fmt.Errorf("degree %d out of range", degree)
	}
	if len(ctrl) < degree+1 {
		return nil, fmt.Errorf("got %d control points, need at least %d for degree %d",
			len(ctrl), degree+1, degree)
	}
	if len(knots) != len(ctrl)+degree+1 {
		return nil, fmt.Errorf("got %d knots, want %d", len(knots), len(ctrl)+degree+1)
	}
	if !sort.Float64sAreSorted(knots) {
		return nil, fmt.Errorf("knot vector is not non-decreasing")
	}
	return &BSpline{
		degree: degree,
		knots:  slices.Clone(knots),
		ctrl:   slices.Clone(ctrl),
	}, nil
}

func (b *BSpline) Degree() int { return b.degree }

func (b *BSpline) Knots() []float64 { return slices.Clone(b.knots) }

func (b *BSpline) ControlPoints() []r3.Vec { return slices.Clone(b.ctrl) }

// domain returns the active knot range.
func (b *BSpline) domain() (float64, float64) {
	return b.knots[b.degree], b.knots[len(b.ctrl)]
}

func (b *BSpline) Eval(u float64) r3.Vec {
	span := b.findSpan(u)
	basis := b.basisFuns(span, u)
	var p r3.Vec
	for j := 0; j <= b.degree; j++ {
		p = r3.Add(p, r3.Scale(basis[j], b.ctrl[span-b.degree+j]))
	}
	return p
}

func (b *BSpline) EvalAll(u float64, order int) []r3.Vec {
	du := min(order, b.degree)
	span := b.findSpan(u)
	ders := b.basisDerivs(span, u, du)
	out := make([]r3.Vec, order+1)
	for k := 0; k <= du; k++ {
		for j := 0; j <= b.degree; j++ {
			out[k] = r3.Add(out[k], r3.Scale(ders[k][j], b.ctrl[span-b.degree+j]))
		}
	}
	return out
}

// Normalize affinely maps the knot vector so that the curve's parameter
// domain becomes [0, 1].
func (b *BSpline) Normalize() {
	lo, hi := b.domain()
	if lo == 0.0 && hi == 1.0 {
		return
	}
	span := hi - lo
	for i, k := range b.knots {
		b.knots[i] = (k - lo) / span
	}
}

// Reverse flips the direction of the curve, reversing the control points and
// mirroring the knot vector within the current parameter domain.
func (b *BSpline) Reverse() {
	lo, hi := b.domain()
	slices.Reverse(b.ctrl)
	rev := make([]float64, len(b.knots))
	for i, k := range b.knots {
		rev[len(b.knots)-1-i] = lo + hi - k
	}
	b.knots = rev
}

func (b *BSpline) Start() r3.Vec {
	lo, _ := b.domain()
	return b.Eval(lo)
}

func (b *BSpline) End() r3.Vec {
	_, hi := b.domain()
	return b.Eval(hi)
}

// findSpan returns the knot span index containing u (algorithm A2.1).
func (b *BSpline) findSpan(u float64) int {
	n := len(b.ctrl) - 1
	if u >= b.knots[n+1] {
		return n
	}
	if u <= b.knots[b.degree] {
		return b.degree
	}
	low, high := b.degree, n+1
	mid := (low + high) / 2
	for u < b.knots[mid] || u >= b.knots[mid+1] {
		if u < b.knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// basisFuns returns the degree+1 nonvanishing basis functions at u
// (algorithm A2.2).
func (b *BSpline) basisFuns(span int, u float64) []float64 {
	p := b.degree
	basis := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	basis[0] = 1.0
	for j := 1; j <= p; j++ {
		left[j] = u - b.knots[span+1-j]
		right[j] = b.knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := basis[r] / (right[r+1] + left[j-r])
			basis[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		basis[j] = saved
	}
	return basis
}

// basisDerivs returns the nonvanishing basis functions and their derivatives
// up to the given order at u (algorithm A2.3). ders[k][j] is the k-th
// derivative of basis function span-degree+j.
func (b *BSpline) basisDerivs(span int, u float64, order int) [][]float64 {
	p := b.degree
	ndu := make([][]float64, p+1)
	for i := range ndu {
		ndu[i] = make([]float64, p+1)
	}
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	ndu[0][0] = 1.0
	for j := 1; j <= p; j++ {
		left[j] = u - b.knots[span+1-j]
		right[j] = b.knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			tmp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		ndu[j][j] = saved
	}

	ders := make([][]float64, order+1)
	for i := range ders {
		ders[i] = make([]float64, p+1)
	}
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	var a [2][]float64
	a[0] = make([]float64, p+1)
	a[1] = make([]float64, p+1)
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1.0
		for k := 1; k <= order; k++ {
			d := 0.0
			rk, pk := r-k, p-k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k - 1
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	f := float64(p)
	for k := 1; k <= order; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= f
		}
		f *= float64(p - k)
	}
	return ders
}
