package transfinite

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Domain is the surface's 2D parameter domain: a regular N-gon inscribed in
// the unit circle, with vertex i at angle 2πi/N. Side i runs from vertex i-1
// to vertex i, so vertex i is the corner between sides i and i+1.
//
// The domain also decides the discretization: MeshTopology and Parameters
// produce, for a given resolution, a triangulation of the polygon and the
// matching ordered list of parameter samples.
type Domain struct {
	n        int
	vertices []r2.Vec
}

// SetSide registers the curve for side i. Only the side count matters for a
// regular domain; the signature carries the curve so that domains shaped by
// side lengths or angles can slot in.
func (d *Domain) SetSide(i int, c Curve) {
	if i >= d.n {
		d.n = i + 1
	}
}

// SetSides replaces all sides.
func (d *Domain) SetSides(curves []Curve) {
	d.n = len(curves)
}

// Update recomputes the domain polygon. It reports whether the topology
// changed since the last update.
func (d *Domain) Update() bool {
	if len(d.vertices) == d.n {
		return false
	}
	d.vertices = make([]r2.Vec, d.n)
	for i := range d.vertices {
		phi := 2.0 * math.Pi * float64(i) / float64(d.n)
		d.vertices[i] = r2.Vec{X: math.Cos(phi), Y: math.Sin(phi)}
	}
	return true
}

// Size returns the number of sides.
func (d *Domain) Size() int { return d.n }

// Vertices returns the domain polygon. The slice is owned by the domain.
func (d *Domain) Vertices() []r2.Vec { return d.vertices }

// Center returns the center of the domain polygon.
func (d *Domain) Center() r2.Vec { return r2.Vec{} }

// ringOffset returns the index of the first point of ring j. Ring 0 is the
// center point; ring j holds n*j points.
func (d *Domain) ringOffset(j int) int {
	return 1 + d.n*j*(j-1)/2
}

// pointCount returns the total number of sample points at a resolution.
func (d *Domain) pointCount(resolution int) int {
	return 1 + d.n*resolution*(resolution+1)/2
}

// MeshTopology triangulates the domain at the given resolution. The mesh's
// points are allocated but unset; Parameters lists the matching parameter
// values in index order.
//
// The discretization is a spider web: the center point, then resolution
// concentric rings of the polygon outline, ring j carrying j points per side.
// Consecutive rings are stitched with triangle strips, the innermost ring
// fans to the center.
func (d *Domain) MeshTopology(resolution int) *TriMesh {
	var mesh TriMesh
	mesh.ResizePoints(d.pointCount(resolution))
	for j := 1; j <= resolution; j++ {
		inner := j - 1
		for i := 0; i < d.n; i++ {
			b := func(k int) int { return d.ringOffset(j) + (i*j+k)%(d.n*j) }
			if inner == 0 {
				mesh.AddTriangle(b(0), b(1), 0)
				continue
			}
			a := func(k int) int { return d.ringOffset(inner) + (i*inner+k)%(d.n*inner) }
			for m := 0; m < j; m++ {
				mesh.AddTriangle(b(m), b(m+1), a(m))
			}
			for m := 1; m < j; m++ {
				mesh.AddTriangle(b(m), a(m), a(m-1))
			}
		}
	}
	return &mesh
}

// Parameters returns the parameter samples for a resolution, in the same
// order as the vertex indices of MeshTopology.
func (d *Domain) Parameters(resolution int) []r2.Vec {
	params := make([]r2.Vec, 0, d.pointCount(resolution))
	params = append(params, d.Center())
	for j := 1; j <= resolution; j++ {
		scale := float64(j) / float64(resolution)
		for i := 0; i < d.n; i++ {
			from := d.vertices[(i+d.n-1)%d.n]
			to := d.vertices[i]
			for k := 0; k < j; k++ {
				t := float64(k) / float64(j)
				edge := r2.Add(from, r2.Scale(t, r2.Sub(to, from)))
				params = append(params, r2.Scale(scale, edge))
			}
		}
	}
	return params
}
