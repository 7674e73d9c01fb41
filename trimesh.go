package transfinite

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// TriMesh is a triangle mesh: a list of points and a list of triangles
// indexing into it. Topology and geometry are set independently, so a mesh's
// connectivity can be built before its points are known.
type TriMesh struct {
	points    []r3.Vec
	triangles [][3]int
}

// ResizePoints sets the number of points, keeping existing ones.
func (m *TriMesh) ResizePoints(n int) {
	if n <= cap(m.points) {
		m.points = m.points[:n]
		return
	}
	points := make([]r3.Vec, n)
	copy(points, m.points)
	m.points = points
}

// SetPoints replaces all points of the mesh.
func (m *TriMesh) SetPoints(points []r3.Vec) {
	m.points = slices.Clone(points)
}

// SetPoint sets the point at index i.
func (m *TriMesh) SetPoint(i int, p r3.Vec) {
	m.points[i] = p
}

// AddTriangle appends the triangle (a, b, c).
func (m *TriMesh) AddTriangle(a, b, c int) {
	m.triangles = append(m.triangles, [3]int{a, b, c})
}

// Points returns the mesh's points. The slice is owned by the mesh.
func (m *TriMesh) Points() []r3.Vec { return m.points }

// Triangles returns the mesh's triangles as point-index triples. The slice is
// owned by the mesh.
func (m *TriMesh) Triangles() [][3]int { return m.triangles }

// ClosestTriangle returns the corner points of the triangle closest to p,
// using exact point-triangle distances over all faces.
func (m *TriMesh) ClosestTriangle(p r3.Vec) [3]r3.Vec {
	var closest [3]r3.Vec
	best := math.Inf(1)
	for _, tri := range m.triangles {
		a, b, c := m.points[tri[0]], m.points[tri[1]], m.points[tri[2]]
		q := closestPointOnTriangle(p, a, b, c)
		if d := r3.Norm2(r3.Sub(p, q)); d < best {
			best = d
			closest = [3]r3.Vec{a, b, c}
		}
	}
	return closest
}

// WriteOBJ writes the mesh in Wavefront OBJ format.
func (m *TriMesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.points {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for _, tri := range m.triangles {
		// OBJ indices are 1-based.
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOBJFile writes the mesh in Wavefront OBJ format to a file.
func (m *TriMesh) WriteOBJFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing mesh: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("writing mesh: %w", cerr)
		}
	}()
	return m.WriteOBJ(f)
}

// closestPointOnTriangle returns the point of triangle (a, b, c) closest to
// p, by classifying p against the triangle's Voronoi regions (Ericson,
// Real-Time Collision Detection, §5.1.5).
func closestPointOnTriangle(p, a, b, c r3.Vec) r3.Vec {
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	ap := r3.Sub(p, a)
	d1 := r3.Dot(ab, ap)
	d2 := r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := r3.Sub(p, b)
	d3 := r3.Dot(ab, bp)
	d4 := r3.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return r3.Add(a, r3.Scale(v, ab))
	}

	cp := r3.Sub(p, c)
	d5 := r3.Dot(ab, cp)
	d6 := r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return r3.Add(a, r3.Scale(w, ac))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return r3.Add(b, r3.Scale(w, r3.Sub(c, b)))
	}

	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return r3.Add(a, r3.Add(r3.Scale(v, ab), r3.Scale(w, ac)))
}
