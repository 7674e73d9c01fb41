// Package transfinite constructs smooth, multi-sided free-form surfaces by
// transfinite interpolation over an arbitrary number of boundary curves, and
// tessellates the result into a triangle mesh.
//
// # Surfaces
//
// A surface is defined by a closed loop of N boundary curves. Each curve is
// wrapped in a [Ribbon], which extends the curve into the interior with
// cross-derivative information. The surface blends per-side and per-corner
// interpolants into a single evaluator that reproduces every boundary curve
// exactly and behaves consistently at the corners.
//
// Two blending schemes are provided:
//   - [SideBased] combines one interpolant per side with a singular
//     inverse-distance blend.
//   - [CornerBased] combines one interpolant per corner, each built from the
//     two adjacent side interpolants and a corner correction that accounts
//     for position, tangents, and twist at the corner.
//
// Typical use:
//
//	surf := transfinite.NewSideBased()
//	surf.SetCurves(curves) // N curves forming a closed loop
//	surf.SetupLoop()       // orient the loop, wire adjacency
//	surf.Update()          // recompute ribbons and corner data
//	mesh := surf.EvalMesh(30)
//
// [Surface.SetupLoop] normalizes every curve's parametrization to [0, 1] and
// reverses curves as needed so that each curve's end meets the next curve's
// start. [Surface.Update] must run again whenever a curve changes.
//
// # Curves
//
// [Curve] describes parametrized space curves as a capability set: evaluation,
// derivative evaluation, reparametrization to [0, 1], and reversal. The
// package includes the following implementations:
//   - [Line]
//   - [CubicBez]
//   - [BSpline]
//
// Any other curve representation can be used by implementing [Curve].
//
// # Parameter domain
//
// The surface's 2D parameter domain is a regular N-gon ([Domain]), and
// [Parameterization] maps a domain point to one (s, d) coordinate pair per
// side, where s is the position along the side and d the normalized distance
// from it. These collaborators are exported for callers that want to sample
// the surface themselves; [Surface.EvalMesh] drives them for the common case.
//
// # Meshes
//
// [TriMesh] is a thin triangle-mesh container. It supports Wavefront OBJ
// export and exact closest-triangle queries.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Transfinite surface interpolation over irregular n-sided domains] by Várady, Rockwood and Salvi
//   - The NURBS Book by Piegl and Tiller (basis function and derivative algorithms)
//   - [Real-Time Collision Detection] by Ericson (closest point on triangle)
//
// [Transfinite surface interpolation over irregular n-sided domains]: https://doi.org/10.1016/j.cad.2011.08.028
// [Real-Time Collision Detection]: https://realtimecollisiondetection.net/
package transfinite
