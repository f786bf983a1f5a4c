package geom

import "github.com/go-brep/kernel/kernelerr"

// BSplineSurface is a non-rational tensor-product B-spline surface: a
// grid of control points indexed [u-index][v-index], evaluated by
// applying De Boor's algorithm along each parametric direction in turn.
type BSplineSurface struct {
	uKnots, vKnots KnotVector
	controls       [][]Point3 // controls[i][j], i over u, j over v
}

// NewBSplineSurface validates the control grid's shape against both knot
// vectors' NumControlPoints and returns the surface, or
// kernelerr.ErrInvalidControlPointGrid on mismatch.
func NewBSplineSurface(uKnots, vKnots KnotVector, controls [][]Point3) (*BSplineSurface, error) {
	nu := uKnots.NumControlPoints()
	nv := vKnots.NumControlPoints()
	if len(controls) != nu {
		return nil, kernelerr.ErrInvalidControlPointGrid
	}
	grid := make([][]Point3, nu)
	for i, row := range controls {
		if len(row) != nv {
			return nil, kernelerr.ErrInvalidControlPointGrid
		}
		grid[i] = make([]Point3, nv)
		copy(grid[i], row)
	}
	return &BSplineSurface{uKnots: uKnots, vKnots: vKnots, controls: grid}, nil
}

// Bounds returns the surface's (u, v) parameter domain.
func (s *BSplineSurface) Bounds() (Interval, Interval) {
	return s.uKnots.Domain(), s.vKnots.Domain()
}

// Knots returns the surface's u and v knot vectors.
func (s *BSplineSurface) Knots() (KnotVector, KnotVector) { return s.uKnots, s.vKnots }

// ControlGrid returns a copy of the surface's control point grid, dual to
// NewBSplineSurface's constructor argument.
func (s *BSplineSurface) ControlGrid() [][]Point3 {
	grid := make([][]Point3, len(s.controls))
	for i, row := range s.controls {
		grid[i] = make([]Point3, len(row))
		copy(grid[i], row)
	}
	return grid
}

// Evaluate evaluates the surface at (u, v) via De Boor's algorithm along
// v for each u-row spanning the u span, then De Boor along u.
func (s *BSplineSurface) Evaluate(u, v float64) Point3 {
	u = s.uKnots.Domain().Clamp(u)
	v = s.vKnots.Domain().Clamp(v)
	pu := s.uKnots.degree
	ku := s.uKnots.FindSpan(u)

	isolated := make([]Point3, pu+1)
	for i := 0; i <= pu; i++ {
		isolated[i] = deBoorRow(s.vKnots, s.controls[i+ku-pu], v)
	}
	return deBoor1D(s.uKnots, isolated, ku, u)
}

// deBoorRow runs De Boor's algorithm over a single row of control points
// along the v direction.
func deBoorRow(knots KnotVector, row []Point3, v float64) Point3 {
	k := knots.FindSpan(v)
	return deBoor1D(knots, row, k, v)
}

// deBoor1D is the shared De Boor recurrence used by BSplineCurve3D,
// deBoorRow, and the u-direction pass of BSplineSurface.Evaluate. ctrl
// must already be the length of the full control array for curves, or a
// pre-sliced window of length degree+1 for the surface's second pass.
func deBoor1D(knots KnotVector, ctrl []Point3, k int, t float64) Point3 {
	p := knots.degree
	var d []Point3
	if len(ctrl) == p+1 {
		d = make([]Point3, p+1)
		copy(d, ctrl)
	} else {
		d = make([]Point3, p+1)
		for j := 0; j <= p; j++ {
			d[j] = ctrl[j+k-p]
		}
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			left := knots.At(j + k - p)
			right := knots.At(j + 1 + k - r)
			alpha := safeDivOrOne(t-left, right-left)
			d[j] = d[j-1].Lerp(d[j], alpha)
		}
	}
	return d[p]
}

// DU returns the partial derivative of the surface w.r.t. u at (u, v) via
// a central finite difference over an isolated v-slice curve. This is
// simpler than deriving the tensor-product control-point differencing
// formula in both directions and is accurate to the kernel's tolerance
// for the smooth surfaces this kernel models.
func (s *BSplineSurface) DU(u, v float64) Vector3 {
	dom, _ := s.Bounds()
	return surfaceCentralDiffU(s, u, v, dom)
}

// DV returns the partial derivative of the surface w.r.t. v at (u, v).
func (s *BSplineSurface) DV(u, v float64) Vector3 {
	_, dom := s.Bounds()
	return surfaceCentralDiffV(s, u, v, dom)
}

// Normal returns the unit normal DU x DV at (u, v). The second return is
// false where DU or DV is (near) zero, e.g. at a degenerate pole where
// the control grid collapses several rows to a single point.
func (s *BSplineSurface) Normal(u, v float64) (Vector3, bool) {
	return surfaceNormal(s, u, v)
}

// Inclusion reports whether c's image lies on the surface by sampling
// the curve and inverting each sample, accepting within TopoEpsilon.
func (s *BSplineSurface) Inclusion(c Curve) bool {
	return sampledInclusion(s, c)
}

// Invert returns the (u, v) nearest to p via a safeguarded 2-D Newton
// search.
func (s *BSplineSurface) Invert(p Point3, hint *UV) (UV, *ConvergenceWarning) {
	return searchNearestOnSurface(s, p, hint)
}
