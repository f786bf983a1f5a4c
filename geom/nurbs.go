package geom

import "github.com/go-brep/kernel/kernelerr"

// NurbsCurve is a rational B-spline curve: a BSplineCurve3D-shaped De
// Boor recurrence run over homogeneous Point4 control points, projected
// back to Point3 after evaluation. Weights let the curve represent exact
// conics (circles, ellipses) that a non-rational spline can only
// approximate.
type NurbsCurve struct {
	knots    KnotVector
	controls []Point4
}

// NewNurbsCurve validates the control/weight count against the knot
// vector and returns the curve, or kernelerr.ErrInvalidControlPointGrid
// on mismatch.
func NewNurbsCurve(knots KnotVector, controls []Point3, weights []float64) (*NurbsCurve, error) {
	if len(controls) != knots.NumControlPoints() || len(weights) != len(controls) {
		return nil, kernelerr.ErrInvalidControlPointGrid
	}
	hom := make([]Point4, len(controls))
	for i, c := range controls {
		hom[i] = Homogeneous(c, weights[i])
	}
	return &NurbsCurve{knots: knots, controls: hom}, nil
}

// Bounds returns the curve's parameter domain.
func (c *NurbsCurve) Bounds() Interval { return c.knots.Domain() }

// Knots returns the curve's knot vector, for callers (serialize) that
// need to rebuild the curve rather than just evaluate it.
func (c *NurbsCurve) Knots() KnotVector { return c.knots }

// ControlPolygon returns the curve's control points and weights, dual to
// NewNurbsCurve's constructor arguments.
func (c *NurbsCurve) ControlPolygon() ([]Point3, []float64) {
	points := make([]Point3, len(c.controls))
	weights := make([]float64, len(c.controls))
	for i, h := range c.controls {
		points[i] = h.Project()
		weights[i] = h.W
	}
	return points, weights
}

// Evaluate evaluates the curve at t by running De Boor over the
// homogeneous control points and projecting the result.
func (c *NurbsCurve) Evaluate(t float64) Point3 {
	t = c.Bounds().Clamp(t)
	k := c.knots.FindSpan(t)
	return deBoor4D(c.knots, c.controls, k, t).Project()
}

// Derivative returns the order-th derivative via central finite
// difference of the projected curve; exact rational differentiation
// needs the quotient rule over homogeneous derivatives, which is more
// machinery than this kernel's tolerance-bounded consumers need.
func (c *NurbsCurve) Derivative(order int, t float64) Vector3 {
	return finiteDifference(c, order, t, c.Bounds())
}

// SearchNearest finds the parameter nearest pt.
func (c *NurbsCurve) SearchNearest(pt Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(c, pt, hint)
}

// ToNurbs satisfies FilletableCurve; a NurbsCurve is already canonical.
func (c *NurbsCurve) ToNurbs() *NurbsCurve { return c }

// deBoor4D is the homogeneous-coordinate De Boor recurrence shared by
// NurbsCurve.Evaluate and the u-direction pass of NurbsSurface.Evaluate.
func deBoor4D(knots KnotVector, ctrl []Point4, k int, t float64) Point4 {
	p := knots.degree
	var d []Point4
	if len(ctrl) == p+1 {
		d = make([]Point4, p+1)
		copy(d, ctrl)
	} else {
		d = make([]Point4, p+1)
		for j := 0; j <= p; j++ {
			d[j] = ctrl[j+k-p]
		}
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			left := knots.At(j + k - p)
			right := knots.At(j + 1 + k - r)
			alpha := safeDivOrOne(t-left, right-left)
			d[j] = lerpPoint4(d[j-1], d[j], alpha)
		}
	}
	return d[p]
}

func lerpPoint4(a, b Point4, alpha float64) Point4 {
	return Point4{
		X: a.X + alpha*(b.X-a.X),
		Y: a.Y + alpha*(b.Y-a.Y),
		Z: a.Z + alpha*(b.Z-a.Z),
		W: a.W + alpha*(b.W-a.W),
	}
}

// finiteDifference differentiates any Evaluate-only curve by central
// difference, recursing order times. Used by NurbsCurve and other
// variants (e.g. IntersectionCurve) for which an analytic derivative
// isn't worth deriving.
func finiteDifference(c interface{ Evaluate(float64) Point3 }, order int, t float64, bounds Interval) Vector3 {
	if order <= 0 {
		return c.Evaluate(t).ToVector3()
	}
	h := bounds.Length() * 1e-4
	if h == 0 {
		h = 1e-6
	}
	lo := bounds.Clamp(t - h)
	hi := bounds.Clamp(t + h)
	if hi == lo {
		return Vector3{}
	}
	step := hi - lo
	if order == 1 {
		return c.Evaluate(hi).Sub(c.Evaluate(lo)).Scale(safeDiv(1, step))
	}
	// order >= 2: central second difference.
	mid := bounds.Clamp(t)
	p0 := c.Evaluate(lo)
	p1 := c.Evaluate(mid)
	p2 := c.Evaluate(hi)
	sum := p0.ToVector3().Add(p2.ToVector3()).Sub(p1.ToVector3().Scale(2))
	return sum.Scale(safeDiv(4, step*step))
}

// NurbsSurface is the rational tensor-product analogue of
// BSplineSurface.
type NurbsSurface struct {
	uKnots, vKnots KnotVector
	controls       [][]Point4
}

// NewNurbsSurface validates the control/weight grid and returns the
// surface, or kernelerr.ErrInvalidControlPointGrid on mismatch.
func NewNurbsSurface(uKnots, vKnots KnotVector, controls [][]Point3, weights [][]float64) (*NurbsSurface, error) {
	nu := uKnots.NumControlPoints()
	nv := vKnots.NumControlPoints()
	if len(controls) != nu || len(weights) != nu {
		return nil, kernelerr.ErrInvalidControlPointGrid
	}
	grid := make([][]Point4, nu)
	for i, row := range controls {
		if len(row) != nv || len(weights[i]) != nv {
			return nil, kernelerr.ErrInvalidControlPointGrid
		}
		grid[i] = make([]Point4, nv)
		for j, p := range row {
			grid[i][j] = Homogeneous(p, weights[i][j])
		}
	}
	return &NurbsSurface{uKnots: uKnots, vKnots: vKnots, controls: grid}, nil
}

// Bounds returns the surface's (u, v) parameter domain.
func (s *NurbsSurface) Bounds() (Interval, Interval) {
	return s.uKnots.Domain(), s.vKnots.Domain()
}

// Knots returns the surface's u and v knot vectors.
func (s *NurbsSurface) Knots() (KnotVector, KnotVector) { return s.uKnots, s.vKnots }

// ControlGrid returns the surface's control points and weights, dual to
// NewNurbsSurface's constructor arguments.
func (s *NurbsSurface) ControlGrid() ([][]Point3, [][]float64) {
	points := make([][]Point3, len(s.controls))
	weights := make([][]float64, len(s.controls))
	for i, row := range s.controls {
		points[i] = make([]Point3, len(row))
		weights[i] = make([]float64, len(row))
		for j, h := range row {
			points[i][j] = h.Project()
			weights[i][j] = h.W
		}
	}
	return points, weights
}

// Evaluate evaluates the surface at (u, v).
func (s *NurbsSurface) Evaluate(u, v float64) Point3 {
	u = s.uKnots.Domain().Clamp(u)
	v = s.vKnots.Domain().Clamp(v)
	pu := s.uKnots.degree
	ku := s.uKnots.FindSpan(u)

	isolated := make([]Point4, pu+1)
	for i := 0; i <= pu; i++ {
		kv := s.vKnots.FindSpan(v)
		isolated[i] = deBoor4D(s.vKnots, s.controls[i+ku-pu], kv, v)
	}
	return deBoor4D(s.uKnots, isolated, ku, u).Project()
}

// DU returns ∂S/∂u at (u, v) via central difference.
func (s *NurbsSurface) DU(u, v float64) Vector3 {
	dom, _ := s.Bounds()
	return surfaceCentralDiffU(s, u, v, dom)
}

// DV returns ∂S/∂v at (u, v) via central difference.
func (s *NurbsSurface) DV(u, v float64) Vector3 {
	_, dom := s.Bounds()
	return surfaceCentralDiffV(s, u, v, dom)
}

// Normal returns the unit normal DU x DV, or false where either
// derivative collapses to zero.
func (s *NurbsSurface) Normal(u, v float64) (Vector3, bool) {
	return surfaceNormal(s, u, v)
}

// Inclusion reports whether c's image lies on the surface.
func (s *NurbsSurface) Inclusion(c Curve) bool {
	return sampledInclusion(s, c)
}

// Invert returns the (u, v) nearest to p.
func (s *NurbsSurface) Invert(p Point3, hint *UV) (UV, *ConvergenceWarning) {
	return searchNearestOnSurface(s, p, hint)
}

// ToNurbsSurface satisfies FilletableSurface; already canonical.
func (s *NurbsSurface) ToNurbsSurface() *NurbsSurface { return s }
