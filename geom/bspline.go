package geom

import "github.com/go-brep/kernel/kernelerr"

// BSplineCurve3D is a non-rational B-spline curve over 3-D control
// points. NurbsCurve wraps the rational (4-D, homogeneous) variant.
//
// Evaluation uses De Boor's algorithm (O(degree^2) per call); derivatives
// are produced by differencing control points into a reduced-degree
// spline, recursing for higher orders.
type BSplineCurve3D struct {
	knots    KnotVector
	controls []Point3
}

// NewBSplineCurve3D validates that len(controls) matches the knot
// vector's NumControlPoints and returns the curve, or
// kernelerr.ErrInvalidControlPointGrid on mismatch.
func NewBSplineCurve3D(knots KnotVector, controls []Point3) (*BSplineCurve3D, error) {
	if len(controls) != knots.NumControlPoints() {
		return nil, kernelerr.ErrInvalidControlPointGrid
	}
	cp := make([]Point3, len(controls))
	copy(cp, controls)
	return &BSplineCurve3D{knots: knots, controls: cp}, nil
}

// Knots returns the curve's knot vector.
func (c *BSplineCurve3D) Knots() KnotVector { return c.knots }

// ControlPoints returns a copy of the curve's control points.
func (c *BSplineCurve3D) ControlPoints() []Point3 {
	cp := make([]Point3, len(c.controls))
	copy(cp, c.controls)
	return cp
}

// Bounds returns the curve's parameter domain.
func (c *BSplineCurve3D) Bounds() Interval { return c.knots.Domain() }

// Evaluate evaluates the curve at t via De Boor's algorithm.
func (c *BSplineCurve3D) Evaluate(t float64) Point3 {
	t = c.Bounds().Clamp(t)
	k := c.knots.FindSpan(t)
	return deBoor1D(c.knots, c.controls, k, t)
}

// safeDivOrOne returns num/den, substituting 1 (not 0) when den is near
// zero: at a repeated knot the De Boor blend should collapse to the
// later point, which alpha=1 achieves.
func safeDivOrOne(num, den float64) float64 {
	if abs(den) < 1e-12 {
		return 1
	}
	return num / den
}

// Derivative returns the order-th derivative at t by repeated
// control-point differencing: the derivative of a degree-p curve is a
// degree-(p-1) curve with control points
// Q_i = p * (P_{i+1}-P_i) / (knots[i+p+1]-knots[i+1]).
func (c *BSplineCurve3D) Derivative(order int, t float64) Vector3 {
	if order == 0 {
		return c.Evaluate(t).ToVector3()
	}
	cur := c
	for o := 0; o < order; o++ {
		reduced := cur.differentiateOnce()
		if reduced == nil {
			return Vector3{}
		}
		cur = reduced
	}
	return cur.Evaluate(t).ToVector3()
}

// differentiateOnce returns a degree-(p-1) curve representing this
// curve's first derivative, or nil if the degree is already zero.
func (c *BSplineCurve3D) differentiateOnce() *BSplineCurve3D {
	p := c.knots.degree
	if p == 0 {
		return nil
	}
	n := len(c.controls)
	qs := make([]Point3, n-1)
	for i := 0; i < n-1; i++ {
		denom := c.knots.At(i+p+1) - c.knots.At(i+1)
		scale := safeDiv(float64(p), denom)
		d := c.controls[i+1].Sub(c.controls[i])
		qs[i] = d.Scale(scale).ToPoint3()
	}
	newKnots := c.knots.knots[1 : len(c.knots.knots)-1]
	kv, err := NewKnotVector(newKnots, p-1)
	if err != nil {
		return nil
	}
	return &BSplineCurve3D{knots: kv, controls: qs}
}

// SearchNearest finds the parameter nearest to pt via a safeguarded
// Newton iteration seeded by a coarse grid presample when hint is nil.
func (c *BSplineCurve3D) SearchNearest(pt Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(c, pt, hint)
}
