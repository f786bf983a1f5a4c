package geom

// Curve is the capability set shared by every curve variant: Line,
// UnitCircle, UnitParabola, UnitHyperbola, BSplineCurve3D, NurbsCurve, and
// the decorators TrimmedCurve, CurveProcessor, PCurve, and IntersectionCurve.
type Curve interface {
	// Evaluate returns the curve's position at parameter t.
	Evaluate(t float64) Point3
	// Derivative returns the order-th derivative at t. order=0 is
	// Evaluate; order=1 is the tangent vector.
	Derivative(order int, t float64) Vector3
	// Bounds returns the curve's parameter domain.
	Bounds() Interval
	// SearchNearest returns the parameter nearest to p, starting from an
	// optional hint, plus a non-nil warning if the search failed to
	// converge within budget (the best candidate is still returned).
	SearchNearest(p Point3, hint *float64) (float64, *ConvergenceWarning)
}

// Surface is the capability set shared by every surface variant: Plane,
// Sphere, RevolutedSurface, ExtrudedSurface, BSplineSurface, NurbsSurface,
// RbfSurface, and the decorators TrimmedSurface and SurfaceProcessor.
type Surface interface {
	// Evaluate returns the surface's position at (u, v).
	Evaluate(u, v float64) Point3
	// DU returns ∂S/∂u at (u, v).
	DU(u, v float64) Vector3
	// DV returns ∂S/∂v at (u, v).
	DV(u, v float64) Vector3
	// Normal returns the outward unit normal at (u, v) (= DU x DV,
	// normalized). The second return is false at singular points (e.g.
	// the pole of a revolved surface) where the normal is the limit along
	// the axis rather than a pointwise value.
	Normal(u, v float64) (Vector3, bool)
	// Bounds returns the surface's (u, v) parameter domain.
	Bounds() (Interval, Interval)
	// Inclusion reports whether the image of c lies on the surface, judged
	// at sample points within kernel.TopoEpsilon (1e-3), not within the
	// finer geometric tolerance kernel.Epsilon.
	Inclusion(c Curve) bool
	// Invert returns the (u, v) nearest to p, starting from an optional
	// hint, plus a non-nil warning if the Newton search failed to
	// converge.
	Invert(p Point3, hint *UV) (UV, *ConvergenceWarning)
}

// UV is a position in a surface's 2-D parameter domain.
type UV struct {
	U, V float64
}

// ConvergenceWarning annotates a SearchNearest/Invert result produced
// after the safeguarded Newton iteration exhausted its budget; the
// returned parameter is still the best candidate found, not an error.
type ConvergenceWarning struct {
	Iterations int
	Residual   float64
}

// FilletableCurve is implemented by curve variants the fillet engine (§4.F)
// can convert to a canonical NURBS representation for blend construction.
// fillet.Run does not consult this interface: it returns
// kernelerr.ErrUnsupportedGeometry for any face whose surface is not a
// geom.Plane.
type FilletableCurve interface {
	Curve
	ToNurbs() *NurbsCurve
}

// FilletableSurface is the surface analogue of FilletableCurve.
type FilletableSurface interface {
	Surface
	ToNurbsSurface() *NurbsSurface
}
