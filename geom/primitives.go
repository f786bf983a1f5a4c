package geom

import "math"

// Line is the curve c(t) = origin + t*direction over the parameter
// interval given to NewLine; Bounds reports that interval and the
// nearest-point search clamps to it.
type Line struct {
	Origin    Point3
	Direction Vector3
	bounds    Interval
}

// NewLine returns a Line over [lo, hi].
func NewLine(origin Point3, direction Vector3, lo, hi float64) *Line {
	return &Line{Origin: origin, Direction: direction, bounds: Interval{Min: lo, Max: hi}}
}

func (l *Line) Evaluate(t float64) Point3 { return l.Origin.Add(l.Direction.Scale(t)) }

func (l *Line) Derivative(order int, t float64) Vector3 {
	switch {
	case order == 0:
		return l.Evaluate(t).ToVector3()
	case order == 1:
		return l.Direction
	default:
		return Vector3{}
	}
}

func (l *Line) Bounds() Interval { return l.bounds }

func (l *Line) SearchNearest(p Point3, hint *float64) (float64, *ConvergenceWarning) {
	denom := l.Direction.Dot(l.Direction)
	if denom < 1e-18 {
		return l.bounds.Clamp(0), nil
	}
	t := l.bounds.Clamp(safeDiv(p.Sub(l.Origin).Dot(l.Direction), denom))
	_ = hint
	return t, nil
}

// UnitCircle is the planar curve c(t) = (cos t, sin t, 0) for t in
// [0, 2*pi), embedded in 3-D via an affine Transform so it can represent
// any circle in space.
type UnitCircle struct {
	Xf Transform
}

func (c UnitCircle) Evaluate(t float64) Point3 {
	return c.Xf.ApplyPoint(Point3{X: math.Cos(t), Y: math.Sin(t), Z: 0})
}

func (c UnitCircle) Derivative(order int, t float64) Vector3 {
	if order == 0 {
		return c.Evaluate(t).ToVector3()
	}
	var local Vector3
	switch ((order - 1) % 4) + 1 {
	case 1:
		local = Vector3{X: -math.Sin(t), Y: math.Cos(t)}
	case 2:
		local = Vector3{X: -math.Cos(t), Y: -math.Sin(t)}
	case 3:
		local = Vector3{X: math.Sin(t), Y: -math.Cos(t)}
	case 4:
		local = Vector3{X: math.Cos(t), Y: math.Sin(t)}
	}
	return c.Xf.ApplyVector(local)
}

func (c UnitCircle) Bounds() Interval { return Interval{Min: 0, Max: 2 * math.Pi} }

func (c UnitCircle) SearchNearest(p Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(c, p, hint)
}

// UnitParabola is c(t) = (t, t^2, 0) under an affine Transform.
type UnitParabola struct {
	Xf     Transform
	bounds Interval
}

func NewUnitParabola(xf Transform, lo, hi float64) UnitParabola {
	return UnitParabola{Xf: xf, bounds: Interval{Min: lo, Max: hi}}
}

func (p UnitParabola) Evaluate(t float64) Point3 {
	return p.Xf.ApplyPoint(Point3{X: t, Y: t * t, Z: 0})
}

func (p UnitParabola) Derivative(order int, t float64) Vector3 {
	var local Vector3
	switch order {
	case 0:
		return p.Evaluate(t).ToVector3()
	case 1:
		local = Vector3{X: 1, Y: 2 * t}
	case 2:
		local = Vector3{X: 0, Y: 2}
	default:
		return Vector3{}
	}
	return p.Xf.ApplyVector(local)
}

func (p UnitParabola) Bounds() Interval { return p.bounds }

func (p UnitParabola) SearchNearest(pt Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(p, pt, hint)
}

// UnitHyperbola is c(t) = (cosh t, sinh t, 0) under an affine Transform.
type UnitHyperbola struct {
	Xf     Transform
	bounds Interval
}

func NewUnitHyperbola(xf Transform, lo, hi float64) UnitHyperbola {
	return UnitHyperbola{Xf: xf, bounds: Interval{Min: lo, Max: hi}}
}

func (h UnitHyperbola) Evaluate(t float64) Point3 {
	return h.Xf.ApplyPoint(Point3{X: math.Cosh(t), Y: math.Sinh(t), Z: 0})
}

func (h UnitHyperbola) Derivative(order int, t float64) Vector3 {
	var local Vector3
	switch order {
	case 0:
		return h.Evaluate(t).ToVector3()
	case 1:
		local = Vector3{X: math.Sinh(t), Y: math.Cosh(t)}
	case 2:
		local = Vector3{X: math.Cosh(t), Y: math.Sinh(t)}
	default:
		return Vector3{}
	}
	return h.Xf.ApplyVector(local)
}

func (h UnitHyperbola) Bounds() Interval { return h.bounds }

func (h UnitHyperbola) SearchNearest(pt Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(h, pt, hint)
}

// RotationArc is the curve traced by rotating Point around an axis
// through Origin with direction Axis, parameterized directly by the
// rotation angle. Used by model.RSweep to build the radial edges
// connecting a profile vertex to its swept image.
type RotationArc struct {
	Origin Point3
	Axis   Vector3
	Point  Point3
	bounds Interval
}

// NewUnitCircleArc returns the arc traced by point as it is revolved
// around the given axis by angle (which may be negative; Bounds is
// normalized to [min(0,angle), max(0,angle)]).
func NewUnitCircleArc(origin Point3, axis Vector3, point Point3, angle float64) *RotationArc {
	lo, hi := 0.0, angle
	if angle < 0 {
		lo, hi = angle, 0
	}
	return &RotationArc{Origin: origin, Axis: axis, Point: point, bounds: Interval{Min: lo, Max: hi}}
}

func (r *RotationArc) Evaluate(t float64) Point3 {
	return AxisRotation(r.Origin, r.Axis, t).ApplyPoint(r.Point)
}

func (r *RotationArc) Derivative(order int, t float64) Vector3 {
	if order == 0 {
		return r.Evaluate(t).ToVector3()
	}
	return finiteDifference(r, order, t, r.bounds)
}

func (r *RotationArc) Bounds() Interval { return r.bounds }

func (r *RotationArc) SearchNearest(p Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(r, p, hint)
}

// Plane is the unbounded surface S(u, v) = Origin + u*U + v*V.
type Plane struct {
	Origin Point3
	U, V   Vector3
}

func (pl Plane) Evaluate(u, v float64) Point3 {
	return pl.Origin.Add(pl.U.Scale(u)).Add(pl.V.Scale(v))
}

func (pl Plane) DU(_, _ float64) Vector3 { return pl.U }
func (pl Plane) DV(_, _ float64) Vector3 { return pl.V }

func (pl Plane) Normal(_, _ float64) (Vector3, bool) {
	n := pl.U.Cross(pl.V)
	if n.IsZero(1e-12) {
		return Vector3{}, false
	}
	return n.Normalize(), true
}

func (pl Plane) Bounds() (Interval, Interval) {
	const big = 1e6
	return Interval{Min: -big, Max: big}, Interval{Min: -big, Max: big}
}

func (pl Plane) Inclusion(c Curve) bool { return sampledInclusion(pl, c) }

func (pl Plane) Invert(p Point3, hint *UV) (UV, *ConvergenceWarning) {
	n := pl.U.Cross(pl.V)
	denom := n.Dot(n)
	if denom < 1e-18 {
		return UV{}, nil
	}
	d := p.Sub(pl.Origin)
	u := safeDiv(d.Cross(pl.V).Dot(n), denom)
	v := safeDiv(pl.U.Cross(d).Dot(n), denom)
	_ = hint
	return UV{U: u, V: v}, nil
}

// Sphere is the surface of radius R centered at Origin, parameterized by
// longitude u in [0, 2*pi) and latitude v in [-pi/2, pi/2].
type Sphere struct {
	Origin Point3
	R      float64
}

func (s Sphere) Evaluate(u, v float64) Point3 {
	cv := math.Cos(v)
	return Point3{
		X: s.Origin.X + s.R*cv*math.Cos(u),
		Y: s.Origin.Y + s.R*cv*math.Sin(u),
		Z: s.Origin.Z + s.R*math.Sin(v),
	}
}

func (s Sphere) DU(u, v float64) Vector3 {
	cv := math.Cos(v)
	return Vector3{X: -s.R * cv * math.Sin(u), Y: s.R * cv * math.Cos(u), Z: 0}
}

func (s Sphere) DV(u, v float64) Vector3 {
	sv, cv := math.Sin(v), math.Cos(v)
	return Vector3{X: -s.R * sv * math.Cos(u), Y: -s.R * sv * math.Sin(u), Z: s.R * cv}
}

func (s Sphere) Normal(u, v float64) (Vector3, bool) {
	return surfaceNormal(s, u, v)
}

func (s Sphere) Bounds() (Interval, Interval) {
	return Interval{Min: 0, Max: 2 * math.Pi}, Interval{Min: -math.Pi / 2, Max: math.Pi / 2}
}

func (s Sphere) Inclusion(c Curve) bool { return sampledInclusion(s, c) }

func (s Sphere) Invert(p Point3, hint *UV) (UV, *ConvergenceWarning) {
	d := p.Sub(s.Origin)
	if d.IsZero(1e-12) {
		return UV{}, nil
	}
	v := math.Asin(clampUnit(safeDiv(d.Z, d.Length())))
	u := math.Atan2(d.Y, d.X)
	if u < 0 {
		u += 2 * math.Pi
	}
	_ = hint
	return UV{U: u, V: v}, nil
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// RevolutedSurface sweeps a profile curve (lying in the plane containing
// the rotation axis) by angle v around an axis through Origin with unit
// direction Axis, parameterized by (v, t) where t is the profile's own
// parameter and v is the sweep angle. This is the surface counterpart of
// model.RSweep.
type RevolutedSurface struct {
	Profile Curve
	Origin  Point3
	Axis    Vector3
}

func (r RevolutedSurface) Evaluate(v, t float64) Point3 {
	p := r.Profile.Evaluate(t)
	return AxisRotation(r.Origin, r.Axis, v).ApplyPoint(p)
}

func (r RevolutedSurface) DU(v, t float64) Vector3 {
	// DU here is w.r.t. the sweep angle v: tangent to the rotation circle
	// traced by the profile point at parameter t.
	p := r.Profile.Evaluate(t)
	rotated := AxisRotation(r.Origin, r.Axis, v).ApplyPoint(p)
	radial := rotated.Sub(r.Origin)
	axis := r.Axis.Normalize()
	radial = radial.Sub(axis.Scale(radial.Dot(axis)))
	return axis.Cross(radial)
}

func (r RevolutedSurface) DV(v, t float64) Vector3 {
	tangent := r.Profile.Derivative(1, t)
	return AxisRotation(r.Origin, r.Axis, v).ApplyVector(tangent)
}

func (r RevolutedSurface) Normal(v, t float64) (Vector3, bool) {
	return surfaceNormal(r, v, t)
}

func (r RevolutedSurface) Bounds() (Interval, Interval) {
	return Interval{Min: -2 * math.Pi, Max: 2 * math.Pi}, r.Profile.Bounds()
}

func (r RevolutedSurface) Inclusion(c Curve) bool { return sampledInclusion(r, c) }

func (r RevolutedSurface) Invert(p Point3, hint *UV) (UV, *ConvergenceWarning) {
	return searchNearestOnSurface(r, p, hint)
}

// ExtrudedSurface sweeps a profile curve by a translation, parameterized
// by (u, t) = (profile parameter, extrusion distance along Direction).
// This is the surface counterpart of model.TSweep.
type ExtrudedSurface struct {
	Profile   Curve
	Direction Vector3
	Length    Interval
}

func (e ExtrudedSurface) Evaluate(u, t float64) Point3 {
	return e.Profile.Evaluate(u).Add(e.Direction.Scale(t))
}

func (e ExtrudedSurface) DU(u, _ float64) Vector3 {
	return e.Profile.Derivative(1, u)
}

func (e ExtrudedSurface) DV(_, _ float64) Vector3 {
	return e.Direction
}

func (e ExtrudedSurface) Normal(u, v float64) (Vector3, bool) {
	return surfaceNormal(e, u, v)
}

func (e ExtrudedSurface) Bounds() (Interval, Interval) {
	return e.Profile.Bounds(), e.Length
}

func (e ExtrudedSurface) Inclusion(c Curve) bool { return sampledInclusion(e, c) }

func (e ExtrudedSurface) Invert(p Point3, hint *UV) (UV, *ConvergenceWarning) {
	return searchNearestOnSurface(e, p, hint)
}
