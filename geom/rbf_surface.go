package geom

import "math"

// RbfSurface is a rolling-ball blend surface: at every spine parameter v,
// a circular arc of radius Radius(v) around Center(v) starts in direction
// E1(v) and turns toward E2(v) through angle Angle(v); E1 and E2 are taken
// as orthonormal. u in [0, 1] selects the point along that arc. This is the surface the fillet engine builds for a
// constant- or variable-radius round blend; Center/E1/E2/Radius/Angle are
// supplied by the caller from the two faces adjacent to the blended edge.
type RbfSurface struct {
	Center func(v float64) Point3
	E1, E2 func(v float64) Vector3
	Radius func(v float64) float64
	Angle  func(v float64) float64
	Domain Interval
}

func (s RbfSurface) Evaluate(u, v float64) Point3 {
	theta := u * s.Angle(v)
	c, r := s.Center(v), s.Radius(v)
	e1, e2 := s.E1(v), s.E2(v)
	dir := e1.Scale(math.Cos(theta)).Add(e2.Scale(math.Sin(theta)))
	return c.Add(dir.Scale(r))
}

func (s RbfSurface) DU(u, v float64) Vector3 {
	return surfaceCentralDiffU(s, u, v, Interval{Min: 0, Max: 1})
}

func (s RbfSurface) DV(u, v float64) Vector3 {
	return surfaceCentralDiffV(s, u, v, s.Domain)
}

func (s RbfSurface) Normal(u, v float64) (Vector3, bool) {
	return surfaceNormal(s, u, v)
}

func (s RbfSurface) Bounds() (Interval, Interval) {
	return Interval{Min: 0, Max: 1}, s.Domain
}

func (s RbfSurface) Inclusion(c Curve) bool { return sampledInclusion(s, c) }

func (s RbfSurface) Invert(p Point3, hint *UV) (UV, *ConvergenceWarning) {
	return searchNearestOnSurface(s, p, hint)
}
