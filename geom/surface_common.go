package geom

import "github.com/go-brep/kernel"

// inclusionSamples is the number of points sampled along a curve when
// testing surface inclusion; chosen to catch most non-degenerate
// parameterization mismatches without the cost of adaptive refinement.
const inclusionSamples = 16

// sampledInclusion samples c at inclusionSamples parameters, inverts each
// sample onto s, and reports whether every round trip lands within
// TopoEpsilon of the original point. Used by every Surface.Inclusion
// implementation in this package.
func sampledInclusion(s Surface, c Curve) bool {
	bounds := c.Bounds()
	var hint *UV
	for i := 0; i < inclusionSamples; i++ {
		t := bounds.Lerp(float64(i) / float64(inclusionSamples-1))
		p := c.Evaluate(t)
		uv, _ := s.Invert(p, hint)
		hint = &uv
		back := s.Evaluate(uv.U, uv.V)
		if back.Distance(p) > kernel.TopoEpsilon {
			return false
		}
	}
	return true
}

// pointEvaluable2D is the minimal capability needed for finite-difference
// derivatives and normals over a (u, v) surface.
type pointEvaluable2D interface {
	Evaluate(u, v float64) Point3
}

// surfaceCentralDiffU returns ∂S/∂u at (u, v) via a central finite
// difference over the u-domain.
func surfaceCentralDiffU(s pointEvaluable2D, u, v float64, dom Interval) Vector3 {
	h := dom.Length() * 1e-5
	if h == 0 {
		h = 1e-6
	}
	lo := dom.Clamp(u - h)
	hi := dom.Clamp(u + h)
	if hi == lo {
		return Vector3{}
	}
	p1 := s.Evaluate(lo, v)
	p2 := s.Evaluate(hi, v)
	return p2.Sub(p1).Scale(safeDiv(1, hi-lo))
}

// surfaceCentralDiffV returns ∂S/∂v at (u, v) via a central finite
// difference over the v-domain.
func surfaceCentralDiffV(s pointEvaluable2D, u, v float64, dom Interval) Vector3 {
	h := dom.Length() * 1e-5
	if h == 0 {
		h = 1e-6
	}
	lo := dom.Clamp(v - h)
	hi := dom.Clamp(v + h)
	if hi == lo {
		return Vector3{}
	}
	p1 := s.Evaluate(u, lo)
	p2 := s.Evaluate(u, hi)
	return p2.Sub(p1).Scale(safeDiv(1, hi-lo))
}

// derivableSurface is a surface that can supply both partials directly,
// used by surfaceNormal to avoid re-deriving DU/DV by finite difference
// when a caller already has analytic-ish partials.
type derivableSurface interface {
	DU(u, v float64) Vector3
	DV(u, v float64) Vector3
}

// surfaceNormal returns the unit normal DU x DV at (u, v), or false when
// either partial collapses to zero (a pole or degenerate patch).
func surfaceNormal(s derivableSurface, u, v float64) (Vector3, bool) {
	du := s.DU(u, v)
	dv := s.DV(u, v)
	if du.IsZero(1e-9) || dv.IsZero(1e-9) {
		return Vector3{}, false
	}
	n := du.Cross(dv)
	if n.IsZero(1e-9) {
		return Vector3{}, false
	}
	return n.Normalize(), true
}
