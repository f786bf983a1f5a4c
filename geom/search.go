package geom

import "github.com/go-brep/kernel/internal/numeric"

const (
	searchMaxIterations = 50
	searchTolerance     = 1e-10
	searchGridSamples   = 24
)

// nearestEvaluable is the minimal capability searchNearestOnCurve needs:
// every curve variant (BSplineCurve3D, NurbsCurve, decorators) satisfies
// it by virtue of implementing Curve.
type nearestEvaluable interface {
	Evaluate(t float64) Point3
	Derivative(order int, t float64) Vector3
	Bounds() Interval
}

// searchNearestOnCurve minimizes g(t) = |c(t) - pt|^2 with a safeguarded
// Newton iteration (internal/numeric), seeded either by hint or by a
// coarse grid presample over the curve's domain.
func searchNearestOnCurve(c nearestEvaluable, pt Point3, hint *float64) (float64, *ConvergenceWarning) {
	bounds := c.Bounds()
	t0 := hint
	var seed float64
	if t0 != nil {
		seed = bounds.Clamp(*t0)
	} else {
		seed = gridSeedCurve(c, pt, bounds)
	}

	eval := func(t float64) (g, gp, gpp float64) {
		p := c.Evaluate(t)
		d1 := c.Derivative(1, t)
		d2 := c.Derivative(2, t)
		diff := p.Sub(pt)

		g = diff.Dot(diff)
		gp = 2 * d1.Dot(diff)
		gpp = 2 * (d1.Dot(d1) + d2.Dot(diff))
		return
	}

	t, res := numeric.Newton1D(eval, seed, bounds.Min, bounds.Max, searchMaxIterations, searchTolerance)
	if res.Converged {
		return t, nil
	}
	return t, &ConvergenceWarning{Iterations: res.Iterations, Residual: res.Residual}
}

// gridSeedCurve samples the curve at searchGridSamples evenly spaced
// parameters and returns the one nearest pt, used to seed Newton when no
// hint is supplied.
func gridSeedCurve(c nearestEvaluable, pt Point3, bounds Interval) float64 {
	best := bounds.Min
	bestDist := -1.0
	for i := 0; i < searchGridSamples; i++ {
		s := float64(i) / float64(searchGridSamples-1)
		t := bounds.Lerp(s)
		d := c.Evaluate(t).Sub(pt)
		dist := d.Dot(d)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = t
		}
	}
	return best
}

// nearestEvaluableSurface is the minimal capability Surface.Invert needs.
type nearestEvaluableSurface interface {
	Evaluate(u, v float64) Point3
	DU(u, v float64) Vector3
	DV(u, v float64) Vector3
	Bounds() (Interval, Interval)
}

// searchNearestOnSurface minimizes g(u,v) = |S(u,v) - pt|^2 with a
// safeguarded 2-D Newton iteration, seeded by hint or a coarse grid
// presample. The Hessian approximation drops the second-derivative-of-S
// term (Gauss-Newton), which internal/numeric still regularizes if it
// is indefinite.
func searchNearestOnSurface(s nearestEvaluableSurface, pt Point3, hint *UV) (UV, *ConvergenceWarning) {
	uBounds, vBounds := s.Bounds()
	var u0, v0 float64
	if hint != nil {
		u0, v0 = uBounds.Clamp(hint.U), vBounds.Clamp(hint.V)
	} else {
		u0, v0 = gridSeedSurface(s, pt, uBounds, vBounds)
	}

	eval := func(u, v float64) (residual float64, j numeric.Jacobian2) {
		p := s.Evaluate(u, v)
		du := s.DU(u, v)
		dv := s.DV(u, v)
		diff := p.Sub(pt)

		residual = diff.Dot(diff)
		j.Grad[0] = 2 * du.Dot(diff)
		j.Grad[1] = 2 * dv.Dot(diff)
		j.Hess[0][0] = 2 * du.Dot(du)
		j.Hess[0][1] = 2 * du.Dot(dv)
		j.Hess[1][0] = j.Hess[0][1]
		j.Hess[1][1] = 2 * dv.Dot(dv)
		return
	}

	u, v, res := numeric.Newton2D(eval, u0, v0, uBounds.Min, uBounds.Max, vBounds.Min, vBounds.Max, searchMaxIterations, searchTolerance)
	if res.Converged {
		return UV{U: u, V: v}, nil
	}
	return UV{U: u, V: v}, &ConvergenceWarning{Iterations: res.Iterations, Residual: res.Residual}
}

func gridSeedSurface(s nearestEvaluableSurface, pt Point3, uBounds, vBounds Interval) (float64, float64) {
	bestU, bestV := uBounds.Min, vBounds.Min
	bestDist := -1.0
	const n = 8
	for i := 0; i < n; i++ {
		u := uBounds.Lerp(float64(i) / float64(n-1))
		for j := 0; j < n; j++ {
			v := vBounds.Lerp(float64(j) / float64(n-1))
			d := s.Evaluate(u, v).Sub(pt)
			dist := d.Dot(d)
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				bestU, bestV = u, v
			}
		}
	}
	return bestU, bestV
}
