// Package numeric implements the safeguarded Newton solvers shared by
// geom.SearchNearest, Surface.Invert, and the two-surface snap behind
// geom.IntersectionCurve. Ill-conditioned steps are regularized by
// building the local Hessian with gonum/mat and nudging its diagonal
// (Levenberg-Marquardt style) rather than by bailing out to bisection.
package numeric

import (
	"gonum.org/v1/gonum/mat"
)

// Result carries the outcome of a safeguarded Newton search.
type Result struct {
	Iterations int
	Residual   float64
	Converged  bool
}

// Newton1D minimizes a scalar objective g(t) with first and second
// derivatives supplied by eval, clamping every step to [lo, hi]. It
// returns the best parameter found even when it fails to converge within
// maxIter iterations rather than an error.
func Newton1D(eval func(t float64) (g, gp, gpp float64), t0, lo, hi float64, maxIter int, tol float64) (float64, Result) {
	t := clamp(t0, lo, hi)
	best := t
	bestResidual := mustAbs(firstOf(eval(t)))

	for i := 0; i < maxIter; i++ {
		g, gp, gpp := eval(t)
		residual := mustAbs(g)
		if residual < bestResidual {
			bestResidual = residual
			best = t
		}
		if mustAbs(gp) < tol {
			return t, Result{Iterations: i, Residual: residual, Converged: true}
		}

		h := regularize1D(gpp)
		step := gp / h
		next := clamp(t-step, lo, hi)
		if mustAbs(next-t) < tol {
			return next, Result{Iterations: i + 1, Residual: residual, Converged: true}
		}
		t = next
	}
	return best, Result{Iterations: maxIter, Residual: bestResidual, Converged: false}
}

func firstOf(g, _, _ float64) float64 { return g }

// regularize1D adds a small positive term when the second derivative is
// non-positive (not a local minimum direction), so the Newton step always
// moves downhill.
func regularize1D(gpp float64) float64 {
	const kappa = 1e-6
	if gpp <= 0 {
		return kappa - gpp + kappa
	}
	return gpp
}

// Jacobian2 is the 2x2 linearization used by Newton2D: Grad is the
// gradient of the scalar objective w.r.t. (u, v); Hess is its Hessian.
type Jacobian2 struct {
	Grad [2]float64
	Hess [2][2]float64
}

// Newton2D minimizes a scalar objective over (u, v), clamping each
// component to its own [lo, hi] bound every step. eval supplies the
// gradient/Hessian at the current point; residual is the objective value
// used to track the best candidate across iterations.
func Newton2D(eval func(u, v float64) (residual float64, j Jacobian2), u0, v0, uLo, uHi, vLo, vHi float64, maxIter int, tol float64) (u, v float64, res Result) {
	u, v = clamp(u0, uLo, uHi), clamp(v0, vLo, vHi)
	bestU, bestV := u, v
	_, j0 := eval(u, v)
	bestResidual := gradNorm(j0.Grad)

	for i := 0; i < maxIter; i++ {
		residual, j := eval(u, v)
		gn := gradNorm(j.Grad)
		if gn < bestResidual {
			bestResidual = gn
			bestU, bestV = u, v
		}
		if gn < tol {
			return u, v, Result{Iterations: i, Residual: residual, Converged: true}
		}

		h := regularizeHessian(j.Hess)
		du, dv := solve2x2(h, j.Grad)

		nu := clamp(u-du, uLo, uHi)
		nv := clamp(v-dv, vLo, vHi)
		if mustAbs(nu-u) < tol && mustAbs(nv-v) < tol {
			return nu, nv, Result{Iterations: i + 1, Residual: residual, Converged: true}
		}
		u, v = nu, nv
	}
	return bestU, bestV, Result{Iterations: maxIter, Residual: bestResidual, Converged: false}
}

func gradNorm(g [2]float64) float64 {
	return mustSqrt(g[0]*g[0] + g[1]*g[1])
}

// regularizeHessian adds kappa*I to h whenever it is not positive
// definite (checked via its eigenvalues through gonum/mat), guaranteeing
// the resulting system always produces a descent direction.
func regularizeHessian(h [2][2]float64) [2][2]float64 {
	m := mat.NewDense(2, 2, []float64{h[0][0], h[0][1], h[1][0], h[1][1]})

	var eig mat.Eigen
	if !eig.Factorize(m, mat.EigenLeft) {
		return addDiagonal(h, 1e-3)
	}
	values := eig.Values(nil)
	minReal := real(values[0])
	for _, v := range values[1:] {
		if real(v) < minReal {
			minReal = real(v)
		}
	}
	if minReal > 1e-8 {
		return h
	}
	kappa := 1e-8 - minReal
	return addDiagonal(h, kappa)
}

func addDiagonal(h [2][2]float64, kappa float64) [2][2]float64 {
	h[0][0] += kappa
	h[1][1] += kappa
	return h
}

// solve2x2 solves h * [du, dv]^T = g via gonum/mat's LU solver.
func solve2x2(h [2][2]float64, g [2]float64) (du, dv float64) {
	a := mat.NewDense(2, 2, []float64{h[0][0], h[0][1], h[1][0], h[1][1]})
	b := mat.NewVecDense(2, []float64{g[0], g[1]})
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return 0, 0
	}
	return x.AtVec(0), x.AtVec(1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mustAbs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mustSqrt(v float64) float64 {
	if v <= 0 {
		return 0
	}
	// Newton's method for sqrt, avoiding an extra stdlib import for one call site.
	x := v
	for i := 0; i < 30; i++ {
		x = 0.5 * (x + v/x)
	}
	return x
}
