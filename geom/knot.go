package geom

import "github.com/go-brep/kernel/kernelerr"

// KnotVector is a validated, nondecreasing sequence of parameter values
// defining a B-spline basis of a given degree. Multiplicities up to
// degree+1 at either endpoint encode clamping (the curve/surface then
// interpolates that endpoint's control point).
type KnotVector struct {
	knots  []float64
	degree int
}

// NewKnotVector validates knots and returns a KnotVector, or
// kernelerr.ErrInvalidKnotVector if the sequence is not nondecreasing or
// violates the degree+1 endpoint-multiplicity bound.
func NewKnotVector(knots []float64, degree int) (KnotVector, error) {
	if degree < 0 || len(knots) < 2*(degree+1) {
		return KnotVector{}, kernelerr.ErrInvalidKnotVector
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return KnotVector{}, kernelerr.ErrInvalidKnotVector
		}
	}
	if multiplicityAt(knots, 0) > degree+1 || multiplicityAt(knots, len(knots)-1) > degree+1 {
		return KnotVector{}, kernelerr.ErrInvalidKnotVector
	}
	cp := make([]float64, len(knots))
	copy(cp, knots)
	return KnotVector{knots: cp, degree: degree}, nil
}

func multiplicityAt(knots []float64, idx int) int {
	v := knots[idx]
	count := 0
	for _, k := range knots {
		if k == v {
			count++
		}
	}
	return count
}

// Degree returns the basis degree.
func (kv KnotVector) Degree() int { return kv.degree }

// Len returns the number of knots.
func (kv KnotVector) Len() int { return len(kv.knots) }

// At returns the i-th knot value.
func (kv KnotVector) At(i int) float64 { return kv.knots[i] }

// NumControlPoints returns the number of control points a curve using
// this knot vector must have: len(knots) - degree - 1.
func (kv KnotVector) NumControlPoints() int {
	return len(kv.knots) - kv.degree - 1
}

// Domain returns the parameter interval over which the curve is defined:
// [knots[degree], knots[len-degree-1]].
func (kv KnotVector) Domain() Interval {
	return Interval{Min: kv.knots[kv.degree], Max: kv.knots[len(kv.knots)-kv.degree-1]}
}

// FindSpan returns the knot span index i such that knots[i] <= t < knots[i+1]
// (clamped so the last span is inclusive of the domain's upper bound), using
// binary search. This is the index into the knot vector used to seed De
// Boor's algorithm.
func (kv KnotVector) FindSpan(t float64) int {
	n := kv.NumControlPoints() - 1
	if t >= kv.knots[n+1] {
		return n
	}
	if t <= kv.knots[kv.degree] {
		return kv.degree
	}
	lo, hi := kv.degree, n+1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t < kv.knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// Multiplicity returns the multiplicity of the knot value nearest t within
// eps (used by derivative-order checks near multiple knots).
func (kv KnotVector) Multiplicity(t, eps float64) int {
	count := 0
	for _, k := range kv.knots {
		if abs(k-t) < eps {
			count++
		}
	}
	return count
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
