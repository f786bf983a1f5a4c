package geom

// TrimmedCurve restricts an inner curve to a sub-interval of its domain.
type TrimmedCurve struct {
	Inner Curve
	Range Interval
}

// NewTrimmedCurve clamps the requested range to the inner curve's domain.
func NewTrimmedCurve(inner Curve, lo, hi float64) TrimmedCurve {
	dom := inner.Bounds()
	return TrimmedCurve{Inner: inner, Range: Interval{Min: dom.Clamp(lo), Max: dom.Clamp(hi)}}
}

func (t TrimmedCurve) Evaluate(s float64) Point3           { return t.Inner.Evaluate(s) }
func (t TrimmedCurve) Derivative(o int, s float64) Vector3 { return t.Inner.Derivative(o, s) }
func (t TrimmedCurve) Bounds() Interval                    { return t.Range }

func (t TrimmedCurve) SearchNearest(p Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(t, p, hint)
}

// CurveProcessor applies an affine Transform to an inner curve, without
// resampling its control structure: positions and tangents are
// transformed on the fly at evaluation time.
type CurveProcessor struct {
	Inner Curve
	Xf    Transform
}

func (p CurveProcessor) Evaluate(t float64) Point3 { return p.Xf.ApplyPoint(p.Inner.Evaluate(t)) }

func (p CurveProcessor) Derivative(order int, t float64) Vector3 {
	if order == 0 {
		return p.Evaluate(t).ToVector3()
	}
	return p.Xf.ApplyVector(p.Inner.Derivative(order, t))
}

func (p CurveProcessor) Bounds() Interval { return p.Inner.Bounds() }

func (p CurveProcessor) SearchNearest(pt Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(p, pt, hint)
}

// PCurve represents a curve lying in a surface's parameter domain,
// carried alongside its image in 3-D space: Param maps the curve's own
// parameter to (u, v), and Surface.Evaluate(u, v) recovers the 3-D
// position. Used by trimmed-surface boundary loops and by
// fillet face-trimming, which needs both representations of the same
// boundary curve.
type PCurve struct {
	Surface Surface
	Param   Curve2D
}

// Curve2D is the 2-D analogue of Curve, used for a surface's parameter-
// space trim and seam curves.
type Curve2D interface {
	Evaluate(t float64) Point2
	Derivative(order int, t float64) Point2
	Bounds() Interval
}

func (pc PCurve) Evaluate(t float64) Point3 {
	uv := pc.Param.Evaluate(t)
	return pc.Surface.Evaluate(uv.X, uv.Y)
}

func (pc PCurve) Derivative(order int, t float64) Vector3 {
	if order == 0 {
		return pc.Evaluate(t).ToVector3()
	}
	uv := pc.Param.Evaluate(t)
	d := pc.Param.Derivative(1, t)
	du := pc.Surface.DU(uv.X, uv.Y)
	dv := pc.Surface.DV(uv.X, uv.Y)
	tangent := du.Scale(d.X).Add(dv.Scale(d.Y))
	if order == 1 {
		return tangent
	}
	return finiteDifference(pc, order, t, pc.Bounds())
}

func (pc PCurve) Bounds() Interval { return pc.Param.Bounds() }

func (pc PCurve) SearchNearest(p Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(pc, p, hint)
}

// IntersectionCurve represents the curve where surface0 and surface1
// meet, carried as a leader polyline whose vertices are snapped toward
// both surfaces: each leader vertex is projected onto surface0 and
// surface1 with Invert and moved to the midpoint of the two projections,
// repeated until the projections agree or the iteration budget is
// exhausted. No Newton step on the two surfaces jointly is taken.
type IntersectionCurve struct {
	Surface0, Surface1 Surface
	leader             []Point3
	bounds             Interval
}

// NewIntersectionCurve snaps each vertex of the leader polyline onto the
// true intersection of surface0 and surface1 before storing it, and
// parameterizes the result over [0, 1] with every polyline segment
// taking an equal share of the interval, whatever its length.
func NewIntersectionCurve(surface0, surface1 Surface, leaderPolyline []Point3) *IntersectionCurve {
	snapped := make([]Point3, len(leaderPolyline))
	for i, v := range leaderPolyline {
		snapped[i] = snapToIntersection(surface0, surface1, v)
	}
	return &IntersectionCurve{
		Surface0: surface0,
		Surface1: surface1,
		leader:   snapped,
		bounds:   Interval{Min: 0, Max: 1},
	}
}

// snapToIntersection iteratively moves p toward both surfaces by
// projecting through each surface's inverse and re-evaluating, a
// fixed-point iteration that converges when the surfaces are not
// tangent at p. This mirrors the safeguarded-Newton posture used
// elsewhere in geom: it always returns its best estimate.
func snapToIntersection(s0, s1 Surface, p Point3) Point3 {
	cur := p
	for i := 0; i < searchMaxIterations; i++ {
		uv0, _ := s0.Invert(cur, nil)
		p0 := s0.Evaluate(uv0.U, uv0.V)
		uv1, _ := s1.Invert(p0, nil)
		p1 := s1.Evaluate(uv1.U, uv1.V)
		mid := p0.Lerp(p1, 0.5)
		if mid.Distance(cur) < searchTolerance {
			return mid
		}
		cur = mid
	}
	return cur
}

func (ic *IntersectionCurve) Bounds() Interval { return ic.bounds }

func (ic *IntersectionCurve) Evaluate(t float64) Point3 {
	t = ic.bounds.Clamp(t)
	n := len(ic.leader)
	if n == 0 {
		return Point3{}
	}
	if n == 1 {
		return ic.leader[0]
	}
	s := t * float64(n-1)
	i := int(s)
	if i >= n-1 {
		return ic.leader[n-1]
	}
	frac := s - float64(i)
	return ic.leader[i].Lerp(ic.leader[i+1], frac)
}

func (ic *IntersectionCurve) Derivative(order int, t float64) Vector3 {
	return finiteDifference(ic, order, t, ic.bounds)
}

func (ic *IntersectionCurve) SearchNearest(p Point3, hint *float64) (float64, *ConvergenceWarning) {
	return searchNearestOnCurve(ic, p, hint)
}
