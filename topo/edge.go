package topo

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/kernelerr"
)

// Edge is a 1-dimensional topological entity: a curve bounded by a front
// and back Vertex. A degenerate edge (front == back at a single point,
// used e.g. at a cone apex) is legal; a zero-length edge whose curve
// never separates from its endpoint is not, and is rejected by NewEdge.
type Edge struct {
	id          identity.Token
	curve       geom.Curve
	front, back *Vertex
}

// NewEdge validates that curve's endpoints land within tol of front and
// back before allocating a fresh
// identity, returning kernelerr.ErrDegenerateEdge if the curve's domain
// has zero length and kernelerr.ErrTopologyViolation if the endpoints
// don't match.
func NewEdge(curve geom.Curve, front, back *Vertex, tol float64) (*Edge, error) {
	bounds := curve.Bounds()
	if bounds.Length() < 1e-15 {
		return nil, kernelerr.ErrDegenerateEdge
	}
	start := curve.Evaluate(bounds.Min)
	end := curve.Evaluate(bounds.Max)
	if !start.ApproxEqual(front.Point(), tol) || !end.ApproxEqual(back.Point(), tol) {
		return nil, kernelerr.ErrTopologyViolation
	}
	return &Edge{id: identity.New(), curve: curve, front: front, back: back}, nil
}

// ID returns the edge's identity token.
func (e *Edge) ID() identity.Token { return e.id }

// Curve returns the edge's underlying curve.
func (e *Edge) Curve() geom.Curve { return e.curve }

// Front returns the edge's starting vertex.
func (e *Edge) Front() *Vertex { return e.front }

// Back returns the edge's ending vertex.
func (e *Edge) Back() *Vertex { return e.back }

// IsDegenerate reports whether the edge's two endpoints coincide (a
// collapsed edge at a pole, not a zero-length-domain curve, which
// NewEdge already rejects).
func (e *Edge) IsDegenerate(tol float64) bool {
	return e.front.Point().ApproxEqual(e.back.Point(), tol)
}

// Reversed returns a curve-reversing view of e: Front/Back swapped and
// evaluation remapped so higher-level code can walk the edge in either
// direction without a distinct identity. Used by Wire, which stores each
// member as an OrientedEdge (the *Edge itself or its Reversed view)
// rather than two identities.
type Reversed struct {
	inner *Edge
}

// Reverse wraps e in a Reversed view.
func Reverse(e *Edge) Reversed { return Reversed{inner: e} }

// ReverseOriented flips the sense of any OrientedEdge, unwrapping a
// Reversed back to its underlying *Edge rather than double-wrapping.
// Used by sweep operators that must traverse a caller-supplied profile
// wire in the opposite sense for one of the solid's boundary faces
// while sharing every edge's identity with the original wire.
func ReverseOriented(oe OrientedEdge) OrientedEdge {
	switch v := oe.(type) {
	case *Edge:
		return Reverse(v)
	case Reversed:
		return v.inner
	default:
		return oe
	}
}

func (r Reversed) ID() identity.Token { return r.inner.id }
func (r Reversed) Front() *Vertex     { return r.inner.back }
func (r Reversed) Back() *Vertex      { return r.inner.front }

func (r Reversed) Curve() geom.Curve {
	bounds := r.inner.curve.Bounds()
	return reversedCurve{inner: r.inner.curve, bounds: bounds}
}

// reversedCurve remaps t -> (min+max-t) so Evaluate(min) == Evaluate of
// the original at max and vice versa.
type reversedCurve struct {
	inner  geom.Curve
	bounds geom.Interval
}

func (c reversedCurve) remap(t float64) float64 { return c.bounds.Min + c.bounds.Max - t }

func (c reversedCurve) Evaluate(t float64) geom.Point3 { return c.inner.Evaluate(c.remap(t)) }

func (c reversedCurve) Derivative(order int, t float64) geom.Vector3 {
	d := c.inner.Derivative(order, c.remap(t))
	if order%2 == 1 {
		return d.Neg()
	}
	return d
}

func (c reversedCurve) Bounds() geom.Interval { return c.bounds }

func (c reversedCurve) SearchNearest(p geom.Point3, hint *float64) (float64, *geom.ConvergenceWarning) {
	var innerHint *float64
	if hint != nil {
		h := c.remap(*hint)
		innerHint = &h
	}
	t, warn := c.inner.SearchNearest(p, innerHint)
	out := c.remap(t)
	return out, warn
}
