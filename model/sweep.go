// Package model implements the kernel's modeling operators: translational
// and rotational sweeps, Euler-style boundary edits, wire homotopy
// checking, and Boolean combination, all building topo.Solid/topo.Shell
// values from lower-level topo/geom primitives.
package model

import (
	"math"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/kernelerr"
	"github.com/go-brep/kernel/topo"
)

// TSweep lifts e by one topological dimension along direction: a Vertex
// sweeps to an Edge, an Edge sweeps to a Face on an ExtrudedSurface
// (planar when the edge is straight), and a closed Wire
// or a Face (with no holes) sweeps to a Solid. Every lift shares edge
// and vertex identity between the faces it produces rather than
// allocating independent copies, so the shells TSweep builds are closed
// and consistently oriented. tol bounds the topological tolerance of
// every edge built along the way.
func TSweep(e topo.Entity, direction geom.Vector3, tol float64) (topo.Entity, error) {
	switch v := e.(type) {
	case *topo.Vertex:
		return tsweepVertex(v, direction, tol)
	case *topo.Edge:
		return tsweepEdge(v, direction, tol)
	case *topo.Wire:
		return tsweepWire(v, direction, tol)
	case *topo.Face:
		if len(v.Holes()) > 0 {
			return nil, kernelerr.ErrUnsupportedGeometry
		}
		return tsweepWire(v.OuterBoundary(), direction, tol)
	default:
		return nil, kernelerr.ErrUnsupportedGeometry
	}
}

// tsweepVertex lifts a point to a straight edge from v to v+direction.
func tsweepVertex(v *topo.Vertex, direction geom.Vector3, tol float64) (*topo.Edge, error) {
	top := topo.NewVertex(v.Point().Add(direction))
	return topo.NewEdge(geom.NewLine(v.Point(), direction, 0, 1), v, top, tol)
}

// tsweepEdge lifts a curve to the ExtrudedSurface quad it sweeps
// out along direction, reusing e itself as one of the quad's four
// boundary edges rather than rebuilding a geometrically identical copy.
func tsweepEdge(e *topo.Edge, direction geom.Vector3, tol float64) (*topo.Face, error) {
	front, back := e.Front(), e.Back()
	topFront := topo.NewVertex(front.Point().Add(direction))
	topBack := topo.NewVertex(back.Point().Add(direction))

	surface := geom.ExtrudedSurface{
		Profile:   e.Curve(),
		Direction: direction,
		Length:    geom.Interval{Min: 0, Max: 1},
	}
	topCurve := geom.CurveProcessor{Inner: e.Curve(), Xf: geom.Translation(direction)}
	topEdge, err := topo.NewEdge(topCurve, topFront, topBack, tol)
	if err != nil {
		return nil, err
	}
	riserFront, err := topo.NewEdge(geom.NewLine(front.Point(), direction, 0, 1), front, topFront, tol)
	if err != nil {
		return nil, err
	}
	riserBack, err := topo.NewEdge(geom.NewLine(back.Point(), direction, 0, 1), back, topBack, tol)
	if err != nil {
		return nil, err
	}

	wire, err := topo.NewWire([]topo.OrientedEdge{
		e, riserBack, topo.Reverse(topEdge), topo.Reverse(riserFront),
	})
	if err != nil {
		return nil, err
	}
	return topo.NewFace(surface, wire, nil, true)
}

// tsweepWire extrudes a closed planar wire along direction, producing a
// Solid whose boundary consists of a cap built from the wire's own
// edges (reversed, so it balances against the side faces' forward
// use), a translated copy of the wire as the other cap, and one
// ExtrudedSurface side face per original edge. Each riser between a
// profile vertex and its translated image is built once and shared
// (forward/reversed) by the two side faces meeting there, the same
// weld-by-identity technique model.boxShell uses for a box's risers.
func tsweepWire(profile *topo.Wire, direction geom.Vector3, tol float64) (*topo.Solid, error) {
	if !profile.IsClosed() {
		return nil, kernelerr.ErrTopologyViolation
	}
	edges := profile.Edges()

	topVertices := make(map[*topo.Vertex]*topo.Vertex)
	getTop := func(v *topo.Vertex) *topo.Vertex {
		if tv, ok := topVertices[v]; ok {
			return tv
		}
		tv := topo.NewVertex(v.Point().Add(direction))
		topVertices[v] = tv
		return tv
	}

	risers := make(map[*topo.Vertex]*topo.Edge)
	getRiser := func(v *topo.Vertex) (*topo.Edge, error) {
		if r, ok := risers[v]; ok {
			return r, nil
		}
		r, err := topo.NewEdge(geom.NewLine(v.Point(), direction, 0, 1), v, getTop(v), tol)
		if err != nil {
			return nil, err
		}
		risers[v] = r
		return r, nil
	}

	sideFaces := make([]*topo.Face, 0, len(edges))
	topEdges := make([]topo.OrientedEdge, len(edges))

	for i, e := range edges {
		front, back := e.Front(), e.Back()
		topFront, topBack := getTop(front), getTop(back)

		surface := geom.ExtrudedSurface{
			Profile:   e.Curve(),
			Direction: direction,
			Length:    geom.Interval{Min: 0, Max: 1},
		}

		topCurve := geom.CurveProcessor{Inner: e.Curve(), Xf: geom.Translation(direction)}
		topEdge, err := topo.NewEdge(topCurve, topFront, topBack, tol)
		if err != nil {
			return nil, err
		}
		topEdges[i] = topEdge

		riserFront, err := getRiser(front)
		if err != nil {
			return nil, err
		}
		riserBack, err := getRiser(back)
		if err != nil {
			return nil, err
		}

		sideWire, err := topo.NewWire([]topo.OrientedEdge{
			e, riserBack, topo.Reverse(topEdge), topo.Reverse(riserFront),
		})
		if err != nil {
			return nil, err
		}
		face, err := topo.NewFace(surface, sideWire, nil, true)
		if err != nil {
			return nil, err
		}
		sideFaces = append(sideFaces, face)
	}

	bottomPlane, err := profilePlane(edges)
	if err != nil {
		return nil, err
	}
	// Each side face traverses its profile edge forward, so the bottom
	// cap must traverse every edge in reverse (and in reverse order, to
	// stay a connected chain) to balance orientation.
	bottomEdges := make([]topo.OrientedEdge, len(edges))
	for i, e := range edges {
		bottomEdges[len(edges)-1-i] = topo.ReverseOriented(e)
	}
	bottomWire, err := topo.NewWire(bottomEdges)
	if err != nil {
		return nil, err
	}
	bottomFace, err := topo.NewFace(bottomPlane, bottomWire, nil, false)
	if err != nil {
		return nil, err
	}

	// Side faces traverse each top edge reversed, so the top cap can use
	// the edges forward in their natural order without reordering.
	topWire, err := topo.NewWire(topEdges)
	if err != nil {
		return nil, err
	}
	topPlane := geom.SurfaceProcessor{Inner: bottomPlane, Xf: geom.Translation(direction)}
	topFace, err := topo.NewFace(topPlane, topWire, nil, true)
	if err != nil {
		return nil, err
	}

	shell := topo.NewShell(append([]*topo.Face{bottomFace, topFace}, sideFaces...))
	return topo.NewSolid(shell, nil)
}

// profilePlane fits a geom.Plane through the profile's first edge: its
// front vertex as origin, the first edge's chord as U, and the chord
// from that origin to the second edge's back vertex as V (not made
// orthogonal to U).
// Callers only need the plane well-formed enough for Inclusion checks on
// the profile's own edges, which lie in it by construction.
func profilePlane(edges []topo.OrientedEdge) (geom.Plane, error) {
	if len(edges) < 2 {
		return geom.Plane{}, kernelerr.ErrTopologyViolation
	}
	p0 := edges[0].Front().Point()
	p1 := edges[0].Back().Point()
	p2 := edges[1].Back().Point()
	u := p1.Sub(p0)
	v := p2.Sub(p0)
	if u.Cross(v).IsZero(1e-12) {
		// Degenerate first turn (collinear); fall back to the next edge.
		if len(edges) > 2 {
			p2 = edges[2].Back().Point()
			v = p2.Sub(p0)
		}
	}
	return geom.Plane{Origin: p0, U: u, V: v}, nil
}

// RSweep revolves a planar profile wire by angle (radians, clamped to
// [-2*pi, 2*pi]) around an axis, producing a Solid. A full 2*pi sweep
// produces a closed torus-like solid whose side faces meet neighbors
// along a shared vertex-circle edge at each profile vertex, with no cap
// faces; a partial sweep adds two planar cap faces, one at each end
// angle.
func RSweep(profile *topo.Wire, origin geom.Point3, axis geom.Vector3, angle float64, tol float64) (*topo.Solid, error) {
	if !profile.IsClosed() {
		return nil, kernelerr.ErrTopologyViolation
	}
	if angle > 2*math.Pi {
		angle = 2 * math.Pi
	}
	if angle < -2*math.Pi {
		angle = -2 * math.Pi
	}
	edges := profile.Edges()
	if math.Abs(math.Abs(angle)-2*math.Pi) < 1e-9 {
		return rsweepFullTurn(edges, origin, axis, tol)
	}
	return rsweepPartialTurn(edges, origin, axis, angle, tol)
}

// rsweepFullTurn builds one band face per profile edge. A band's
// boundary is the full circle traced by its front vertex (outer) and
// the full circle traced by its back vertex (hole); each vertex circle
// is built once and shared, forward in the band that starts there and
// reversed in the band that ends there, so adjacent bands are welded by
// identity instead of each forming its own disconnected sliver.
func rsweepFullTurn(edges []topo.OrientedEdge, origin geom.Point3, axis geom.Vector3, tol float64) (*topo.Solid, error) {
	circles := make(map[*topo.Vertex]*topo.Edge)
	getCircle := func(v *topo.Vertex) (*topo.Edge, error) {
		if c, ok := circles[v]; ok {
			return c, nil
		}
		c, err := topo.NewEdge(geom.NewUnitCircleArc(origin, axis, v.Point(), 2*math.Pi), v, v, tol)
		if err != nil {
			return nil, err
		}
		circles[v] = c
		return c, nil
	}

	faces := make([]*topo.Face, 0, len(edges))
	for _, e := range edges {
		front, back := e.Front(), e.Back()
		surface := geom.RevolutedSurface{Profile: e.Curve(), Origin: origin, Axis: axis}

		frontCircle, err := getCircle(front)
		if err != nil {
			return nil, err
		}
		backCircle, err := getCircle(back)
		if err != nil {
			return nil, err
		}

		outer, err := topo.NewWire([]topo.OrientedEdge{frontCircle})
		if err != nil {
			return nil, err
		}
		hole, err := topo.NewWire([]topo.OrientedEdge{topo.Reverse(backCircle)})
		if err != nil {
			return nil, err
		}
		face, err := topo.NewFace(surface, outer, []*topo.Wire{hole}, true)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}

	shell := topo.NewShell(faces)
	return topo.NewSolid(shell, nil)
}

// rsweepPartialTurn builds a side face per profile edge plus the two
// planar end caps, following the same weld-by-identity structure as
// tsweepWire: each radial edge between a profile vertex and its rotated
// image is built once and shared between the two side faces meeting at
// that vertex.
func rsweepPartialTurn(edges []topo.OrientedEdge, origin geom.Point3, axis geom.Vector3, angle, tol float64) (*topo.Solid, error) {
	xf := geom.AxisRotation(origin, axis, angle)

	endVertices := make(map[*topo.Vertex]*topo.Vertex)
	getEnd := func(v *topo.Vertex) *topo.Vertex {
		if ev, ok := endVertices[v]; ok {
			return ev
		}
		ev := topo.NewVertex(xf.ApplyPoint(v.Point()))
		endVertices[v] = ev
		return ev
	}

	radials := make(map[*topo.Vertex]*topo.Edge)
	getRadial := func(v *topo.Vertex) (*topo.Edge, error) {
		if r, ok := radials[v]; ok {
			return r, nil
		}
		r, err := topo.NewEdge(geom.NewUnitCircleArc(origin, axis, v.Point(), angle), v, getEnd(v), tol)
		if err != nil {
			return nil, err
		}
		radials[v] = r
		return r, nil
	}

	sideFaces := make([]*topo.Face, 0, len(edges))
	endEdges := make([]topo.OrientedEdge, len(edges))

	for i, e := range edges {
		front, back := e.Front(), e.Back()
		endFront, endBack := getEnd(front), getEnd(back)
		surface := geom.RevolutedSurface{Profile: e.Curve(), Origin: origin, Axis: axis}

		endCurve := geom.CurveProcessor{Inner: e.Curve(), Xf: xf}
		endEdge, err := topo.NewEdge(endCurve, endFront, endBack, tol)
		if err != nil {
			return nil, err
		}
		endEdges[i] = endEdge

		radialFront, err := getRadial(front)
		if err != nil {
			return nil, err
		}
		radialBack, err := getRadial(back)
		if err != nil {
			return nil, err
		}

		sideWire, err := topo.NewWire([]topo.OrientedEdge{
			e, radialBack, topo.Reverse(endEdge), topo.Reverse(radialFront),
		})
		if err != nil {
			return nil, err
		}
		face, err := topo.NewFace(surface, sideWire, nil, true)
		if err != nil {
			return nil, err
		}
		sideFaces = append(sideFaces, face)
	}

	bottomPlane, err := profilePlane(edges)
	if err != nil {
		return nil, err
	}
	bottomEdges := make([]topo.OrientedEdge, len(edges))
	for i, e := range edges {
		bottomEdges[len(edges)-1-i] = topo.ReverseOriented(e)
	}
	bottomWire, err := topo.NewWire(bottomEdges)
	if err != nil {
		return nil, err
	}
	bottomFace, err := topo.NewFace(bottomPlane, bottomWire, nil, false)
	if err != nil {
		return nil, err
	}

	endWire, err := topo.NewWire(endEdges)
	if err != nil {
		return nil, err
	}
	endPlane := geom.SurfaceProcessor{Inner: bottomPlane, Xf: xf}
	endFace, err := topo.NewFace(endPlane, endWire, nil, true)
	if err != nil {
		return nil, err
	}

	shell := topo.NewShell(append([]*topo.Face{bottomFace, endFace}, sideFaces...))
	return topo.NewSolid(shell, nil)
}
