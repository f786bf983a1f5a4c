package fillet

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/kernelerr"
	"github.com/go-brep/kernel/topo"
)

// wedge captures the local geometry of two planar faces meeting along a
// straight edge: the in-plane directions pointing from the edge into
// each face, and the angle between them (the material's dihedral
// wedge angle at the edge).
type wedge struct {
	u1, u2 geom.Vector3
	phi    float64
}

// faceInPlaneDirection returns the unit direction, orthogonal to
// edgeDir, pointing from edgePoint toward face's interior (approximated
// by the centroid of its outer boundary vertices). Returns
// kernelerr.ErrDegenerateEdge if the face collapses onto the edge line.
func faceInPlaneDirection(face *topo.Face, edgeDir geom.Vector3, edgePoint geom.Point3) (geom.Vector3, error) {
	edges := face.OuterBoundary().Edges()
	var sum geom.Vector3
	for _, e := range edges {
		sum = sum.Add(e.Front().Point().ToVector3())
	}
	centroid := sum.Scale(1 / float64(len(edges))).ToPoint3()

	raw := centroid.Sub(edgePoint)
	inPlane := raw.Sub(edgeDir.Scale(raw.Dot(edgeDir)))
	if inPlane.IsZero(1e-9) {
		return geom.Vector3{}, kernelerr.ErrDegenerateEdge
	}
	return inPlane.Normalize(), nil
}

// buildWedge computes the wedge geometry for edge shared by faceA/faceB.
func buildWedge(edge topo.OrientedEdge, faceA, faceB *topo.Face, edgeDir geom.Vector3) (wedge, error) {
	u1, err := faceInPlaneDirection(faceA, edgeDir, edge.Front().Point())
	if err != nil {
		return wedge{}, err
	}
	u2, err := faceInPlaneDirection(faceB, edgeDir, edge.Front().Point())
	if err != nil {
		return wedge{}, err
	}
	phi := acos(clampUnit(u1.Dot(u2)))
	if phi < 1e-4 || phi > pi-1e-4 {
		return wedge{}, kernelerr.ErrUnsupportedGeometry
	}
	return wedge{u1: u1, u2: u2, phi: phi}, nil
}

// blendGeometry is the constructed replacement geometry for a single
// fillet: the rolling-ball surface plus the tangent lines along which
// the two adjacent faces get trimmed.
type blendGeometry struct {
	surface      geom.Surface
	tangentLineA *geom.Line
	tangentLineB *geom.Line
}

// buildBlend constructs the blend surface for edge given its wedge
// geometry and the requested radius profile. Round uses an RbfSurface
// (true circular arc blend); Chamfer uses a flat ruled Plane between the
// two tangent lines; Ridge is Chamfer with the tangent offsets negated so
// the cut protrudes rather than recedes. Custom reuses the Round
// construction verbatim; a distinct swept cross-section is not built.
func buildBlend(edge topo.OrientedEdge, w wedge, edgeDir geom.Vector3, opts Options) (blendGeometry, error) {
	front := edge.Front().Point()
	edgeLen := edge.Back().Point().Sub(front).Length()

	radiusAt := func(v float64) float64 {
		s := 0.0
		if edgeLen > 1e-12 {
			s = v / edgeLen
		}
		r := opts.Radius.At(s)
		if opts.Profile == Ridge {
			return -r
		}
		return r
	}

	maxRadius := maxAbsRadius(opts.Radius, 16)
	if maxRadius > edgeLen/2 && edgeLen > 1e-12 {
		return blendGeometry{}, kernelerr.ErrRadiusTooLarge
	}

	edgePointAt := func(v float64) geom.Point3 { return front.Add(edgeDir.Scale(v)) }
	tanLen := func(v float64) float64 { return radiusAt(v) / tanHalf(w.phi) }

	tangentA := geom.NewLine(
		edgePointAt(0).Add(w.u1.Scale(tanLen(0))),
		edgeDir,
		0, edgeLen,
	)
	tangentB := geom.NewLine(
		edgePointAt(0).Add(w.u2.Scale(tanLen(0))),
		edgeDir,
		0, edgeLen,
	)

	if opts.Profile == Chamfer || opts.Profile == Ridge {
		surface := geom.Plane{
			Origin: tangentA.Origin,
			U:      edgeDir,
			V:      tangentB.Origin.Sub(tangentA.Origin),
		}
		return blendGeometry{surface: surface, tangentLineA: tangentA, tangentLineB: tangentB}, nil
	}

	bisector := func(v float64) geom.Vector3 { return w.u1.Add(w.u2).Normalize() }
	center := func(v float64) geom.Point3 {
		r := radiusAt(v)
		return edgePointAt(v).Add(bisector(v).Scale(r / sinHalf(w.phi)))
	}
	e1 := func(v float64) geom.Vector3 { return w.u1.Scale(w.u1.Dot(w.u2)).Sub(w.u2).Normalize() }
	e2 := func(v float64) geom.Vector3 { return w.u1.Neg() }
	angle := func(v float64) float64 { return pi - w.phi }
	radius := func(v float64) float64 {
		r := radiusAt(v)
		if r < 0 {
			return -r
		}
		return r
	}

	surface := geom.RbfSurface{
		Center: center,
		E1:     e1,
		E2:     e2,
		Radius: radius,
		Angle:  angle,
		Domain: geom.Interval{Min: 0, Max: edgeLen},
	}
	return blendGeometry{surface: surface, tangentLineA: tangentA, tangentLineB: tangentB}, nil
}

func maxAbsRadius(r Radius, samples int) float64 {
	best := 0.0
	for i := 0; i <= samples; i++ {
		v := r.At(float64(i) / float64(samples))
		if v < 0 {
			v = -v
		}
		if v > best {
			best = v
		}
	}
	return best
}
