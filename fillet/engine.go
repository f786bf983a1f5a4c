package fillet

import (
	"fmt"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/kernelerr"
	"github.com/go-brep/kernel/topo"
)

// trimTolerance is the vertex/edge coincidence tolerance used for the
// straight connector edges Run introduces at a blend's ends.
const trimTolerance = 1e-9

// Result is the outcome of a single successful Run: the repaired shell
// plus the new blend face, for callers chaining further fillets against
// a freshly built blend.
type Result struct {
	Shell     *topo.Shell
	BlendFace *topo.Face
}

// Run blends the edge identified by edgeID, which must be shared by
// exactly two planar faces of shell, replacing it with a single blend
// face per opts. On any failure the original shell is unaffected; Run
// reports the error and never returns a partially repaired shell.
//
// This covers a single straight edge between two planar faces (the
// "punched cube" class of model); multi-edge chains with shared corner
// vertices and curved adjacent faces are not handled by this version.
func Run(shell *topo.Shell, edgeID identity.Token, opts Options) (Result, error) {
	state := idle
	step := func(to chainState) error {
		next, ok := state.transition(to)
		if !ok {
			return fmt.Errorf("kernel: illegal fillet stage transition %s -> %s", state, to)
		}
		state = next
		return nil
	}
	fail := func(err error) (Result, error) {
		state.transition(rolledBack)
		return Result{}, err
	}

	faceA, faceB, edgeA, edgeB, err := findSharedEdge(shell, edgeID)
	if err != nil {
		return fail(err)
	}
	if edgeA.Front().Point().ApproxEqual(edgeA.Back().Point(), trimTolerance) {
		return fail(kernelerr.ErrDegenerateEdge)
	}
	if _, ok := faceA.Surface().(geom.Plane); !ok {
		return fail(kernelerr.ErrUnsupportedGeometry)
	}
	if _, ok := faceB.Surface().(geom.Plane); !ok {
		return fail(kernelerr.ErrUnsupportedGeometry)
	}
	if err := step(validated); err != nil {
		return Result{}, err
	}

	edgeDir := edgeA.Back().Point().Sub(edgeA.Front().Point()).Normalize()

	w, err := buildWedge(edgeA, faceA, faceB, edgeDir)
	if err != nil {
		return fail(err)
	}
	blend, err := buildBlend(edgeA, w, edgeDir, opts)
	if err != nil {
		return fail(err)
	}
	if err := step(geometryBuilt); err != nil {
		return Result{}, err
	}

	edgeLen := blend.tangentLineA.Bounds().Max
	tanAFront := topo.NewVertex(blend.tangentLineA.Evaluate(0))
	tanABack := topo.NewVertex(blend.tangentLineA.Evaluate(edgeLen))
	tanBFront := topo.NewVertex(blend.tangentLineB.Evaluate(0))
	tanBBack := topo.NewVertex(blend.tangentLineB.Evaluate(edgeLen))

	trimmedA, err := trimFaceAlongEdge(faceA, edgeA, edgeA.Front(), tanAFront, tanABack)
	if err != nil {
		return fail(err)
	}
	trimmedB, err := trimFaceAlongEdge(faceB, edgeB, edgeA.Front(), tanBFront, tanBBack)
	if err != nil {
		return fail(err)
	}
	if err := step(facesTrimmed); err != nil {
		return Result{}, err
	}

	blendFace, err := buildBlendFace(blend, tanAFront, tanABack, tanBFront, tanBBack)
	if err != nil {
		return fail(err)
	}

	faces := shell.Faces()
	newFaces := make([]*topo.Face, 0, len(faces)+1)
	for _, f := range faces {
		switch f.ID() {
		case faceA.ID():
			newFaces = append(newFaces, trimmedA)
		case faceB.ID():
			newFaces = append(newFaces, trimmedB)
		default:
			newFaces = append(newFaces, f)
		}
	}
	newFaces = append(newFaces, blendFace)
	repaired := topo.NewShell(newFaces)
	if err := step(shellRepaired); err != nil {
		return Result{}, err
	}
	if repaired.Disconnected() || repaired.Open() {
		return fail(kernelerr.ErrTopologyViolation)
	}
	if repaired.ClosedButNotOriented() {
		return fail(&kernelerr.NonManifoldEdgeError{Count: len(repaired.SingularVertices())})
	}
	if err := step(committed); err != nil {
		return Result{}, err
	}

	return Result{Shell: repaired, BlendFace: blendFace}, nil
}

// findSharedEdge locates the two faces of shell whose outer boundary
// contains an edge with the given identity, returning each face's own
// OrientedEdge instance (front/back may be swapped between the two,
// depending on each face's winding).
func findSharedEdge(shell *topo.Shell, edgeID identity.Token) (faceA, faceB *topo.Face, edgeA, edgeB topo.OrientedEdge, err error) {
	type hit struct {
		face *topo.Face
		edge topo.OrientedEdge
	}
	var hits []hit
	for _, f := range shell.Faces() {
		for _, e := range f.OuterBoundary().Edges() {
			if e.ID() == edgeID {
				hits = append(hits, hit{f, e})
				break
			}
		}
	}
	if len(hits) != 2 {
		return nil, nil, nil, nil, &kernelerr.NonManifoldEdgeError{Count: len(hits)}
	}
	return hits[0].face, hits[1].face, hits[0].edge, hits[1].edge, nil
}

// straightEdge builds a new topo.Edge along the straight line from a to
// b, used for the connector edges a blend introduces at each end.
func straightEdge(a, b *topo.Vertex, tol float64) (*topo.Edge, error) {
	line := geom.NewLine(a.Point(), b.Point().Sub(a.Point()), 0, 1)
	return topo.NewEdge(line, a, b, tol)
}

// trimFaceAlongEdge replaces the shared edge inside face's outer wire
// with a three-edge chain: a connector from the wire's existing
// neighbor vertex to the new tangent-point vertex, the tangent edge
// itself, and a connector back to the other existing neighbor.
// canonicalFront identifies which physical endpoint of the blended edge is
// "front" in the canonical (faceA) orientation, so the tangent vertices
// -- always supplied in that canonical order -- land on the correct end
// of edgeInFace regardless of this face's own winding.
func trimFaceAlongEdge(face *topo.Face, edgeInFace topo.OrientedEdge, canonicalFront *topo.Vertex, tanFront, tanBack *topo.Vertex) (*topo.Face, error) {
	edges := face.OuterBoundary().Edges()
	idx := -1
	for i, e := range edges {
		if e.ID() == edgeInFace.ID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, kernelerr.ErrTopologyViolation
	}

	near, far := tanFront, tanBack
	if !edgeInFace.Front().Point().ApproxEqual(canonicalFront.Point(), trimTolerance) {
		near, far = tanBack, tanFront
	}

	connectorNear, err := straightEdge(edgeInFace.Front(), near, trimTolerance)
	if err != nil {
		return nil, err
	}
	tangentEdge, err := straightEdge(near, far, trimTolerance)
	if err != nil {
		return nil, err
	}
	connectorFar, err := straightEdge(far, edgeInFace.Back(), trimTolerance)
	if err != nil {
		return nil, err
	}

	newEdges := make([]topo.OrientedEdge, 0, len(edges)+2)
	newEdges = append(newEdges, edges[:idx]...)
	newEdges = append(newEdges, connectorNear, tangentEdge, connectorFar)
	newEdges = append(newEdges, edges[idx+1:]...)

	newWire, err := topo.NewWire(newEdges)
	if err != nil {
		return nil, err
	}
	return topo.NewFace(face.Surface(), newWire, face.Holes(), face.Orientation())
}

// uvSegment is a straight line in a surface's parameter domain, used for
// a blend face's end caps: isoparametric-exact because each cap follows
// the surface's own (u, v) grid rather than a chord through 3-space.
type uvSegment struct {
	from, to geom.Point2
}

func (s uvSegment) Evaluate(t float64) geom.Point2 {
	return geom.Point2{
		X: s.from.X + (s.to.X-s.from.X)*t,
		Y: s.from.Y + (s.to.Y-s.from.Y)*t,
	}
}

func (s uvSegment) Derivative(order int, t float64) geom.Point2 {
	if order == 0 {
		return s.Evaluate(t)
	}
	if order == 1 {
		return geom.Point2{X: s.to.X - s.from.X, Y: s.to.Y - s.from.Y}
	}
	return geom.Point2{}
}

func (s uvSegment) Bounds() geom.Interval { return geom.Interval{Min: 0, Max: 1} }

// buildBlendFace assembles the blend surface's own boundary wire. The
// two long edges reuse the tangent lines exactly (they are the surface's
// u=0/u=1 isoparametric curves by construction); the two end caps are
// PCurves following the surface's own parameter grid between the
// corresponding corners, found via Invert.
func buildBlendFace(blend blendGeometry, tanAFront, tanABack, tanBFront, tanBBack *topo.Vertex) (*topo.Face, error) {
	edgeAlongA, err := topo.NewEdge(blend.tangentLineA, tanAFront, tanABack, trimTolerance)
	if err != nil {
		return nil, err
	}
	edgeAlongBFwd, err := topo.NewEdge(blend.tangentLineB, tanBFront, tanBBack, trimTolerance)
	if err != nil {
		return nil, err
	}
	edgeAlongBRev := topo.Reverse(edgeAlongBFwd)

	uvOf := func(v *topo.Vertex) geom.Point2 {
		uv, _ := blend.surface.Invert(v.Point(), nil)
		return geom.Point2{X: uv.U, Y: uv.V}
	}

	capFar := geom.PCurve{Surface: blend.surface, Param: uvSegment{from: uvOf(tanABack), to: uvOf(tanBBack)}}
	capNear := geom.PCurve{Surface: blend.surface, Param: uvSegment{from: uvOf(tanBFront), to: uvOf(tanAFront)}}

	edgeCapFar, err := topo.NewEdge(capFar, tanABack, tanBBack, trimTolerance)
	if err != nil {
		return nil, err
	}
	edgeCapNear, err := topo.NewEdge(capNear, tanBFront, tanAFront, trimTolerance)
	if err != nil {
		return nil, err
	}

	wire, err := topo.NewWire([]topo.OrientedEdge{edgeAlongA, edgeCapFar, edgeAlongBRev, edgeCapNear})
	if err != nil {
		return nil, err
	}
	return topo.NewFace(blend.surface, wire, nil, true)
}
