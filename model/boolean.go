package model

import (
	"github.com/akavel/polyclip-go"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/kernelerr"
	"github.com/go-brep/kernel/topo"
)

// BooleanOp selects the combination rule applied by Boolean.
type BooleanOp int

const (
	// Union keeps material present in either operand.
	Union BooleanOp = iota
	// Intersect keeps material present in both operands.
	Intersect
	// Subtract keeps material in the first operand not covered by the
	// second.
	Subtract
)

// Box is an axis-aligned box, the kernel's representation for the Boolean
// operator's supported operand shapes. Free-form NURBS-vs-NURBS boolean
// combination needs general surface-surface intersection curves (see
// geom.IntersectionCurve) stitched into new trim loops on both operands,
// which this kernel version does not attempt; Boolean is restricted to
// box algebra, covering the axis-aligned "punched cube" class of model
// (see DESIGN.md).
type Box struct {
	Min, Max geom.Point3
}

// Contains reports whether other lies entirely within b.
func (b Box) Contains(other Box) bool {
	return other.Min.X >= b.Min.X && other.Min.Y >= b.Min.Y && other.Min.Z >= b.Min.Z &&
		other.Max.X <= b.Max.X && other.Max.Y <= b.Max.Y && other.Max.Z <= b.Max.Z
}

// Overlaps reports whether b and other share any interior volume.
func (b Box) Overlaps(other Box) bool {
	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y &&
		b.Min.Z < other.Max.Z && b.Max.Z > other.Min.Z
}

// Intersection returns the overlapping region of b and other; ok is false
// if they don't overlap.
func (b Box) Intersection(other Box) (Box, bool) {
	if !b.Overlaps(other) {
		return Box{}, false
	}
	return Box{
		Min: geom.Point3{X: maxf(b.Min.X, other.Min.X), Y: maxf(b.Min.Y, other.Min.Y), Z: maxf(b.Min.Z, other.Min.Z)},
		Max: geom.Point3{X: minf(b.Max.X, other.Max.X), Y: minf(b.Max.Y, other.Max.Y), Z: minf(b.Max.Z, other.Max.Z)},
	}, true
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Boolean combines two axis-aligned boxes per op. Union requires one
// operand to contain the other (the result is then that operand); a
// non-box union of partially overlapping or disjoint boxes returns
// kernelerr.ErrUnsupportedGeometry, since this kernel's Boolean operator
// does not build multi-lobed solids. Intersect returns the overlap box of
// any two boxes that overlap, and ErrUnsupportedGeometry for boxes that
// do not. Subtract supports the "punched cube" case (b entirely inside a,
// touching none of a's faces) by returning a solid whose outer shell is
// a's six faces and whose single void shell is b's six faces reversed.
func Boolean(a, b Box, op BooleanOp, tol float64) (*topo.Solid, error) {
	switch op {
	case Union:
		if a.Contains(b) {
			return NewBoxSolid(a, tol)
		}
		if b.Contains(a) {
			return NewBoxSolid(b, tol)
		}
		return nil, kernelerr.ErrUnsupportedGeometry
	case Intersect:
		region, ok := a.Intersection(b)
		if !ok {
			return nil, kernelerr.ErrUnsupportedGeometry
		}
		return NewBoxSolid(region, tol)
	case Subtract:
		return punchCube(a, b, tol)
	default:
		return nil, kernelerr.ErrUnsupportedGeometry
	}
}

func punchCube(outer, hole Box, tol float64) (*topo.Solid, error) {
	if !strictlyInterior(outer, hole, tol) {
		return nil, kernelerr.ErrUnsupportedGeometry
	}
	outerShell, err := boxShell(outer, true, tol)
	if err != nil {
		return nil, err
	}
	voidShell, err := boxShell(hole, false, tol)
	if err != nil {
		return nil, err
	}
	return topo.NewSolid(outerShell, []*topo.Shell{voidShell})
}

// strictlyInterior reports whether hole lies inside outer without
// touching any of outer's six bounding planes, the condition under which
// the void's boundary need not be stitched to the outer shell.
func strictlyInterior(outer, hole Box, tol float64) bool {
	return hole.Min.X > outer.Min.X+tol && hole.Min.Y > outer.Min.Y+tol && hole.Min.Z > outer.Min.Z+tol &&
		hole.Max.X < outer.Max.X-tol && hole.Max.Y < outer.Max.Y-tol && hole.Max.Z < outer.Max.Z-tol
}

// NewBoxSolid builds a Solid whose boundary is the six faces of box.
func NewBoxSolid(box Box, tol float64) (*topo.Solid, error) {
	shell, err := boxShell(box, true, tol)
	if err != nil {
		return nil, err
	}
	return topo.NewSolid(shell, nil)
}

// boxShell builds the six-faced shell of box, outward-oriented if
// outward is true (for an outer boundary) or inward-oriented otherwise
// (for a void boundary, whose normals must point into the cavity). Each
// of the box's 12 physical edges is built exactly once and shared by
// its two incident quads (forward in one, topo.Reverse in the other),
// via boxEdges, so the resulting shell is closed and consistently
// oriented rather than twelve pairs of edges each used by a single face.
func boxShell(box Box, outward bool, tol float64) (*topo.Shell, error) {
	lo, hi := box.Min, box.Max
	corner := func(x, y, z float64) geom.Point3 { return geom.Point3{X: x, Y: y, Z: z} }

	v := [8]*topo.Vertex{
		topo.NewVertex(corner(lo.X, lo.Y, lo.Z)), // 0
		topo.NewVertex(corner(hi.X, lo.Y, lo.Z)), // 1
		topo.NewVertex(corner(hi.X, hi.Y, lo.Z)), // 2
		topo.NewVertex(corner(lo.X, hi.Y, lo.Z)), // 3
		topo.NewVertex(corner(lo.X, lo.Y, hi.Z)), // 4
		topo.NewVertex(corner(hi.X, lo.Y, hi.Z)), // 5
		topo.NewVertex(corner(hi.X, hi.Y, hi.Z)), // 6
		topo.NewVertex(corner(lo.X, hi.Y, hi.Z)), // 7
	}
	edges := boxEdges(v, tol)

	// Each quad lists corner indices counter-clockwise as seen from
	// outside the box.
	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom (z = lo.Z), normal -Z
		{4, 5, 6, 7}, // top (z = hi.Z), normal +Z
		{0, 1, 5, 4}, // front (y = lo.Y), normal -Y
		{2, 3, 7, 6}, // back (y = hi.Y), normal +Y
		{0, 4, 7, 3}, // left (x = lo.X), normal -X
		{1, 2, 6, 5}, // right (x = hi.X), normal +X
	}

	faces := make([]*topo.Face, 0, 6)
	for _, q := range quads {
		idx := q
		if !outward {
			idx = [4]int{q[0], q[3], q[2], q[1]} // reverse winding for inward normals
		}
		face, err := quadFace(v, edges, idx)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return topo.NewShell(faces), nil
}

// boxEdges builds the 12 physical edges of a box keyed by their unordered
// vertex-index pair, one *topo.Edge per pair regardless of how many quads
// traverse it or in which sense.
func boxEdges(v [8]*topo.Vertex, tol float64) map[[2]int]*topo.Edge {
	pairs := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom ring
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top ring
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // risers
	}
	edges := make(map[[2]int]*topo.Edge, len(pairs))
	for _, p := range pairs {
		from, to := v[p[0]], v[p[1]]
		e, err := topo.NewEdge(geom.NewLine(from.Point(), to.Point().Sub(from.Point()), 0, 1), from, to, tol)
		if err != nil {
			// Zero-length or degenerate box edges are caller error (a
			// box with Min == Max on some axis); edgeBetween below
			// surfaces it through quadFace's error return instead.
			continue
		}
		edges[p] = e
	}
	return edges
}

// edgeBetween looks up the shared edge between vertex indices i and j,
// returning it forward if it was built as i->j or topo.Reverse'd if it
// was built as j->i, so every caller observes a correctly oriented
// traversal without allocating a second identity for the same physical
// edge.
func edgeBetween(edges map[[2]int]*topo.Edge, i, j int) (topo.OrientedEdge, error) {
	if e, ok := edges[[2]int{i, j}]; ok {
		return e, nil
	}
	if e, ok := edges[[2]int{j, i}]; ok {
		return topo.Reverse(e), nil
	}
	return nil, kernelerr.ErrDegenerateEdge
}

func quadFace(v [8]*topo.Vertex, edges map[[2]int]*topo.Edge, idx [4]int) (*topo.Face, error) {
	a, b, d := v[idx[0]], v[idx[1]], v[idx[3]]
	ab, err := edgeBetween(edges, idx[0], idx[1])
	if err != nil {
		return nil, err
	}
	bc, err := edgeBetween(edges, idx[1], idx[2])
	if err != nil {
		return nil, err
	}
	cd, err := edgeBetween(edges, idx[2], idx[3])
	if err != nil {
		return nil, err
	}
	da, err := edgeBetween(edges, idx[3], idx[0])
	if err != nil {
		return nil, err
	}
	wire, err := topo.NewWire([]topo.OrientedEdge{ab, bc, cd, da})
	if err != nil {
		return nil, err
	}
	plane := geom.Plane{Origin: a.Point(), U: b.Point().Sub(a.Point()), V: d.Point().Sub(a.Point())}
	return topo.NewFace(plane, wire, nil, true)
}

// clipCoplanarLoops combines two coplanar polygons (given as UV loops on
// a shared plane) per op, using polyclip-go's Vatti-clipping
// implementation. No operator calls it: Boolean's box algebra above needs
// no polygon clipping, and the fillet engine does no seam repair of this
// kind.
func clipCoplanarLoops(a, b []geom.Point2, op BooleanOp) []geom.Point2 {
	toContour := func(pts []geom.Point2) polyclip.Contour {
		c := make(polyclip.Contour, len(pts))
		for i, p := range pts {
			c[i] = polyclip.Point{X: p.X, Y: p.Y}
		}
		return c
	}
	pa := polyclip.Polygon{toContour(a)}
	pb := polyclip.Polygon{toContour(b)}

	var clipOp polyclip.Op
	switch op {
	case Union:
		clipOp = polyclip.UNION
	case Intersect:
		clipOp = polyclip.INTERSECTION
	case Subtract:
		clipOp = polyclip.DIFFERENCE
	}
	result := pa.Construct(clipOp, pb)
	if len(result) == 0 {
		return nil
	}
	out := make([]geom.Point2, len(result[0]))
	for i, p := range result[0] {
		out[i] = geom.Point2{X: p.X, Y: p.Y}
	}
	return out
}
