package mesh

import (
	"github.com/dhconnelly/rtreego"
	"github.com/go-brep/kernel/geom"
)

// BoundingBox is the axis-aligned box enclosing every position in the
// mesh, degenerate (zero at every extent) for an empty mesh.
type BoundingBox struct {
	Min, Max geom.Point3
}

// Diagonal returns the box's diagonal extent vector.
func (b BoundingBox) Diagonal() geom.Vector3 { return b.Max.Sub(b.Min) }

// AnalyzeBoundingBox scans every position once.
func AnalyzeBoundingBox(m *PolygonMesh) BoundingBox {
	if len(m.Positions) == 0 {
		return BoundingBox{}
	}
	min, max := m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		min = geom.Point3{X: minf(min.X, p.X), Y: minf(min.Y, p.Y), Z: minf(min.Z, p.Z)}
		max = geom.Point3{X: maxf(max.X, p.X), Y: maxf(max.Y, p.Y), Z: maxf(max.Z, p.Z)}
	}
	return BoundingBox{Min: min, Max: max}
}

// AnalyzeVolume returns the signed volume enclosed by the mesh via the
// divergence theorem (sum of signed tetrahedra from the origin to each
// triangle). A mesh wound consistently outward yields a positive volume;
// a shell with inverted winding yields the negative of the true volume.
func AnalyzeVolume(m *PolygonMesh) float64 {
	var sum float64
	for _, tri := range m.Triangles {
		a := m.Positions[tri[0].Position].ToVector3()
		b := m.Positions[tri[1].Position].ToVector3()
		c := m.Positions[tri[2].Position].ToVector3()
		sum += a.Cross(b).Dot(c)
	}
	return sum / 6
}

// AnalyzeCenterOfGravity returns the area-weighted mean of triangle
// centroids: the centroid of the mesh's surface, as for a thin shell.
// For a closed mesh this is not in general the centroid of the enclosed
// volume; the two coincide for point-symmetric shapes such as a box.
func AnalyzeCenterOfGravity(m *PolygonMesh) geom.Point3 {
	var weighted geom.Vector3
	var totalArea float64
	for _, tri := range m.Triangles {
		a := m.Positions[tri[0].Position]
		b := m.Positions[tri[1].Position]
		c := m.Positions[tri[2].Position]
		area := b.Sub(a).Cross(c.Sub(a)).Length() / 2
		centroid := a.Add(b.Sub(a).Scale(1.0 / 3)).Add(c.Sub(a).Scale(1.0 / 3))
		weighted = weighted.Add(centroid.ToVector3().Scale(area))
		totalArea += area
	}
	if totalArea < 1e-15 {
		return geom.Point3{}
	}
	return weighted.Scale(1 / totalArea).ToPoint3()
}

// Condition summarizes a mesh's geometric health: counts of boundary
// (open) edges and edges shared by more than two triangles, found with an
// rtreego index over each edge's bounding box rather than an O(n^2) scan.
type Condition struct {
	OpenEdges        int
	NonManifoldEdges int
	TriangleCount    int
}

// Healthy reports whether the mesh is a closed, manifold shell.
func (c Condition) Healthy() bool { return c.OpenEdges == 0 && c.NonManifoldEdges == 0 }

type edgeKey struct {
	a, b geom.Point3
}

type edgeBox struct {
	key   edgeKey
	bb    rtreego.Rect
	count int
}

func (e *edgeBox) Bounds() rtreego.Rect { return e.bb }

// AnalyzeCondition welds positions within tol to classify each mesh edge
// by how many triangles reference it.
func AnalyzeCondition(m *PolygonMesh, tol float64) Condition {
	tree := rtreego.NewTree(3, 4, 16)
	boxes := make(map[edgeKey]*edgeBox)

	addEdge := func(p0, p1 geom.Point3) {
		key := canonicalEdgeKey(p0, p1, tol)
		if existing, found := lookupEdge(tree, key, tol); found {
			existing.count++
			return
		}
		box := &edgeBox{key: key, bb: pointPairRect(key.a, key.b, tol), count: 1}
		boxes[key] = box
		tree.Insert(box)
	}

	for _, tri := range m.Triangles {
		p0 := m.Positions[tri[0].Position]
		p1 := m.Positions[tri[1].Position]
		p2 := m.Positions[tri[2].Position]
		addEdge(p0, p1)
		addEdge(p1, p2)
		addEdge(p2, p0)
	}

	cond := Condition{TriangleCount: len(m.Triangles)}
	for _, box := range boxes {
		switch {
		case box.count == 1:
			cond.OpenEdges++
		case box.count > 2:
			cond.NonManifoldEdges++
		}
	}
	return cond
}

// canonicalEdgeKey orders an edge's two endpoints so the same physical
// edge walked in either direction (by the two triangles that share it)
// produces the same key.
func canonicalEdgeKey(p0, p1 geom.Point3, tol float64) edgeKey {
	if pointLess(p1, p0, tol) {
		p0, p1 = p1, p0
	}
	return edgeKey{a: p0, b: p1}
}

func pointLess(a, b geom.Point3, tol float64) bool {
	if a.X < b.X-tol {
		return true
	}
	if a.X > b.X+tol {
		return false
	}
	if a.Y < b.Y-tol {
		return true
	}
	if a.Y > b.Y+tol {
		return false
	}
	return a.Z < b.Z-tol
}

func pointPairRect(a, b geom.Point3, tol float64) rtreego.Rect {
	lo := geom.Point3{X: minf(a.X, b.X) - tol, Y: minf(a.Y, b.Y) - tol, Z: minf(a.Z, b.Z) - tol}
	hi := geom.Point3{X: maxf(a.X, b.X) + tol, Y: maxf(a.Y, b.Y) + tol, Z: maxf(a.Z, b.Z) + tol}
	lengths := []float64{hi.X - lo.X, hi.Y - lo.Y, hi.Z - lo.Z}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = tol
		}
	}
	rect, err := rtreego.NewRect(rtreego.Point{lo.X, lo.Y, lo.Z}, lengths)
	if err != nil {
		return rtreego.Rect{}
	}
	return rect
}

func lookupEdge(tree *rtreego.Rtree, key edgeKey, tol float64) (*edgeBox, bool) {
	probe := pointPairRect(key.a, key.b, tol)
	for _, hit := range tree.SearchIntersect(probe) {
		box, ok := hit.(*edgeBox)
		if !ok {
			continue
		}
		if box.key.a.ApproxEqual(key.a, tol) && box.key.b.ApproxEqual(key.b, tol) {
			return box, true
		}
	}
	return nil, false
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
