package mesh

import (
	"github.com/akavel/polyclip-go"
	"github.com/go-brep/kernel/geom"
)

// AddSmoothNormals returns a copy of m with a Normals buffer built by
// averaging, at each position, the area-weighted normal of every
// triangle that references it -- the standard per-vertex smooth-shading
// normal.
func AddSmoothNormals(m *PolygonMesh) *PolygonMesh {
	accum := make([]geom.Vector3, len(m.Positions))
	for _, tri := range m.Triangles {
		a := m.Positions[tri[0].Position]
		b := m.Positions[tri[1].Position]
		c := m.Positions[tri[2].Position]
		weighted := b.Sub(a).Cross(c.Sub(a))
		for _, corner := range tri {
			accum[corner.Position] = accum[corner.Position].Add(weighted)
		}
	}
	normals := make([]geom.Vector3, len(accum))
	for i, n := range accum {
		normals[i] = n.Normalize()
	}

	out := &PolygonMesh{
		Positions: m.Positions,
		UVs:       m.UVs,
		Normals:   normals,
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	for i, tri := range m.Triangles {
		for c, corner := range tri {
			corner.Normal = corner.Position
			tri[c] = corner
		}
		out.Triangles[i] = tri
	}
	return out
}

// WeldAttributes returns a copy of m with positions within tol of each
// other merged into a single entry, remapping every triangle corner's
// Position index accordingly. UVs and normals are left unmerged, since
// a shared position can legitimately carry distinct UVs or hard-edge
// normals across its incident triangles.
func WeldAttributes(m *PolygonMesh, tol float64) *PolygonMesh {
	remap := make([]int, len(m.Positions))
	welded := make([]geom.Point3, 0, len(m.Positions))

	for i, p := range m.Positions {
		found := -1
		for j, w := range welded {
			if p.ApproxEqual(w, tol) {
				found = j
				break
			}
		}
		if found < 0 {
			welded = append(welded, p)
			found = len(welded) - 1
		}
		remap[i] = found
	}

	triangles := make([]Triangle, len(m.Triangles))
	for i, tri := range m.Triangles {
		for c, corner := range tri {
			corner.Position = remap[corner.Position]
			tri[c] = corner
		}
		triangles[i] = tri
	}

	return &PolygonMesh{
		Positions: welded,
		UVs:       m.UVs,
		Normals:   m.Normals,
		Triangles: triangles,
	}
}

// SubdivideLoop performs one level of Loop-style subdivision: each
// triangle is split into four by its edge midpoints, and each new
// edge-midpoint position is pulled toward the Loop smoothing rule
// (3/8 the two edge endpoints, 1/8 the two triangles' opposite apexes)
// where the edge is shared by two triangles, or left at the plain
// midpoint on a boundary edge. The original vertices are not
// repositioned by Loop's even-vertex rule; this filter only applies the
// edge-split half of the scheme.
func SubdivideLoop(m *PolygonMesh) *PolygonMesh {
	type edgeRecord struct {
		opposite   []int // position indices of apexes opposite this edge
		midIndex   int
		registered bool
	}
	edges := make(map[edgeKey]*edgeRecord)

	editor := NewPolygonMeshEditor()
	for _, p := range m.Positions {
		editor.AddPosition(p)
	}

	const tol = 1e-9
	recordApex := func(a, b geom.Point3, apex int) {
		key := canonicalEdgeKey(a, b, tol)
		rec, ok := edges[key]
		if !ok {
			rec = &edgeRecord{}
			edges[key] = rec
		}
		rec.opposite = append(rec.opposite, apex)
	}

	for _, tri := range m.Triangles {
		p0, p1, p2 := tri[0].Position, tri[1].Position, tri[2].Position
		recordApex(m.Positions[p0], m.Positions[p1], p2)
		recordApex(m.Positions[p1], m.Positions[p2], p0)
		recordApex(m.Positions[p2], m.Positions[p0], p1)
	}

	midpointOf := func(a, b int) int {
		key := canonicalEdgeKey(m.Positions[a], m.Positions[b], tol)
		rec := edges[key]
		if rec.registered {
			return rec.midIndex
		}
		pa, pb := m.Positions[a], m.Positions[b]
		var mid geom.Point3
		if len(rec.opposite) >= 2 {
			o0, o1 := m.Positions[rec.opposite[0]], m.Positions[rec.opposite[1]]
			mid = weightedMidpoint(pa, pb, o0, o1)
		} else {
			mid = pa.Lerp(pb, 0.5)
		}
		rec.midIndex = editor.AddPosition(mid)
		rec.registered = true
		return rec.midIndex
	}

	for _, tri := range m.Triangles {
		p0, p1, p2 := tri[0].Position, tri[1].Position, tri[2].Position
		m01 := midpointOf(p0, p1)
		m12 := midpointOf(p1, p2)
		m20 := midpointOf(p2, p0)

		tri3 := func(a, b, c int) {
			editor.AddTriangle(Corner{Position: a, UV: -1, Normal: -1}, Corner{Position: b, UV: -1, Normal: -1}, Corner{Position: c, UV: -1, Normal: -1})
		}
		tri3(p0, m01, m20)
		tri3(p1, m12, m01)
		tri3(p2, m20, m12)
		tri3(m01, m12, m20)
	}

	return editor.Build()
}

// weightedMidpoint applies Loop's interior edge-point mask: 3/8 on each
// endpoint, 1/8 on each of the two triangles' opposite apexes.
func weightedMidpoint(a, b, o0, o1 geom.Point3) geom.Point3 {
	v := a.ToVector3().Scale(3.0 / 8).
		Add(b.ToVector3().Scale(3.0 / 8)).
		Add(o0.ToVector3().Scale(1.0 / 8)).
		Add(o1.ToVector3().Scale(1.0 / 8))
	return v.ToPoint3()
}

// SplitClosedFaces partitions m into its edge-connected components: a
// mesh produced by tessellating a shell with several disjoint faces (or
// one left disconnected by a prior modeling step) comes back as one
// PolygonMesh per component. Triangles are joined where they share an
// edge whose endpoints match within tol. No boundary is reduced here;
// PlanarBoundary computes the outline of a coplanar component.
func SplitClosedFaces(m *PolygonMesh, tol float64) []*PolygonMesh {
	parent := make([]int, len(m.Triangles))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	edgeOwner := make(map[edgeKey]int)
	for i, tri := range m.Triangles {
		p0 := m.Positions[tri[0].Position]
		p1 := m.Positions[tri[1].Position]
		p2 := m.Positions[tri[2].Position]
		for _, pair := range [][2]geom.Point3{{p0, p1}, {p1, p2}, {p2, p0}} {
			key := canonicalEdgeKey(pair[0], pair[1], tol)
			if owner, ok := edgeOwner[key]; ok {
				union(owner, i)
			} else {
				edgeOwner[key] = i
			}
		}
	}

	groups := make(map[int][]int)
	for i := range m.Triangles {
		root := find(i)
		groups[root] = append(groups[root], i)
	}

	out := make([]*PolygonMesh, 0, len(groups))
	for _, triIdx := range groups {
		editor := NewPolygonMeshEditor()
		remap := make(map[int]int)
		for _, ti := range triIdx {
			tri := m.Triangles[ti]
			var newTri Triangle
			for c, corner := range tri {
				idx, ok := remap[corner.Position]
				if !ok {
					idx = editor.AddPosition(m.Positions[corner.Position])
					remap[corner.Position] = idx
				}
				newTri[c] = Corner{Position: idx, UV: -1, Normal: -1}
			}
			editor.AddTriangle(newTri[0], newTri[1], newTri[2])
		}
		out = append(out, editor.Build())
	}
	return out
}

// PlanarBoundary unions every triangle of a coplanar mesh (as produced by
// one element of SplitClosedFaces's result, projected into its own
// plane by u and v) into a single polyclip.Polygon outer loop, using
// polyclip-go's contour union.
func PlanarBoundary(m *PolygonMesh, u, v func(geom.Point3) float64) polyclip.Polygon {
	var acc polyclip.Polygon
	for i, tri := range m.Triangles {
		contour := polyclip.Contour{
			{X: u(m.Positions[tri[0].Position]), Y: v(m.Positions[tri[0].Position])},
			{X: u(m.Positions[tri[1].Position]), Y: v(m.Positions[tri[1].Position])},
			{X: u(m.Positions[tri[2].Position]), Y: v(m.Positions[tri[2].Position])},
		}
		poly := polyclip.Polygon{contour}
		if i == 0 {
			acc = poly
			continue
		}
		acc = acc.Construct(polyclip.UNION, poly)
	}
	return acc
}
