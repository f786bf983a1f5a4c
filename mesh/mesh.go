// Package mesh implements the kernel's polygon mesh: the triangulated
// output of package tessellate, plus analyzers (bounding box, volume,
// center of gravity, shell condition) and filters (smooth normals,
// attribute welding, loop subdivision, closed-face splitting) that
// operate on it.
package mesh

import "github.com/go-brep/kernel/geom"

// Corner indexes one vertex of a triangle into the mesh's three parallel
// attribute buffers. Position is always valid; UV and Normal are -1 when
// the mesh carries no such attribute for that corner.
type Corner struct {
	Position int
	UV       int
	Normal   int
}

// Triangle is three corners wound counterclockwise when viewed from the
// surface's outward side, matching the orientation convention package
// topo uses for a regular shell.
type Triangle [3]Corner

// PolygonMesh is an immutable triangle mesh over three parallel indexed
// buffers: Positions, UVs, and Normals are addressed independently by
// each triangle's corners, so a shared position can carry distinct UVs
// or normals across adjacent faces (a UV seam, a hard edge) without
// duplicating the position itself.
type PolygonMesh struct {
	Positions []geom.Point3
	UVs       []geom.Point2
	Normals   []geom.Vector3
	Triangles []Triangle
}

// TriangleCount returns the number of triangles in the mesh.
func (m *PolygonMesh) TriangleCount() int { return len(m.Triangles) }

// PositionAt returns the 3-D position of triangle t's corner c (0, 1, or 2).
func (m *PolygonMesh) PositionAt(t int, c int) geom.Point3 {
	return m.Positions[m.Triangles[t][c].Position]
}

// HasUVs reports whether the mesh's UV buffer is non-empty.
func (m *PolygonMesh) HasUVs() bool { return len(m.UVs) > 0 }

// HasNormals reports whether the mesh's normal buffer is non-empty.
func (m *PolygonMesh) HasNormals() bool { return len(m.Normals) > 0 }
