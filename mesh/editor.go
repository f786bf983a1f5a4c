package mesh

import "github.com/go-brep/kernel/geom"

// PolygonMeshEditor accumulates triangles into a single owner's buffers
// before producing an immutable PolygonMesh. It is not safe for
// concurrent use: tessellate builds one editor per face and merges the
// editors afterwards, rather than sharing an editor across goroutines.
type PolygonMeshEditor struct {
	positions []geom.Point3
	uvs       []geom.Point2
	normals   []geom.Vector3
	triangles []Triangle
}

// NewPolygonMeshEditor returns an empty editor.
func NewPolygonMeshEditor() *PolygonMeshEditor {
	return &PolygonMeshEditor{}
}

// AddPosition appends a position and returns its index.
func (e *PolygonMeshEditor) AddPosition(p geom.Point3) int {
	e.positions = append(e.positions, p)
	return len(e.positions) - 1
}

// AddUV appends a UV coordinate and returns its index.
func (e *PolygonMeshEditor) AddUV(uv geom.Point2) int {
	e.uvs = append(e.uvs, uv)
	return len(e.uvs) - 1
}

// AddNormal appends a normal and returns its index.
func (e *PolygonMeshEditor) AddNormal(n geom.Vector3) int {
	e.normals = append(e.normals, n)
	return len(e.normals) - 1
}

// AddTriangle records a triangle referencing already-added attribute
// indices. Callers that don't carry UVs or normals pass -1 for those
// fields on every corner.
func (e *PolygonMeshEditor) AddTriangle(a, b, c Corner) {
	e.triangles = append(e.triangles, Triangle{a, b, c})
}

// Merge appends another editor's buffers, rebasing its indices. Used to
// combine the per-face editors from tessellate's parallel face fan-out
// into a single mesh.
func (e *PolygonMeshEditor) Merge(other *PolygonMeshEditor) {
	posBase := len(e.positions)
	uvBase := len(e.uvs)
	normBase := len(e.normals)

	e.positions = append(e.positions, other.positions...)
	e.uvs = append(e.uvs, other.uvs...)
	e.normals = append(e.normals, other.normals...)

	for _, tri := range other.triangles {
		rebased := tri
		for i := range rebased {
			rebased[i].Position += posBase
			if rebased[i].UV >= 0 {
				rebased[i].UV += uvBase
			}
			if rebased[i].Normal >= 0 {
				rebased[i].Normal += normBase
			}
		}
		e.triangles = append(e.triangles, rebased)
	}
}

// Build finalizes the editor's accumulated buffers into a PolygonMesh.
// The editor remains usable afterward; Build copies nothing, so further
// additions would alias the returned mesh's slices -- callers that keep
// editing after Build should not rely on the earlier mesh remaining
// unchanged.
func (e *PolygonMeshEditor) Build() *PolygonMesh {
	return &PolygonMesh{
		Positions: e.positions,
		UVs:       e.uvs,
		Normals:   e.normals,
		Triangles: e.triangles,
	}
}
