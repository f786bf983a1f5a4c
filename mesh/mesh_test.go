package mesh

import (
	"testing"

	"github.com/go-brep/kernel/geom"
	"github.com/stretchr/testify/require"
)

func unitQuadMesh(t *testing.T) *PolygonMesh {
	t.Helper()
	e := NewPolygonMeshEditor()
	p00 := e.AddPosition(geom.Point3{X: 0, Y: 0, Z: 0})
	p10 := e.AddPosition(geom.Point3{X: 1, Y: 0, Z: 0})
	p11 := e.AddPosition(geom.Point3{X: 1, Y: 1, Z: 0})
	p01 := e.AddPosition(geom.Point3{X: 0, Y: 1, Z: 0})
	c := func(p int) Corner { return Corner{Position: p, UV: -1, Normal: -1} }
	e.AddTriangle(c(p00), c(p10), c(p11))
	e.AddTriangle(c(p00), c(p11), c(p01))
	return e.Build()
}

func unitCubeMesh(t *testing.T) *PolygonMesh {
	t.Helper()
	e := NewPolygonMeshEditor()
	corners := make([]int, 8)
	i := 0
	for _, z := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, x := range []float64{0, 1} {
				corners[i] = e.AddPosition(geom.Point3{X: x, Y: y, Z: z})
				i++
			}
		}
	}
	idx := func(x, y, z int) int { return corners[z*4+y*2+x] }
	c := func(p int) Corner { return Corner{Position: p, UV: -1, Normal: -1} }
	quad := func(a, b, cc, d int) {
		e.AddTriangle(c(a), c(b), c(cc))
		e.AddTriangle(c(a), c(cc), c(d))
	}
	quad(idx(0, 0, 0), idx(0, 1, 0), idx(1, 1, 0), idx(1, 0, 0)) // bottom
	quad(idx(0, 0, 1), idx(1, 0, 1), idx(1, 1, 1), idx(0, 1, 1)) // top
	quad(idx(0, 0, 0), idx(1, 0, 0), idx(1, 0, 1), idx(0, 0, 1)) // front
	quad(idx(0, 1, 0), idx(0, 1, 1), idx(1, 1, 1), idx(1, 1, 0)) // back
	quad(idx(0, 0, 0), idx(0, 0, 1), idx(0, 1, 1), idx(0, 1, 0)) // left
	quad(idx(1, 0, 0), idx(1, 1, 0), idx(1, 1, 1), idx(1, 0, 1)) // right
	return e.Build()
}

func TestAnalyzeBoundingBoxOfUnitCube(t *testing.T) {
	m := unitCubeMesh(t)
	bb := AnalyzeBoundingBox(m)
	require.Equal(t, geom.Point3{X: 0, Y: 0, Z: 0}, bb.Min)
	require.Equal(t, geom.Point3{X: 1, Y: 1, Z: 1}, bb.Max)
}

func TestAnalyzeVolumeOfUnitCubeIsOne(t *testing.T) {
	m := unitCubeMesh(t)
	require.InDelta(t, 1.0, AnalyzeVolume(m), 1e-9)
}

func TestAnalyzeConditionOfClosedCubeIsHealthy(t *testing.T) {
	m := unitCubeMesh(t)
	cond := AnalyzeCondition(m, 1e-9)
	require.True(t, cond.Healthy())
	require.Equal(t, 0, cond.OpenEdges)
}

func TestAnalyzeConditionOfOpenQuadHasBoundary(t *testing.T) {
	m := unitQuadMesh(t)
	cond := AnalyzeCondition(m, 1e-9)
	require.False(t, cond.Healthy())
	require.Equal(t, 4, cond.OpenEdges)
}

func TestAddSmoothNormalsFlatQuadAllPointPlusZ(t *testing.T) {
	m := unitQuadMesh(t)
	withNormals := AddSmoothNormals(m)
	require.True(t, withNormals.HasNormals())
	for _, n := range withNormals.Normals {
		require.InDelta(t, 1.0, n.Z, 1e-9)
	}
}

func TestWeldAttributesMergesCoincidentPositions(t *testing.T) {
	e := NewPolygonMeshEditor()
	a := e.AddPosition(geom.Point3{X: 0, Y: 0, Z: 0})
	b := e.AddPosition(geom.Point3{X: 1e-10, Y: 0, Z: 0})
	c := e.AddPosition(geom.Point3{X: 1, Y: 0, Z: 0})
	corner := func(p int) Corner { return Corner{Position: p, UV: -1, Normal: -1} }
	e.AddTriangle(corner(a), corner(b), corner(c))
	m := e.Build()
	require.Len(t, m.Positions, 3)

	welded := WeldAttributes(m, 1e-6)
	require.Len(t, welded.Positions, 2)
}

func TestSubdivideLoopQuadruplesTriangleCount(t *testing.T) {
	m := unitCubeMesh(t)
	sub := SubdivideLoop(m)
	require.Equal(t, m.TriangleCount()*4, sub.TriangleCount())
}

func TestSplitClosedFacesSeparatesDisjointComponents(t *testing.T) {
	a := unitQuadMesh(t)
	b := unitQuadMesh(t)
	for i := range b.Positions {
		b.Positions[i] = b.Positions[i].Add(geom.Vector3{X: 10})
	}

	editor := NewPolygonMeshEditor()
	editor.Merge(meshToEditor(a))
	editor.Merge(meshToEditor(b))
	merged := editor.Build()

	parts := SplitClosedFaces(merged, 1e-9)
	require.Len(t, parts, 2)
}

func meshToEditor(m *PolygonMesh) *PolygonMeshEditor {
	e := NewPolygonMeshEditor()
	for _, p := range m.Positions {
		e.AddPosition(p)
	}
	for _, uv := range m.UVs {
		e.AddUV(uv)
	}
	for _, n := range m.Normals {
		e.AddNormal(n)
	}
	for _, tri := range m.Triangles {
		e.AddTriangle(tri[0], tri[1], tri[2])
	}
	return e
}

func TestPlanarBoundaryOfUnitQuadIsSinglyContoured(t *testing.T) {
	m := unitQuadMesh(t)
	poly := PlanarBoundary(m, func(p geom.Point3) float64 { return p.X }, func(p geom.Point3) float64 { return p.Y })
	require.Len(t, poly, 1)
}
