package serialize

import (
	"testing"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/mesh"
	"github.com/stretchr/testify/require"
)

func unitQuadMesh(t *testing.T) *mesh.PolygonMesh {
	t.Helper()
	e := mesh.NewPolygonMeshEditor()
	p00 := e.AddPosition(geom.Point3{X: 0, Y: 0, Z: 0})
	p10 := e.AddPosition(geom.Point3{X: 1, Y: 0, Z: 0})
	p11 := e.AddPosition(geom.Point3{X: 1, Y: 1, Z: 0})
	c := func(p int) mesh.Corner { return mesh.Corner{Position: p, UV: -1, Normal: -1} }
	e.AddTriangle(c(p00), c(p10), c(p11))
	return e.Build()
}

func TestEncodeDecodeMeshRoundTrips(t *testing.T) {
	m := unitQuadMesh(t)
	data, err := EncodeMesh(m)
	require.NoError(t, err)

	restored, err := DecodeMesh(data)
	require.NoError(t, err)
	require.Equal(t, m.Positions, restored.Positions)
	require.Equal(t, m.Triangles, restored.Triangles)
}

func TestDecodeMeshRejectsOutOfRangeIndex(t *testing.T) {
	m := unitQuadMesh(t)
	m.Triangles[0][0].Position = len(m.Positions) + 5
	data, err := EncodeMesh(m)
	require.NoError(t, err)

	_, err = DecodeMesh(data)
	require.Error(t, err)
}
