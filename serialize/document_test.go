package serialize

import (
	"testing"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/model"
	"github.com/go-brep/kernel/topo"
	"github.com/stretchr/testify/require"
)

func unitCubeSolid(t *testing.T) *topo.Solid {
	t.Helper()
	const tol = 1e-6
	a := topo.NewVertex(geom.Point3{X: 0, Y: 0, Z: 0})
	b := topo.NewVertex(geom.Point3{X: 1, Y: 0, Z: 0})
	c := topo.NewVertex(geom.Point3{X: 1, Y: 1, Z: 0})
	d := topo.NewVertex(geom.Point3{X: 0, Y: 1, Z: 0})
	edge := func(from, to *topo.Vertex) *topo.Edge {
		e, err := topo.NewEdge(geom.NewLine(from.Point(), to.Point().Sub(from.Point()), 0, 1), from, to, tol)
		require.NoError(t, err)
		return e
	}
	w, err := topo.NewWire([]topo.OrientedEdge{edge(a, b), edge(b, c), edge(c, d), edge(d, a)})
	require.NoError(t, err)
	result, err := model.TSweep(w, geom.Vector3{X: 0, Y: 0, Z: 1}, tol)
	require.NoError(t, err)
	return result.(*topo.Solid)
}

func TestDocumentRoundTripsUnitCube(t *testing.T) {
	solid := unitCubeSolid(t)
	doc, err := TryNewDocument(solid)
	require.NoError(t, err)

	data, err := doc.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	restored, err := DecodeDocument(data)
	require.NoError(t, err)
	require.Len(t, restored.OuterShell().Faces(), len(solid.OuterShell().Faces()))
	require.True(t, restored.OuterShell().Regular())
}

func TestDecodeDocumentRejectsGarbage(t *testing.T) {
	_, err := DecodeDocument([]byte("not json"))
	require.Error(t, err)
}

func TestMarshalCurveRoundTripsLine(t *testing.T) {
	line := geom.NewLine(geom.Point3{X: 1, Y: 2, Z: 3}, geom.Vector3{X: 0, Y: 0, Z: 1}, 0, 5)
	dto, err := MarshalCurve(line)
	require.NoError(t, err)

	back, err := UnmarshalCurve(dto)
	require.NoError(t, err)
	require.True(t, back.Evaluate(2).ApproxEqual(line.Evaluate(2), 1e-9))
}

func TestMarshalSurfaceRoundTripsPlane(t *testing.T) {
	plane := geom.Plane{Origin: geom.Point3{X: 1}, U: geom.Vector3{X: 1}, V: geom.Vector3{Y: 1}}
	dto, err := MarshalSurface(plane)
	require.NoError(t, err)

	back, err := UnmarshalSurface(dto)
	require.NoError(t, err)
	require.True(t, back.Evaluate(2, 3).ApproxEqual(plane.Evaluate(2, 3), 1e-9))
}

func TestMarshalSurfaceRejectsRbfSurface(t *testing.T) {
	rbf := geom.RbfSurface{
		Center: func(float64) geom.Point3 { return geom.Point3{} },
		E1:     func(float64) geom.Vector3 { return geom.Vector3{X: 1} },
		E2:     func(float64) geom.Vector3 { return geom.Vector3{Y: 1} },
		Radius: func(float64) float64 { return 1 },
		Angle:  func(float64) float64 { return 1 },
		Domain: geom.Interval{Min: 0, Max: 1},
	}
	_, err := MarshalSurface(rbf)
	require.Error(t, err)
}
