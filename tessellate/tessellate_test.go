package tessellate

import (
	"testing"

	kernel "github.com/go-brep/kernel"
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/mesh"
	"github.com/go-brep/kernel/model"
	"github.com/go-brep/kernel/topo"
	"github.com/stretchr/testify/require"
)

func unitSquareProfile(t *testing.T, side float64) *topo.Wire {
	t.Helper()
	const tol = 1e-6
	a := topo.NewVertex(geom.Point3{X: 0, Y: 0, Z: 0})
	b := topo.NewVertex(geom.Point3{X: side, Y: 0, Z: 0})
	c := topo.NewVertex(geom.Point3{X: side, Y: side, Z: 0})
	d := topo.NewVertex(geom.Point3{X: 0, Y: side, Z: 0})

	edge := func(from, to *topo.Vertex) *topo.Edge {
		e, err := topo.NewEdge(geom.NewLine(from.Point(), to.Point().Sub(from.Point()), 0, 1), from, to, tol)
		require.NoError(t, err)
		return e
	}

	w, err := topo.NewWire([]topo.OrientedEdge{edge(a, b), edge(b, c), edge(c, d), edge(d, a)})
	require.NoError(t, err)
	return w
}

func unitCubeShell(t *testing.T) *topo.Shell {
	t.Helper()
	profile := unitSquareProfile(t, 1)
	result, err := model.TSweep(profile, geom.Vector3{X: 0, Y: 0, Z: 1}, 1e-6)
	require.NoError(t, err)
	return result.(*topo.Solid).OuterShell()
}

func TestTessellateUnitCubeIsClosedAndUnitVolume(t *testing.T) {
	shell := unitCubeShell(t)
	m, err := Tessellate(shell, 1e-4, kernel.DefaultConfig)
	require.NoError(t, err)
	require.NotEmpty(t, m.Triangles)

	cond := mesh.AnalyzeCondition(m, 1e-6)
	require.True(t, cond.Healthy())
	require.InDelta(t, 1.0, mesh.AnalyzeVolume(m), 1e-6)
}

func TestTessellateAcceptsWorkerCountOfOne(t *testing.T) {
	shell := unitCubeShell(t)
	cfg := kernel.New(func(c *kernel.Config) { c.Workers = 1 })
	m, err := Tessellate(shell, 1e-4, cfg)
	require.NoError(t, err)
	require.Equal(t, len(shell.Faces())*2, len(m.Triangles))
}

func TestStructuredGridRecognizesAxisAlignedRectangle(t *testing.T) {
	loop := uvLoop{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	corners, tris, ok := structuredGrid(loop, false, 2)
	require.True(t, ok)
	require.Len(t, corners, 9)
	require.Len(t, tris, 8)
}

func TestStructuredGridRejectsNonRectangularLoop(t *testing.T) {
	loop := uvLoop{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5},
	}
	_, _, ok := structuredGrid(loop, false, 2)
	require.False(t, ok)
}

func TestAdaptiveSampleOfLineReturnsEndpoints(t *testing.T) {
	line := geom.NewLine(geom.Point3{}, geom.Vector3{X: 1}, 0, 1)
	pts := adaptiveSample(line, 1e-6)
	require.Len(t, pts, 2)
	require.True(t, pts[0].ApproxEqual(geom.Point3{}, 1e-9))
	require.True(t, pts[1].ApproxEqual(geom.Point3{X: 1}, 1e-9))
}
