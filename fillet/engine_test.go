package fillet

import (
	"testing"

	"github.com/go-brep/kernel/geom"
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

func TestRunRoundBlendOnCubeEdgeStaysRegular(t *testing.T) {
	shell := unitCubeShell(t)
	edgeID := shell.Faces()[0].OuterBoundary().Edges()[0].ID()

	result, err := Run(shell, edgeID, Options{Radius: ConstantRadius(0.1), Profile: Round, Division: 8})
	require.NoError(t, err)
	require.True(t, result.Shell.Regular())
	require.Len(t, result.Shell.Faces(), len(shell.Faces())+1)
	require.NotNil(t, result.BlendFace)
}

func TestRunChamferBlendOnCubeEdgeStaysRegular(t *testing.T) {
	shell := unitCubeShell(t)
	edgeID := shell.Faces()[0].OuterBoundary().Edges()[0].ID()

	result, err := Run(shell, edgeID, Options{Radius: ConstantRadius(0.1), Profile: Chamfer, Division: 4})
	require.NoError(t, err)
	require.True(t, result.Shell.Regular())
}

func TestRunRejectsRadiusLargerThanEdge(t *testing.T) {
	shell := unitCubeShell(t)
	edgeID := shell.Faces()[0].OuterBoundary().Edges()[0].ID()

	_, err := Run(shell, edgeID, Options{Radius: ConstantRadius(10), Profile: Round})
	require.Error(t, err)
}

func TestRunRejectsUnknownEdge(t *testing.T) {
	shell := unitCubeShell(t)
	phantom := topo.NewVertex(geom.Point3{})
	_, err := Run(shell, phantom.ID(), DefaultOptions())
	require.Error(t, err)
}
