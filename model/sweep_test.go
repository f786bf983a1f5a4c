package model

import (
	"math"
	"testing"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/topo"
	"github.com/stretchr/testify/require"
)

func squareProfile(t *testing.T, side float64) *topo.Wire {
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

func TestTSweepProducesRegularCube(t *testing.T) {
	profile := squareProfile(t, 1)
	result, err := TSweep(profile, geom.Vector3{X: 0, Y: 0, Z: 1}, 1e-6)
	require.NoError(t, err)
	solid := result.(*topo.Solid)
	require.True(t, solid.OuterShell().Regular())
	require.Len(t, solid.AllFaces(), 6)
}

func TestRSweepFullTurnProducesClosedSolid(t *testing.T) {
	// Profile offset from the rotation axis so the revolution forms a
	// torus-like ring rather than passing through the axis.
	const tol = 1e-6
	a := topo.NewVertex(geom.Point3{X: 2, Y: 0, Z: -0.5})
	b := topo.NewVertex(geom.Point3{X: 3, Y: 0, Z: -0.5})
	c := topo.NewVertex(geom.Point3{X: 3, Y: 0, Z: 0.5})
	d := topo.NewVertex(geom.Point3{X: 2, Y: 0, Z: 0.5})
	edge := func(from, to *topo.Vertex) *topo.Edge {
		e, err := topo.NewEdge(geom.NewLine(from.Point(), to.Point().Sub(from.Point()), 0, 1), from, to, tol)
		require.NoError(t, err)
		return e
	}
	profile, err := topo.NewWire([]topo.OrientedEdge{edge(a, b), edge(b, c), edge(c, d), edge(d, a)})
	require.NoError(t, err)

	solid, err := RSweep(profile, geom.Point3{}, geom.Vector3{X: 0, Y: 0, Z: 1}, 2*math.Pi, tol)
	require.NoError(t, err)
	require.Len(t, solid.AllFaces(), 4)
}

func TestRSweepClampsAngleBeyondFullTurn(t *testing.T) {
	profile := squareProfile(t, 1)
	// This profile lies in a plane perpendicular to the rotation axis, so
	// a full sweep degenerates; this only exercises that RSweep clamps the
	// angle internally without panicking, regardless of the resulting error.
	_, _ = RSweep(profile, geom.Point3{X: -5}, geom.Vector3{X: 0, Y: 0, Z: 1}, 10, 1e-6)
}
