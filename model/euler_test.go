package model

import (
	"testing"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/topo"
	"github.com/stretchr/testify/require"
)

func TestTryWireHomotopyMatchesEqualEdgeCounts(t *testing.T) {
	a := squareProfile(t, 1)
	b := squareProfile(t, 2)
	pairs, err := TryWireHomotopy(a, b)
	require.NoError(t, err)
	require.Len(t, pairs, 4)
}

func TestTryWireHomotopyRejectsMismatchedEdgeCounts(t *testing.T) {
	square := squareProfile(t, 1)

	const tol = 1e-6
	a := topo.NewVertex(geom.Point3{X: 0, Y: 0, Z: 0})
	b := topo.NewVertex(geom.Point3{X: 1, Y: 0, Z: 0})
	c := topo.NewVertex(geom.Point3{X: 0, Y: 1, Z: 0})
	edge := func(from, to *topo.Vertex) *topo.Edge {
		e, err := topo.NewEdge(geom.NewLine(from.Point(), to.Point().Sub(from.Point()), 0, 1), from, to, tol)
		require.NoError(t, err)
		return e
	}
	triangle, err := topo.NewWire([]topo.OrientedEdge{edge(a, b), edge(b, c), edge(c, a)})
	require.NoError(t, err)

	_, err = TryWireHomotopy(square, triangle)
	require.Error(t, err)
}

func TestAddBoundaryAttachesHole(t *testing.T) {
	profile := squareProfile(t, 10)
	plane := geom.Plane{Origin: geom.Point3{}, U: geom.Vector3{X: 1}, V: geom.Vector3{Y: 1}}
	face, err := topo.NewFace(plane, profile, nil, true)
	require.NoError(t, err)

	hole := squareProfile(t, 1)
	withHole, err := AddBoundary(face, hole)
	require.NoError(t, err)
	require.Len(t, withHole.Holes(), 1)
}
