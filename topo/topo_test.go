package topo

import (
	"testing"

	"github.com/go-brep/kernel/geom"
	"github.com/stretchr/testify/require"
)

// buildTetrahedron constructs a closed, oriented, regular shell over four
// triangular faces sharing six edges, each used by exactly two faces in
// opposite senses.
func buildTetrahedron(t *testing.T) *Shell {
	t.Helper()
	const tol = 1e-6

	a := NewVertex(geom.Point3{X: 0, Y: 0, Z: 0})
	b := NewVertex(geom.Point3{X: 1, Y: 0, Z: 0})
	c := NewVertex(geom.Point3{X: 0, Y: 1, Z: 0})
	d := NewVertex(geom.Point3{X: 0, Y: 0, Z: 1})

	line := func(from, to *Vertex) *Edge {
		dir := to.Point().Sub(from.Point())
		e, err := NewEdge(geom.NewLine(from.Point(), dir, 0, 1), from, to, tol)
		require.NoError(t, err)
		return e
	}

	ab := line(a, b)
	bc := line(b, c)
	ca := line(c, a)
	ad := line(a, d)
	bd := line(b, d)
	cd := line(c, d)

	plane := func(p0, p1, p2 geom.Point3) geom.Plane {
		return geom.Plane{Origin: p0, U: p1.Sub(p0), V: p2.Sub(p0)}
	}

	wire := func(edges []OrientedEdge) *Wire {
		w, err := NewWire(edges)
		require.NoError(t, err)
		return w
	}

	f1, err := NewFace(plane(a.Point(), b.Point(), c.Point()),
		wire([]OrientedEdge{ab, bc, ca}), nil, true)
	require.NoError(t, err)

	f2, err := NewFace(plane(a.Point(), d.Point(), b.Point()),
		wire([]OrientedEdge{ad, Reverse(bd), Reverse(ab)}), nil, true)
	require.NoError(t, err)

	f3, err := NewFace(plane(b.Point(), d.Point(), c.Point()),
		wire([]OrientedEdge{bd, Reverse(cd), Reverse(bc)}), nil, true)
	require.NoError(t, err)

	f4, err := NewFace(plane(c.Point(), d.Point(), a.Point()),
		wire([]OrientedEdge{cd, Reverse(ad), Reverse(ca)}), nil, true)
	require.NoError(t, err)

	return NewShell([]*Face{f1, f2, f3, f4})
}

func TestTetrahedronShellIsRegular(t *testing.T) {
	shell := buildTetrahedron(t)
	require.False(t, shell.Disconnected())
	require.False(t, shell.Open())
	require.True(t, shell.Oriented())
	require.True(t, shell.Regular())
}

func TestTetrahedronSolidConstructs(t *testing.T) {
	shell := buildTetrahedron(t)
	solid, err := NewSolid(shell, nil)
	require.NoError(t, err)
	require.Len(t, solid.AllFaces(), 4)
}

func TestCompressedShellRoundTrip(t *testing.T) {
	shell := buildTetrahedron(t)
	compressed := CompressShell(shell)
	require.Len(t, compressed.Vertices, 4)
	require.Len(t, compressed.Edges, 6)
	require.Len(t, compressed.Faces, 4)

	restored := compressed.Decompress()
	require.True(t, restored.Regular())
	require.Len(t, restored.Faces(), 4)
}

func TestNewEdgeRejectsMismatchedEndpoints(t *testing.T) {
	a := NewVertex(geom.Point3{X: 0, Y: 0, Z: 0})
	b := NewVertex(geom.Point3{X: 5, Y: 5, Z: 5})
	_, err := NewEdge(geom.NewLine(a.Point(), geom.Vector3{X: 1}, 0, 1), a, b, 1e-6)
	require.Error(t, err)
}

func TestNewWireRejectsDisconnectedEdges(t *testing.T) {
	a := NewVertex(geom.Point3{X: 0, Y: 0, Z: 0})
	b := NewVertex(geom.Point3{X: 1, Y: 0, Z: 0})
	c := NewVertex(geom.Point3{X: 5, Y: 5, Z: 5})
	d := NewVertex(geom.Point3{X: 6, Y: 5, Z: 5})

	e1, err := NewEdge(geom.NewLine(a.Point(), b.Point().Sub(a.Point()), 0, 1), a, b, 1e-6)
	require.NoError(t, err)
	e2, err := NewEdge(geom.NewLine(c.Point(), d.Point().Sub(c.Point()), 0, 1), c, d, 1e-6)
	require.NoError(t, err)

	_, err = NewWire([]OrientedEdge{e1, e2})
	require.Error(t, err)
}

func TestOpenShellHasFreeBoundary(t *testing.T) {
	shell := buildTetrahedron(t)
	faces := shell.Faces()
	openShell := NewShell(faces[:3])
	require.True(t, openShell.Open())
}
