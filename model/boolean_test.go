package model

import (
	"testing"

	"github.com/go-brep/kernel/geom"
	"github.com/stretchr/testify/require"
)

func unitBox() Box {
	return Box{Min: geom.Point3{X: 0, Y: 0, Z: 0}, Max: geom.Point3{X: 10, Y: 10, Z: 10}}
}

func TestPunchedCubeProducesSolidWithVoid(t *testing.T) {
	outer := unitBox()
	hole := Box{Min: geom.Point3{X: 3, Y: 3, Z: 3}, Max: geom.Point3{X: 6, Y: 6, Z: 6}}

	solid, err := Boolean(outer, hole, Subtract, 1e-6)
	require.NoError(t, err)
	require.True(t, solid.OuterShell().Regular())
	require.Len(t, solid.Voids(), 1)
	require.True(t, solid.Voids()[0].Regular())
	require.Len(t, solid.AllFaces(), 12)
}

func TestSubtractRejectsHoleTouchingBoundary(t *testing.T) {
	outer := unitBox()
	hole := Box{Min: geom.Point3{X: 0, Y: 3, Z: 3}, Max: geom.Point3{X: 6, Y: 6, Z: 6}}
	_, err := Boolean(outer, hole, Subtract, 1e-6)
	require.Error(t, err)
}

func TestUnionOfNestedBoxesReturnsOuter(t *testing.T) {
	outer := unitBox()
	inner := Box{Min: geom.Point3{X: 3, Y: 3, Z: 3}, Max: geom.Point3{X: 6, Y: 6, Z: 6}}
	solid, err := Boolean(outer, inner, Union, 1e-6)
	require.NoError(t, err)
	require.Len(t, solid.AllFaces(), 6)
}

func TestIntersectOfOverlappingBoxes(t *testing.T) {
	a := Box{Min: geom.Point3{X: 0, Y: 0, Z: 0}, Max: geom.Point3{X: 5, Y: 5, Z: 5}}
	b := Box{Min: geom.Point3{X: 2, Y: 2, Z: 2}, Max: geom.Point3{X: 7, Y: 7, Z: 7}}
	solid, err := Boolean(a, b, Intersect, 1e-6)
	require.NoError(t, err)
	require.Len(t, solid.AllFaces(), 6)
}

func TestIntersectOfDisjointBoxesFails(t *testing.T) {
	a := Box{Min: geom.Point3{X: 0, Y: 0, Z: 0}, Max: geom.Point3{X: 1, Y: 1, Z: 1}}
	b := Box{Min: geom.Point3{X: 5, Y: 5, Z: 5}, Max: geom.Point3{X: 6, Y: 6, Z: 6}}
	_, err := Boolean(a, b, Intersect, 1e-6)
	require.Error(t, err)
}
