package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unitLineKnots(t *testing.T) KnotVector {
	t.Helper()
	kv, err := NewKnotVector([]float64{0, 0, 1, 1}, 1)
	require.NoError(t, err)
	return kv
}

func TestBSplineCurveLinearEvaluate(t *testing.T) {
	kv := unitLineKnots(t)
	c, err := NewBSplineCurve3D(kv, []Point3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}})
	require.NoError(t, err)

	mid := c.Evaluate(0.5)
	require.InDelta(t, 5.0, mid.X, 1e-9)

	require.Equal(t, Point3{X: 0, Y: 0, Z: 0}, c.Evaluate(0))
	require.InDelta(t, 10.0, c.Evaluate(1).X, 1e-9)
}

func TestBSplineCurveControlPointMismatch(t *testing.T) {
	kv := unitLineKnots(t)
	_, err := NewBSplineCurve3D(kv, []Point3{{X: 0}})
	require.Error(t, err)
}

func TestBSplineCurveDerivativeMatchesLinearSlope(t *testing.T) {
	kv := unitLineKnots(t)
	c, err := NewBSplineCurve3D(kv, []Point3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}})
	require.NoError(t, err)

	d := c.Derivative(1, 0.5)
	require.InDelta(t, 10.0, d.X, 1e-9)
}

func TestBSplineCurveQuadraticDerivativeMatchesCentralDifference(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)
	c, err := NewBSplineCurve3D(kv, []Point3{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}})
	require.NoError(t, err)

	const h = 1e-5
	t0 := 0.37
	fd := c.Evaluate(t0 + h).Sub(c.Evaluate(t0 - h)).Scale(1 / (2 * h))
	analytic := c.Derivative(1, t0)
	require.InDelta(t, fd.X, analytic.X, 1e-3)
	require.InDelta(t, fd.Y, analytic.Y, 1e-3)
}

func TestBSplineCurveSearchNearestOnLineSegment(t *testing.T) {
	kv := unitLineKnots(t)
	c, err := NewBSplineCurve3D(kv, []Point3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}})
	require.NoError(t, err)

	tParam, warn := c.SearchNearest(Point3{X: 5, Y: 3, Z: 0}, nil)
	require.Nil(t, warn)
	require.InDelta(t, 0.5, tParam, 1e-6)
}

func TestBSplineCurveBoundsClampsEvaluate(t *testing.T) {
	kv := unitLineKnots(t)
	c, err := NewBSplineCurve3D(kv, []Point3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}})
	require.NoError(t, err)

	require.Equal(t, c.Evaluate(0), c.Evaluate(-5))
	require.Equal(t, c.Evaluate(1), c.Evaluate(5))
}
