package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNurbsCurveQuarterCircle(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)

	w := 1 / math.Sqrt2
	controls := []Point3{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	weights := []float64{1, w, 1}

	c, err := NewNurbsCurve(kv, controls, weights)
	require.NoError(t, err)

	p0 := c.Evaluate(0)
	require.InDelta(t, 1.0, p0.X, 1e-9)
	require.InDelta(t, 0.0, p0.Y, 1e-9)

	p1 := c.Evaluate(1)
	require.InDelta(t, 0.0, p1.X, 1e-9)
	require.InDelta(t, 1.0, p1.Y, 1e-9)

	mid := c.Evaluate(0.5)
	require.InDelta(t, 1.0, mid.Sub(Point3{}).Length(), 1e-9)
	require.InDelta(t, math.Sqrt2/2, mid.X, 1e-9)
	require.InDelta(t, math.Sqrt2/2, mid.Y, 1e-9)
}

func TestNurbsCurveControlWeightMismatch(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 1, 1}, 1)
	require.NoError(t, err)
	_, err = NewNurbsCurve(kv, []Point3{{X: 0}}, []float64{1, 1})
	require.Error(t, err)
}

func TestUnitCircleTracesUnitRadius(t *testing.T) {
	c := UnitCircle{Xf: IdentityTransform()}
	for _, theta := range []float64{0, 0.7, math.Pi / 2, math.Pi} {
		p := c.Evaluate(theta)
		require.InDelta(t, 1.0, p.Sub(Point3{}).Length(), 1e-9)
	}
}

func TestUnitCircleDerivativeIsTangent(t *testing.T) {
	c := UnitCircle{Xf: IdentityTransform()}
	p := c.Evaluate(0.6)
	d := c.Derivative(1, 0.6)
	require.InDelta(t, 0.0, p.ToVector3().Dot(d), 1e-9)
}
