package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKnotVectorValid(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 2, 3, 3, 3}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, kv.Degree())
	require.Equal(t, 5, kv.NumControlPoints())
	require.Equal(t, Interval{Min: 0, Max: 3}, kv.Domain())
}

func TestNewKnotVectorRejectsDecreasing(t *testing.T) {
	_, err := NewKnotVector([]float64{0, 0, 1, 0.5, 2, 2}, 1)
	require.Error(t, err)
}

func TestNewKnotVectorRejectsExcessiveMultiplicity(t *testing.T) {
	_, err := NewKnotVector([]float64{0, 0, 0, 0, 1, 1}, 1)
	require.Error(t, err)
}

func TestNewKnotVectorRejectsTooFewKnots(t *testing.T) {
	_, err := NewKnotVector([]float64{0, 1}, 2)
	require.Error(t, err)
}

func TestKnotVectorFindSpanBoundary(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 2, 3, 3, 3}, 2)
	require.NoError(t, err)

	require.Equal(t, kv.degree, kv.FindSpan(0))
	require.Equal(t, kv.NumControlPoints()-1, kv.FindSpan(3))
	require.Equal(t, 3, kv.FindSpan(1.5))
}

func TestKnotVectorMultiplicity(t *testing.T) {
	kv, err := NewKnotVector([]float64{0, 0, 0, 1, 2, 3, 3, 3}, 2)
	require.NoError(t, err)
	require.Equal(t, 3, kv.Multiplicity(0, 1e-9))
	require.Equal(t, 1, kv.Multiplicity(1, 1e-9))
}

func TestKnotVectorCopiesInputSlice(t *testing.T) {
	knots := []float64{0, 0, 1, 1}
	kv, err := NewKnotVector(knots, 1)
	require.NoError(t, err)
	knots[0] = 99
	require.Equal(t, 0.0, kv.At(0))
}
