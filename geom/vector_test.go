package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector3Algebra(t *testing.T) {
	a := Vector3{X: 1, Y: 0, Z: 0}
	b := Vector3{X: 0, Y: 1, Z: 0}

	require.Equal(t, Vector3{X: 1, Y: 1, Z: 0}, a.Add(b))
	require.Equal(t, 0.0, a.Dot(b))
	require.Equal(t, Vector3{X: 0, Y: 0, Z: 1}, a.Cross(b))
	require.InDelta(t, 1.0, a.Length(), 1e-12)
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 0}
	n := v.Normalize()
	require.InDelta(t, 1.0, n.Length(), 1e-12)
	require.True(t, Vector3{}.Normalize().IsZero(1e-12))
}

func TestPoint4Project(t *testing.T) {
	p := Homogeneous(Point3{X: 1, Y: 2, Z: 3}, 2)
	got := p.Project()
	require.InDelta(t, 0.5, got.X, 1e-12)
	require.InDelta(t, 1.0, got.Y, 1e-12)
	require.InDelta(t, 1.5, got.Z, 1e-12)
}

func TestPoint4ProjectNearZeroWeight(t *testing.T) {
	p := Point4{X: 1, Y: 1, Z: 1, W: 1e-15}
	got := p.Project()
	require.InDelta(t, 1.0, got.X, 1e-9)
}

func TestSafeDiv(t *testing.T) {
	require.Equal(t, 0.0, safeDiv(1, 0))
	require.InDelta(t, 2.0, safeDiv(4, 2), 1e-12)
}

func TestPoint3Lerp(t *testing.T) {
	p := Point3{X: 0, Y: 0, Z: 0}
	q := Point3{X: 10, Y: 0, Z: 0}
	mid := p.Lerp(q, 0.5)
	require.InDelta(t, 5.0, mid.X, 1e-12)
}

func TestPoint3ApproxEqual(t *testing.T) {
	p := Point3{X: 1, Y: 1, Z: 1}
	q := Point3{X: 1 + 1e-9, Y: 1, Z: 1}
	require.True(t, p.ApproxEqual(q, 1e-6))
	require.False(t, p.ApproxEqual(q, 1e-12))
}

func TestIntervalNormalizeRoundTrip(t *testing.T) {
	iv := Interval{Min: -2, Max: 3}
	s := iv.Normalize(1.0)
	require.InDelta(t, 1.0, iv.Lerp(s), 1e-9)
}

func TestRotationPreservesLength(t *testing.T) {
	xf := Rotation(Vector3{X: 0, Y: 0, Z: 1}, math.Pi/2)
	v := Vector3{X: 1, Y: 0, Z: 0}
	rotated := xf.ApplyVector(v)
	require.InDelta(t, 0.0, rotated.X, 1e-9)
	require.InDelta(t, 1.0, rotated.Y, 1e-9)
}

func TestAxisRotationFullTurnIsIdentityOnAxis(t *testing.T) {
	origin := Point3{X: 1, Y: 2, Z: 3}
	xf := AxisRotation(origin, Vector3{X: 0, Y: 0, Z: 1}, 2*math.Pi)
	got := xf.ApplyPoint(Point3{X: 5, Y: 2, Z: 3})
	require.InDelta(t, 5.0, got.X, 1e-7)
	require.InDelta(t, 2.0, got.Y, 1e-7)
}
