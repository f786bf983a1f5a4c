package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaneEvaluateAndInvertRoundTrip(t *testing.T) {
	p := Plane{
		Origin: Point3{X: 1, Y: 1, Z: 1},
		U:      Vector3{X: 1, Y: 0, Z: 0},
		V:      Vector3{X: 0, Y: 1, Z: 0},
	}
	pt := p.Evaluate(3, 4)
	uv, warn := p.Invert(pt, nil)
	require.Nil(t, warn)
	require.InDelta(t, 3.0, uv.U, 1e-9)
	require.InDelta(t, 4.0, uv.V, 1e-9)
}

func TestPlaneNormal(t *testing.T) {
	p := Plane{U: Vector3{X: 1, Y: 0, Z: 0}, V: Vector3{X: 0, Y: 1, Z: 0}}
	n, ok := p.Normal(0, 0)
	require.True(t, ok)
	require.InDelta(t, 1.0, n.Z, 1e-12)
}

func TestSphereEvaluateRadius(t *testing.T) {
	s := Sphere{Origin: Point3{}, R: 5}
	p := s.Evaluate(1.2, 0.4)
	require.InDelta(t, 5.0, p.Sub(s.Origin).Length(), 1e-9)
}

func TestSphereInvertRoundTrip(t *testing.T) {
	s := Sphere{Origin: Point3{X: 1, Y: -2, Z: 3}, R: 2}
	pt := s.Evaluate(0.7, 0.3)
	uv, _ := s.Invert(pt, nil)
	back := s.Evaluate(uv.U, uv.V)
	require.InDelta(t, 0.0, back.Distance(pt), 1e-6)
}

func TestExtrudedSurfaceIsAffineInV(t *testing.T) {
	line, err := NewBSplineCurve3D(unitLineKnots(t), []Point3{{X: 0}, {X: 1}})
	require.NoError(t, err)
	e := ExtrudedSurface{
		Profile:   line,
		Direction: Vector3{X: 0, Y: 0, Z: 1},
		Length:    Interval{Min: 0, Max: 5},
	}
	p0 := e.Evaluate(0.5, 0)
	p1 := e.Evaluate(0.5, 5)
	require.InDelta(t, 5.0, p1.Z-p0.Z, 1e-9)
}

func TestRevolutedSurfaceTracesCircleAtFixedProfileParam(t *testing.T) {
	line, err := NewBSplineCurve3D(unitLineKnots(t), []Point3{{X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}})
	require.NoError(t, err)
	r := RevolutedSurface{Profile: line, Origin: Point3{}, Axis: Vector3{X: 0, Y: 0, Z: 1}}

	p0 := r.Evaluate(0, 0)
	p1 := r.Evaluate(math.Pi/2, 0)
	require.InDelta(t, p0.Sub(Point3{}).Length(), p1.Sub(Point3{}).Length(), 1e-9)
}
