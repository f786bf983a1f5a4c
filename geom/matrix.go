package geom

import "math"

// Transform is a 3-D affine transformation, a 3x4 matrix in row-major
// order applied as x' = Rx + T. It backs the CurveProcessor and
// SurfaceProcessor decorators.
//
// It follows the common 2-D affine convention (2x3, row-major,
// translation in the last column) lifted to 3-D.
type Transform struct {
	M [3][3]float64 // linear part
	T Vector3       // translation part
}

// IdentityTransform returns the identity transformation.
func IdentityTransform() Transform {
	t := Transform{}
	t.M[0][0], t.M[1][1], t.M[2][2] = 1, 1, 1
	return t
}

// Translation returns a pure-translation transform.
func Translation(v Vector3) Transform {
	t := IdentityTransform()
	t.T = v
	return t
}

// UniformScale returns a transform that scales uniformly about the origin.
func UniformScale(s float64) Transform {
	t := Transform{}
	t.M[0][0], t.M[1][1], t.M[2][2] = s, s, s
	return t
}

// Rotation returns a transform that rotates by angle radians about the
// given unit axis, using Rodrigues' rotation formula. axis need not be
// normalized; it is normalized internally.
func Rotation(axis Vector3, angle float64) Transform {
	a := axis.Normalize()
	s := math.Sin(angle)
	c := math.Cos(angle)
	ic := 1 - c

	t := Transform{}
	t.M[0][0] = c + a.X*a.X*ic
	t.M[0][1] = a.X*a.Y*ic - a.Z*s
	t.M[0][2] = a.X*a.Z*ic + a.Y*s
	t.M[1][0] = a.Y*a.X*ic + a.Z*s
	t.M[1][1] = c + a.Y*a.Y*ic
	t.M[1][2] = a.Y*a.Z*ic - a.X*s
	t.M[2][0] = a.Z*a.X*ic - a.Y*s
	t.M[2][1] = a.Z*a.Y*ic + a.X*s
	t.M[2][2] = c + a.Z*a.Z*ic
	return t
}

// AxisRotation returns a transform that rotates by angle radians about the
// axis through origin with direction dir.
func AxisRotation(origin Point3, dir Vector3, angle float64) Transform {
	toOrigin := Translation(origin.ToVector3().Neg())
	rot := Rotation(dir, angle)
	back := Translation(origin.ToVector3())
	return back.Compose(rot).Compose(toOrigin)
}

// Compose returns the transform equivalent to applying m first, then t
// (t.Compose(m) corresponds to t * m in matrix notation).
func (t Transform) Compose(m Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += t.M[i][k] * m.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	out.T = t.ApplyVector(m.T).Add(t.T)
	return out
}

// ApplyPoint transforms a position.
func (t Transform) ApplyPoint(p Point3) Point3 {
	return Point3{
		X: t.M[0][0]*p.X + t.M[0][1]*p.Y + t.M[0][2]*p.Z + t.T.X,
		Y: t.M[1][0]*p.X + t.M[1][1]*p.Y + t.M[1][2]*p.Z + t.T.Y,
		Z: t.M[2][0]*p.X + t.M[2][1]*p.Y + t.M[2][2]*p.Z + t.T.Z,
	}
}

// ApplyVector transforms a direction (no translation).
func (t Transform) ApplyVector(v Vector3) Vector3 {
	return Vector3{
		X: t.M[0][0]*v.X + t.M[0][1]*v.Y + t.M[0][2]*v.Z,
		Y: t.M[1][0]*v.X + t.M[1][1]*v.Y + t.M[1][2]*v.Z,
		Z: t.M[2][0]*v.X + t.M[2][1]*v.Y + t.M[2][2]*v.Z,
	}
}

// ApplyPoint4 transforms a homogeneous control point: translation is
// scaled by W so that Project() after the transform agrees with
// transforming the projected 3-D point.
func (t Transform) ApplyPoint4(p Point4) Point4 {
	p3 := t.ApplyPoint(p.Project())
	return Homogeneous(p3, p.W)
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	m := t.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsIdentity reports whether t is (numerically exactly) the identity.
func (t Transform) IsIdentity() bool {
	id := IdentityTransform()
	return t.M == id.M && t.T == Vector3{}
}
