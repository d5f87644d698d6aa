package core

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3D point or direction. geomkit reuses the corpus's go-gl/mathgl
// dependency rather than introducing its own vector type: mgl64.Vec3
// already provides every operation the quadric formulas in this package
// need (Dot, Cross, Sub, Add, Mul, Len, Normalize).
type Vec3 = mgl64.Vec3

// IsUnit reports whether v has unit length within UnitTolerance.
func IsUnit(v Vec3) bool {
	d := v.Len() - 1.0
	if d < 0 {
		d = -d
	}
	return d <= UnitTolerance
}

// UnitVec3 normalizes v, returning ErrZeroAxis if v has (near) zero length.
func UnitVec3(v Vec3) (Vec3, error) {
	l := v.Len()
	if l <= UnitTolerance {
		return Vec3{}, ErrZeroAxis
	}
	return v.Mul(1 / l), nil
}
