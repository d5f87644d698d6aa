package core

import "math"

// Plane is a general plane with unit normal Normal0 and a point P0 on the
// plane. Positive sense: Normal0.Dot(x - P0) >= 0.
type Plane struct {
	userID     uint64
	reflecting bool
	normal     Vec3 // unit normal; stored as given, defines the "positive" side
	point      Vec3 // a point on the plane
}

// NewPlane constructs a plane prototype from a unit normal and a point on
// the plane. normal is not renormalized; callers must supply a unit vector
// (see core.IsUnit). The returned Surface has UserID() == 0 until stamped
// by registry.AddSurface.
func NewPlane(normal, point Vec3, reflecting bool) Surface {
	return Plane{normal: normal, point: point, reflecting: reflecting}
}

func (p Plane) Kind() Kind       { return KindPlane }
func (p Plane) UserID() uint64   { return p.userID }
func (p Plane) Reflecting() bool { return p.reflecting }

func (p Plane) WithUserID(id uint64) Surface {
	p.userID = id
	return p
}

// HasPositiveSense reports n.(x - p0) >= 0, zero included.
func (p Plane) HasPositiveSense(x Vec3) bool {
	return p.normal.Dot(x.Sub(p.point)) >= 0
}

// Intersect implements spec.md 4.B's degenerate (A=0) plane case directly,
// rather than funneling through core.Solve: a plane's defining polynomial is
// linear along any ray, so there is exactly one candidate root (or none, if
// the ray runs parallel to the plane).
func (p Plane) Intersect(x, omega Vec3, positiveSense bool) (bool, float64) {
	cos := p.normal.Dot(omega)
	return planeLikeIntersect(cos, p.normal.Dot(p.point.Sub(x)), positiveSense)
}

// Normal returns the plane's stored positive-sense normal unchanged; the
// caller (transport.ReflectDirection / transport.GetSurfaceCrossing) is
// responsible for orienting it relative to the cell being left.
func (p Plane) Normal(_ Vec3) Vec3 { return p.normal }

// planeLikeIntersect implements the shared degenerate-plane root: given
// cos = n.omega and numerator = n.(p0 - x), decide whether the ray is
// heading toward the surface from the assumed side and, if so, the forward
// distance to it. Shared by Plane and AxisPlane.
func planeLikeIntersect(cos, numerator float64, positiveSense bool) (bool, float64) {
	if !positiveSense && cos > 0 {
		return true, math.Max(0, numerator/cos)
	}
	if positiveSense && cos < 0 {
		return true, math.Max(0, numerator/cos)
	}
	return false, 0
}
