package core

// AxisPlane is a plane normal to one of the three coordinate axes: the
// degenerate, much more common case of Plane. Positive sense:
// x[Axis] - Coord >= 0.
type AxisPlane struct {
	userID     uint64
	reflecting bool
	axis       int // 0=x, 1=y, 2=z
	coord      float64
}

// NewAxisPlane constructs an axis-aligned plane prototype at x[axis] == c.
// axis must be 0, 1, or 2; neither this constructor nor registry.AddSurface
// validates it (callers are expected to use the Axis* constants).
func NewAxisPlane(axis int, c float64, reflecting bool) Surface {
	return AxisPlane{axis: axis, coord: c, reflecting: reflecting}
}

// Axis index constants for AxisPlane and AxisCylinder construction.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

func (p AxisPlane) Kind() Kind       { return KindAxisPlane }
func (p AxisPlane) UserID() uint64   { return p.userID }
func (p AxisPlane) Reflecting() bool { return p.reflecting }

func (p AxisPlane) WithUserID(id uint64) Surface {
	p.userID = id
	return p
}

// HasPositiveSense reports x[axis] - coord >= 0.
func (p AxisPlane) HasPositiveSense(x Vec3) bool {
	return x[p.axis]-p.coord >= 0
}

// Intersect degenerates to cos = omega[axis]; see Plane.Intersect.
func (p AxisPlane) Intersect(x, omega Vec3, positiveSense bool) (bool, float64) {
	cos := omega[p.axis]
	return planeLikeIntersect(cos, p.coord-x[p.axis], positiveSense)
}

// Normal returns the unit vector along Axis, in the positive-sense direction.
func (p AxisPlane) Normal(_ Vec3) Vec3 {
	var n Vec3
	n[p.axis] = 1
	return n
}
