package core

// AxisCylinder is a cylinder whose axis is a coordinate axis: a point
// Point0 assumed to already lie on that axis with its Axis-indexed
// component ignored, and radius Radius > 0. Equivalent to Cylinder with
// axis set to the corresponding unit axis vector, but the dot products
// against that axis degenerate to a single coordinate, dropped entirely
// per spec.md 4.B rather than computed via a general dot product.
type AxisCylinder struct {
	userID     uint64
	reflecting bool
	axis       int // 0=x, 1=y, 2=z: the coordinate held fixed along the axis
	point0     Vec3
	radius     float64
}

// NewAxisCylinder constructs an axis-aligned cylinder prototype centered on
// the line through point0 parallel to the given axis.
func NewAxisCylinder(axis int, point0 Vec3, radius float64, reflecting bool) Surface {
	return AxisCylinder{axis: axis, point0: point0, radius: radius, reflecting: reflecting}
}

func (c AxisCylinder) Kind() Kind       { return KindAxisCylinder }
func (c AxisCylinder) UserID() uint64   { return c.userID }
func (c AxisCylinder) Reflecting() bool { return c.reflecting }

func (c AxisCylinder) WithUserID(id uint64) Surface {
	c.userID = id
	return c
}

// perp returns the two off-axis components of x-point0 as a plain pair,
// dropping the in-axis component, avoiding a general 3-vector dot product
// against the axis direction.
func (c AxisCylinder) perp(x Vec3) (u, v float64) {
	d := x.Sub(c.point0)
	i, j := otherAxes(c.axis)
	return d[i], d[j]
}

// otherAxes returns the two coordinate indices other than axis, in
// ascending order.
func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

func (c AxisCylinder) HasPositiveSense(x Vec3) bool {
	u, v := c.perp(x)
	return u*u+v*v-c.radius*c.radius >= 0
}

// Intersect drops the axial component of both position and direction: with
// (u,v) the off-axis offset of x-point0 and (du,dv) the off-axis components
// of omega, A = du^2+dv^2, B = u*du+v*dv, C = u^2+v^2-radius^2.
func (c AxisCylinder) Intersect(x, omega Vec3, positiveSense bool) (bool, float64) {
	u, v := c.perp(x)
	i, j := otherAxes(c.axis)
	du, dv := omega[i], omega[j]

	a := du*du + dv*dv
	b := u*du + v*dv
	cc := u*u + v*v - c.radius*c.radius
	return Solve(a, b, cc, positiveSense)
}

// Normal at a point p on the cylinder has zero component along Axis and
// (u,v)/radius in the other two.
func (c AxisCylinder) Normal(p Vec3) Vec3 {
	u, v := c.perp(p)
	i, j := otherAxes(c.axis)
	var n Vec3
	n[i] = u / c.radius
	n[j] = v / c.radius
	return n
}
