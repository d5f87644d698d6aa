package core

// Cylinder is a general (arbitrarily-oriented) infinite cylinder: a point
// Point0 on its axis, a unit axis direction Axis, and radius Radius > 0.
// Positive sense: ||x-p0||^2 - (axis.(x-p0))^2 - radius^2 >= 0.
type Cylinder struct {
	userID     uint64
	reflecting bool
	point0     Vec3 // a point on the axis
	axis       Vec3 // unit axis direction
	radius     float64
}

// NewCylinder constructs a general-cylinder prototype. axis must be a unit
// vector (see core.UnitVec3); radius must be > 0.
func NewCylinder(point0, axis Vec3, radius float64, reflecting bool) Surface {
	return Cylinder{point0: point0, axis: axis, radius: radius, reflecting: reflecting}
}

func (c Cylinder) Kind() Kind       { return KindCylinder }
func (c Cylinder) UserID() uint64   { return c.userID }
func (c Cylinder) Reflecting() bool { return c.reflecting }

func (c Cylinder) WithUserID(id uint64) Surface {
	c.userID = id
	return c
}

func (c Cylinder) HasPositiveSense(x Vec3) bool {
	xp := x.Sub(c.point0)
	axialComp := c.axis.Dot(xp)
	return xp.Dot(xp)-axialComp*axialComp-c.radius*c.radius >= 0
}

// Intersect funnels through core.Solve with, for x' = x - point0:
//
//	A = 1 - (omega.axis)^2
//	B = omega.(x' - axis*(x'.axis))
//	C = x'.x' - (x'.axis)^2 - radius^2
//
// A particle traveling parallel to the axis has omega.axis == +-1, so A == 0
// and core.Solve correctly reports no intersection (it never divides by the
// degenerate A==0 case in a way that produces a spurious hit): see
// spec.md 8's "along-axis immunity" boundary behavior.
func (c Cylinder) Intersect(x, omega Vec3, positiveSense bool) (bool, float64) {
	xp := x.Sub(c.point0)
	omegaAxial := c.axis.Dot(omega)
	xpAxial := c.axis.Dot(xp)

	a := 1 - omegaAxial*omegaAxial
	b := omega.Dot(xp.Sub(c.axis.Mul(xpAxial)))
	cc := xp.Dot(xp) - xpAxial*xpAxial - c.radius*c.radius
	return Solve(a, b, cc, positiveSense)
}

// Normal at a point p on the cylinder is ((p-p0) - axis*(axis.(p-p0)))/radius.
func (c Cylinder) Normal(p Vec3) Vec3 {
	d := p.Sub(c.point0)
	radial := d.Sub(c.axis.Mul(c.axis.Dot(d)))
	return radial.Mul(1 / c.radius)
}
