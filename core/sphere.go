package core

// Sphere is centered at Center with radius Radius > 0. Positive sense:
// ||x - center||^2 - radius^2 >= 0.
type Sphere struct {
	userID     uint64
	reflecting bool
	center     Vec3
	radius     float64
}

// NewSphere constructs a sphere prototype. radius must be > 0; neither this
// constructor nor registry.AddSurface validates it.
func NewSphere(center Vec3, radius float64, reflecting bool) Surface {
	return Sphere{center: center, radius: radius, reflecting: reflecting}
}

func (s Sphere) Kind() Kind       { return KindSphere }
func (s Sphere) UserID() uint64   { return s.userID }
func (s Sphere) Reflecting() bool { return s.reflecting }

func (s Sphere) WithUserID(id uint64) Surface {
	s.userID = id
	return s
}

func (s Sphere) HasPositiveSense(x Vec3) bool {
	d := x.Sub(s.center)
	return d.Dot(d)-s.radius*s.radius >= 0
}

// Intersect funnels through core.Solve with A=1, B=x'.omega, C=x'.x'-r^2,
// where x' = x - center, per spec.md 4.B.
func (s Sphere) Intersect(x, omega Vec3, positiveSense bool) (bool, float64) {
	xp := x.Sub(s.center)
	a := 1.0
	b := xp.Dot(omega)
	c := xp.Dot(xp) - s.radius*s.radius
	return Solve(a, b, c, positiveSense)
}

// Normal at a point p on the sphere is (p - center) / radius.
func (s Sphere) Normal(p Vec3) Vec3 {
	return p.Sub(s.center).Mul(1 / s.radius)
}
