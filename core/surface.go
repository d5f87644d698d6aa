package core

// Kind identifies which of the five built-in quadric families a Surface is.
// It is reported in diagnostics (diag.DumpCell); cell, registry and
// transport use only the Surface interface methods and do not switch on
// Kind.
type Kind int

const (
	// KindPlane is a general plane: unit normal + point.
	KindPlane Kind = iota
	// KindAxisPlane is a plane normal to a coordinate axis.
	KindAxisPlane
	// KindSphere is a sphere: center + radius.
	KindSphere
	// KindCylinder is a general cylinder: axis point + unit axis + radius.
	KindCylinder
	// KindAxisCylinder is a cylinder whose axis is a coordinate axis.
	KindAxisCylinder
)

// String renders a Kind for diagnostics and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindAxisPlane:
		return "axis-plane"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	case KindAxisCylinder:
		return "axis-cylinder"
	default:
		return "unknown-surface-kind"
	}
}

// Surface is an immutable quadric surface: a stable user-visible ID, an
// optional reflecting flag, and the three operations every transport query
// needs. Concrete surfaces (Plane, AxisPlane, Sphere, Cylinder,
// AxisCylinder) all implement this interface; none of geomkit outside this
// package depends on their concrete field layout.
type Surface interface {
	// Kind reports which built-in family this surface belongs to.
	Kind() Kind

	// UserID returns the caller-assigned identifier stamped on this surface
	// by registry.AddSurface. Zero until stamped.
	UserID() uint64

	// Reflecting reports whether a particle crossing this surface should
	// have its direction reflected rather than proceeding to a new cell.
	Reflecting() bool

	// HasPositiveSense reports the sense of x with respect to this surface.
	// Positive sense is defined to include zero: points exactly on the
	// surface report true.
	HasPositiveSense(x Vec3) bool

	// Intersect finds the forward distance from x along unit direction
	// omega to this surface, assuming the ray currently sits on the side
	// given by positiveSense (the expected sense the caller's cell assigned
	// this surface). Returns (false, 0) if no forward intersection exists.
	//
	// Precondition: ||omega|| == 1 within core.UnitTolerance; violating this
	// is a programming error, not a recoverable condition (see core.IsUnit).
	Intersect(x, omega Vec3, positiveSense bool) (hit bool, distance float64)

	// Normal returns the outward unit normal at a point p assumed to lie on
	// the surface. Behavior is undefined for points not on the surface.
	Normal(p Vec3) Vec3

	// WithUserID returns a copy of this surface with UserID set to id. Used
	// by registry.AddSurface to stamp an identifier onto a cloned prototype;
	// not intended for use outside geometry construction.
	WithUserID(id uint64) Surface
}
