package core

import "errors"

// Sentinel errors for the core surface primitives.
var (
	// ErrNonUnitDirection indicates a ray direction was not a unit vector
	// within tolerance. Intersection routines require ||omega|| == 1; this
	// is a programming-error precondition, not a recoverable runtime error.
	ErrNonUnitDirection = errors.New("core: direction vector is not unit length")

	// ErrZeroRadius names the radius <= 0 condition for spheres and
	// cylinders. The surface constructors do not validate radius and do not
	// return it.
	ErrZeroRadius = errors.New("core: surface radius must be positive")

	// ErrZeroAxis is returned by UnitVec3 when given a (near) zero-length
	// vector, such as a cylinder axis, which cannot be normalized.
	ErrZeroAxis = errors.New("core: cylinder axis vector has zero length")

	// ErrInvalidAxisIndex names an axis index outside {0,1,2} for
	// axis-aligned surfaces. The surface constructors do not validate the
	// axis and do not return it.
	ErrInvalidAxisIndex = errors.New("core: axis index must be 0, 1, or 2")
)

// UnitTolerance is the maximum allowed deviation of ||omega|| from 1 before
// IsUnit rejects a direction vector.
const UnitTolerance = 1e-9
