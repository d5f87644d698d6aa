package transport

import "errors"

// Sentinel errors for the transport kernel's precondition checks
// (spec.md 7: "Precondition violations ... fatal; intended as
// programming-error diagnostics and need not be checked in release
// builds"). These are returned directly rather than wrapped in
// *diag.FatalError, since they indicate caller misuse rather than a
// geometry defect.
var (
	// ErrNonUnitDirection indicates find_distance was called with a
	// direction vector that is not unit length within tolerance.
	ErrNonUnitDirection = errors.New("transport: direction vector is not unit length")

	// ErrInvalidCellIndex indicates find_distance was called with a cell
	// index outside the registry's range.
	ErrInvalidCellIndex = errors.New("transport: cell index out of range")

	// ErrNoPriorFindDistance indicates find_new_cell, reflect_direction, or
	// get_surface_crossing was called before any find_distance call.
	ErrNoPriorFindDistance = errors.New("transport: no step cache; find_distance was not called")

	// ErrStepCacheMismatch indicates find_new_cell was called with an
	// (x, omega) pair that does not match the position and direction the
	// step cache was populated with. reflect_direction and
	// get_surface_crossing do not perform this check.
	ErrStepCacheMismatch = errors.New("transport: position/direction does not match the last find_distance call")
)
