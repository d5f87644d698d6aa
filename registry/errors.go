package registry

import "errors"

// Sentinel errors for geometry construction. All are fatal at the
// offending call: per spec.md 7, construction errors leave no partial state
// for the caller to meaningfully observe, so callers should treat any of
// these as terminal for the geometry under construction.
var (
	// ErrDuplicateSurfaceID indicates AddSurface was called twice with the
	// same user ID.
	ErrDuplicateSurfaceID = errors.New("registry: duplicate surface user id")

	// ErrDuplicateCellID indicates AddCell was called twice with the same
	// user ID.
	ErrDuplicateCellID = errors.New("registry: duplicate cell user id")

	// ErrUnknownSurfaceID indicates AddCell referenced a surface user id
	// that was never registered with AddSurface.
	ErrUnknownSurfaceID = errors.New("registry: cell references unknown surface id")

	// ErrZeroSurfaceID indicates a cell body contained a zero entry, which
	// spec.md 6 declares illegal (zero cannot encode a sense).
	ErrZeroSurfaceID = errors.New("registry: cell body contains illegal zero surface id")

	// ErrFrozen indicates AddSurface or AddCell was called after
	// CompleteInput.
	ErrFrozen = errors.New("registry: registry is frozen; no further insertion allowed")

	// ErrUnknownCellUserID indicates CellIndexOfUserID was given an id never
	// registered with AddCell.
	ErrUnknownCellUserID = errors.New("registry: unknown cell user id")

	// ErrCellIndexRange indicates a cell index lookup was out of range.
	ErrCellIndexRange = errors.New("registry: cell index out of range")

	// ErrSurfaceIndexRange indicates a surface index lookup was out of range.
	ErrSurfaceIndexRange = errors.New("registry: surface index out of range")

	// ErrUnknownSurfaceUserID indicates SurfaceIndexOfUserID was given an id
	// never registered with AddSurface.
	ErrUnknownSurfaceUserID = errors.New("registry: unknown surface user id")
)
