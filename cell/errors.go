package cell

import "errors"

// Sentinel errors for cell construction and intersection.
var (
	// ErrNoBounds indicates a cell was constructed with an empty bounding
	// list, which spec.md 4.C forbids: every cell must have at least one
	// bounding surface.
	ErrNoBounds = errors.New("cell: cell has no bounding surfaces")

	// ErrNoIntersection indicates Intersect's postcondition failed: no
	// bounding surface reported a forward intersection. This signals an
	// ill-formed geometry (a cell whose boundary the particle cannot ever
	// leave through), not a recoverable runtime condition.
	ErrNoIntersection = errors.New("cell: no bounding surface intersected (ill-formed geometry)")
)
