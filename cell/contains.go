package cell

import "github.com/orbital-csg/geomkit/core"

// Contains reports whether x lies inside the cell. skipSurfaceID, if
// non-nil, names a bounding surface's UserID to treat specially: the kernel
// passes the just-crossed surface here because floating-point roundoff may
// place the advanced point marginally on the wrong side of it.
//
// Non-negated: true iff every non-skipped bound agrees with x's actual
// sense.
//
// Negated: true iff either (a) the skipped surface is one of this cell's
// bounds (x is considered to be on the negated side of it, by construction,
// since it was just crossed), or (b) some non-skipped bound disagrees with
// x's actual sense.
func (c *Cell) Contains(x core.Vec3, skipSurfaceID *uint64) bool {
	if !c.IsNegated() {
		for _, b := range c.bounds {
			if skipSurfaceID != nil && b.Surface.UserID() == *skipSurfaceID {
				continue
			}
			if b.Surface.HasPositiveSense(x) != b.Sense {
				return false
			}
		}
		return true
	}

	if skipSurfaceID != nil {
		for _, b := range c.bounds {
			if b.Surface.UserID() == *skipSurfaceID {
				return true
			}
		}
	}
	for _, b := range c.bounds {
		if skipSurfaceID != nil && b.Surface.UserID() == *skipSurfaceID {
			continue
		}
		if b.Surface.HasPositiveSense(x) != b.Sense {
			return true
		}
	}
	return false
}
