package transport

import "github.com/orbital-csg/geomkit/core"

// ReflectDirection is reflect_direction(x_new, omega_old) -> omega_new
// (spec.md 4.E). Uses the step cache populated by the most recent
// FindDistance call. Postcondition: the result is unit length within
// core.UnitTolerance.
func (k *Kernel) ReflectDirection(xNew, omegaOld core.Vec3) (core.Vec3, error) {
	if !k.cache.valid {
		return core.Vec3{}, ErrNoPriorFindDistance
	}
	n := k.cache.surface.Normal(xNew)
	if !k.cache.oldSense {
		n = n.Mul(-1)
	}
	proj := omegaOld.Dot(n)
	return omegaOld.Sub(n.Mul(2 * proj)), nil
}

// GetSurfaceCrossing is get_surface_crossing(x_new, omega_old) ->
// (userSurfaceID, omega.n) (spec.md 4.E): the user-facing identifier of
// the crossed surface and the signed projection of the old direction onto
// the outward normal of the cell being left, useful for surface-current
// tallies.
func (k *Kernel) GetSurfaceCrossing(xNew, omegaOld core.Vec3) (uint64, float64, error) {
	if !k.cache.valid {
		return 0, 0, ErrNoPriorFindDistance
	}
	// The surface normal points toward its positive side, which is outward
	// for a cell on the negative side; flip it for a cell on the positive side.
	n := k.cache.surface.Normal(xNew)
	if k.cache.oldSense {
		n = n.Mul(-1)
	}
	return k.cache.surface.UserID(), omegaOld.Dot(n), nil
}
