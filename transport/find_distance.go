package transport

import (
	"github.com/orbital-csg/geomkit/core"
	"github.com/orbital-csg/geomkit/diag"
)

// FindDistance is find_distance(x, omega, cellIndex) -> d (spec.md 4.E).
// Precondition: omega is unit, cellIndex is valid. Populates the step
// cache consumed by FindNewCell, ReflectDirection, and
// GetSurfaceCrossing. Postcondition: d >= 0.
func (k *Kernel) FindDistance(x, omega core.Vec3, cellIndex int) (float64, error) {
	if !core.IsUnit(omega) {
		return 0, ErrNonUnitDirection
	}
	c, err := k.reg.Cell(cellIndex)
	if err != nil {
		return 0, ErrInvalidCellIndex
	}

	hit, err := c.Intersect(x, omega)
	if err != nil {
		return 0, k.fatal(diag.NewFatalError(
			"cell has no forward intersection along the given direction",
			vec3ToArray(x), vec3ToArray(omega), cellIndex, c,
		))
	}

	k.cache = stepCache{
		valid:     true,
		oldCell:   cellIndex,
		surface:   hit.Surface,
		oldSense:  hit.Sense,
		distance:  hit.Distance,
		position:  x,
		direction: omega,
	}
	return hit.Distance, nil
}

func vec3ToArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}
