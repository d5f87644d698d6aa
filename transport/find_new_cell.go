package transport

import (
	"math"

	"github.com/orbital-csg/geomkit/cell"
	"github.com/orbital-csg/geomkit/core"
	"github.com/orbital-csg/geomkit/diag"
)

// cacheMatchTolerance bounds how far (x, omega) may drift from the values
// find_distance cached before find_new_cell refuses to trust the cache
// (spec.md 5: "the step cache carries the precondition that position and
// direction are unchanged between the two calls (debug-checked)").
const cacheMatchTolerance = 1e-9

// machineEpsilon is the gap between 1 and the next larger float64 (2^-52),
// used by the bump-on-zero rule's epsilon floor (spec.md 4.E step 1).
var machineEpsilon = math.Nextafter(1, 2) - 1

func (k *Kernel) checkCache(x, omega core.Vec3) error {
	if !k.cache.valid {
		return ErrNoPriorFindDistance
	}
	if x.Sub(k.cache.position).Len() > cacheMatchTolerance ||
		omega.Sub(k.cache.direction).Len() > cacheMatchTolerance {
		return ErrStepCacheMismatch
	}
	return nil
}

// FindNewCell is find_new_cell(x, omega) -> (x_new, cellNew, status)
// (spec.md 4.E). It must be called with the same (x, omega) that
// populated the step cache via the most recent FindDistance call.
func (k *Kernel) FindNewCell(x, omega core.Vec3) (core.Vec3, int, Status, error) {
	if err := k.checkCache(x, omega); err != nil {
		return core.Vec3{}, 0, Normal, err
	}
	sc := k.cache
	oldCellObj, err := k.reg.Cell(sc.oldCell)
	if err != nil {
		return core.Vec3{}, 0, Normal, err
	}

	// Step 1: bump-on-zero.
	d := sc.distance
	if d == 0 {
		floor := machineEpsilon * k.reg.EpsilonScale()
		d = math.Max(x.Len()*2*floor, floor)
		k.warn(diag.Warning{
			Kind:      diag.BumpOnZero,
			Position:  vec3ToArray(x),
			Direction: vec3ToArray(omega),
			CellIndex: sc.oldCell,
			Message:   "cached distance was zero; bumped to avoid re-striking the same surface",
		})
	}

	// Step 2: advance position.
	xNew := x.Add(omega.Mul(d))

	// Step 3: reflection.
	if sc.surface.Reflecting() {
		return xNew, sc.oldCell, Reflected, nil
	}

	surfaceID := sc.surface.UserID()

	// Step 4: neighborhood probe.
	for _, idx := range oldCellObj.Neighbors(surfaceID) {
		candidate, err := k.reg.Cell(idx)
		if err != nil {
			continue
		}
		if candidate.Contains(xNew, &surfaceID) {
			return xNew, idx, statusFor(candidate), nil
		}
	}

	// Step 5: opposite-sense probe.
	candidates, ok := k.reg.CellsForSurfaceSense(surfaceID, !sc.oldSense)
	if !ok {
		return xNew, sc.oldCell, Normal, k.fatal(diag.NewFatalError(
			"surface connectivity not found",
			vec3ToArray(xNew), vec3ToArray(omega), sc.oldCell, oldCellObj,
		))
	}
	for _, idx := range candidates {
		candidate, err := k.reg.Cell(idx)
		if err != nil {
			continue
		}
		if candidate.Contains(xNew, &surfaceID) {
			completed, err := k.reg.LinkNeighbors(sc.oldCell, idx, surfaceID)
			if err != nil {
				return core.Vec3{}, 0, Normal, err
			}
			if completed {
				k.warn(diag.Warning{Kind: diag.ConnectivityComplete, Message: "neighborhood cache fully discovered"})
			}
			return xNew, idx, statusFor(candidate), nil
		}
	}

	// Step 6: global fallback.
	for idx := 0; idx < k.reg.NumCells(); idx++ {
		if idx == sc.oldCell {
			continue
		}
		candidate, err := k.reg.Cell(idx)
		if err != nil {
			continue
		}
		if candidate.Contains(xNew, &surfaceID) {
			k.warn(diag.Warning{
				Kind:      diag.GlobalSearchUsed,
				Position:  vec3ToArray(xNew),
				Direction: vec3ToArray(omega),
				CellIndex: sc.oldCell,
				Message:   "neighborhood cache and opposite-sense lookup both missed; fell back to a global scan",
			})
			completed, err := k.reg.LinkNeighbors(sc.oldCell, idx, surfaceID)
			if err != nil {
				return core.Vec3{}, 0, Normal, err
			}
			if completed {
				k.warn(diag.Warning{Kind: diag.ConnectivityComplete, Message: "neighborhood cache fully discovered"})
			}
			return xNew, idx, statusFor(candidate), nil
		}
	}

	// Step 7: lost.
	return xNew, sc.oldCell, Lost, k.fatal(diag.NewFatalError(
		"lost particle: no cell claims the advanced position",
		vec3ToArray(xNew), vec3ToArray(omega), sc.oldCell, oldCellObj,
	))
}

func statusFor(c *cell.Cell) Status {
	if c.IsDead() {
		return DeadCell
	}
	return Normal
}
