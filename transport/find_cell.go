package transport

import (
	"github.com/orbital-csg/geomkit/core"
	"github.com/orbital-csg/geomkit/diag"
)

// FindCell is find_cell(x) -> cellIndex (spec.md 4.E): a linear scan over
// every registered cell's Contains. Used when a caller has lost track of
// the current cell index (e.g. problem initialization). FindNewCell's step
// 6 global fallback runs its own scan and does not call FindCell. If no
// cell claims x, this is fatal.
func (k *Kernel) FindCell(x core.Vec3) (int, error) {
	for idx := 0; idx < k.reg.NumCells(); idx++ {
		c, err := k.reg.Cell(idx)
		if err != nil {
			continue
		}
		if c.Contains(x, nil) {
			return idx, nil
		}
	}
	return -1, k.fatal(diag.NewFatalError(
		"find_cell: no cell contains the given point",
		vec3ToArray(x), [3]float64{}, -1, nil,
	))
}
