package registry

import (
	"github.com/orbital-csg/geomkit/cell"
)

// AddCell decodes a signed-integer cell body (spec.md 6): each non-zero
// entry s references the surface with user id |s|, with positive s meaning
// the cell lies on that surface's positive-sense side. Zero entries are
// illegal.
//
// Fatal per spec.md 7: ErrFrozen if CompleteInput has run, ErrZeroSurfaceID
// for a zero entry, ErrUnknownSurfaceID for a reference to an unregistered
// surface, ErrDuplicateCellID for a repeated user id, or cell.ErrNoBounds if
// signedSurfaceIDs is empty.
//
// The cell's (surface, sense) pairs are indexed for the opposite-side
// lookup used by transport.FindNewCell: for a non-negated cell under the
// pair as given, for a negated cell under the opposite sense of each pair
// (its "outside" faces the other way, per spec.md 4.D). The
// unmatched-surface counter is incremented by the bound count.
func (r *Registry) AddCell(userID uint64, signedSurfaceIDs []int64, flags cell.Flags) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return 0, ErrFrozen
	}
	if _, exists := r.cellIndexOf[userID]; exists {
		return 0, ErrDuplicateCellID
	}

	bounds := make([]cell.Bound, 0, len(signedSurfaceIDs))
	for _, s := range signedSurfaceIDs {
		if s == 0 {
			return 0, ErrZeroSurfaceID
		}
		sense := s > 0
		surfUserID := absInt64(s)
		idx, ok := r.surfaceIndexOf[surfUserID]
		if !ok {
			return 0, ErrUnknownSurfaceID
		}
		bounds = append(bounds, cell.Bound{Surface: r.surfaces[idx], Sense: sense})
	}

	index := len(r.cells)
	c, err := cell.New(userID, index, bounds, flags)
	if err != nil {
		return 0, err
	}

	negated := flags&cell.Negated != 0
	for _, b := range bounds {
		pairSense := b.Sense
		if negated {
			pairSense = !pairSense
		}
		key := pairKey{surfaceUserID: b.Surface.UserID(), sense: pairSense}
		r.pairCells[key] = append(r.pairCells[key], index)
	}
	r.unmatched.Add(int64(len(bounds)))

	r.cells = append(r.cells, c)
	r.cellIndexOf[userID] = index
	return index, nil
}

func absInt64(s int64) uint64 {
	if s < 0 {
		return uint64(-s)
	}
	return uint64(s)
}

// NumCells returns the number of registered cells.
func (r *Registry) NumCells() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cells)
}

// Cell returns the cell at dense index i.
func (r *Registry) Cell(i int) (*cell.Cell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.cells) {
		return nil, ErrCellIndexRange
	}
	return r.cells[i], nil
}

// IsDead reports whether the cell at dense index i terminates particles on
// entry.
func (r *Registry) IsDead(i int) (bool, error) {
	c, err := r.Cell(i)
	if err != nil {
		return false, err
	}
	return c.IsDead(), nil
}

// UserIDOfCell returns the user-assigned ID of the cell at dense index i.
func (r *Registry) UserIDOfCell(i int) (uint64, error) {
	c, err := r.Cell(i)
	if err != nil {
		return 0, err
	}
	return c.UserID(), nil
}

// CellIndexOfUserID is the inverse of UserIDOfCell.
func (r *Registry) CellIndexOfUserID(userID uint64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.cellIndexOf[userID]
	if !ok {
		return 0, ErrUnknownCellUserID
	}
	return idx, nil
}

// CellsForSurfaceSense returns the cell indices registered under the given
// (surface, sense) pair, and whether any such entry exists at all. An
// absent entry at transport time (ok == false) means the crossed surface
// has no registered opposite-side cells — spec.md 4.E step 5's fatal
// "surface connectivity not found" condition; registry itself does not
// raise that error, leaving diagnostic construction to package transport.
func (r *Registry) CellsForSurfaceSense(surfaceUserID uint64, sense bool) ([]int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cells, ok := r.pairCells[pairKey{surfaceUserID: surfaceUserID, sense: sense}]
	if !ok {
		return nil, false
	}
	out := make([]int, len(cells))
	copy(out, cells)
	return out, true
}
