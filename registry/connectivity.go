package registry

// UnmatchedCount returns the current value of the unmatched-surface
// counter: the number of (cell, bounding-surface) pairs not yet matched to
// a discovered neighbor. It reaches zero once the connectivity graph is
// fully discovered (an informational event, not a correctness requirement
// per spec.md 3).
func (r *Registry) UnmatchedCount() int64 {
	return r.unmatched.Load()
}

// LinkNeighbors records that oldIndex and newIndex border each other across
// surfaceUserID, in both directions, and decrements the unmatched-surface
// counter by two (once per side, per spec.md 4.D). Returns true if this
// call brought the counter to exactly zero, signaling the connectivity
// graph just became complete.
func (r *Registry) LinkNeighbors(oldIndex, newIndex int, surfaceUserID uint64) (completedNow bool, err error) {
	oldCell, err := r.Cell(oldIndex)
	if err != nil {
		return false, err
	}
	newCell, err := r.Cell(newIndex)
	if err != nil {
		return false, err
	}

	oldCell.AddNeighbor(surfaceUserID, newIndex)
	newCell.AddNeighbor(surfaceUserID, oldIndex)

	remaining := r.unmatched.Add(-2)
	return remaining == 0, nil
}
