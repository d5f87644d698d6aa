package cell

// Neighbors returns the cell indices known so far to border this cell
// across the bounding surface identified by surfaceUserID. The cache is
// lazily materialized: a surface with no discovered neighbors yet returns
// an empty, non-nil slice rather than allocating an entry.
//
// The returned slice is a snapshot; callers must not mutate it.
func (c *Cell) Neighbors(surfaceUserID uint64) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := c.neighbors[surfaceUserID]
	if out == nil {
		return []int{}
	}
	snapshot := make([]int, len(out))
	copy(snapshot, out)
	return snapshot
}

// AddNeighbor records that cellIndex is known to border this cell across
// surfaceUserID. A no-op if the pair is already recorded: the cache is a
// set, and spec.md 8's monotone-growth invariant means entries are never
// removed, only (idempotently) added.
func (c *Cell) AddNeighbor(surfaceUserID uint64, cellIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.neighbors == nil {
		c.neighbors = make(map[uint64][]int)
	}
	for _, existing := range c.neighbors[surfaceUserID] {
		if existing == cellIndex {
			return
		}
	}
	c.neighbors[surfaceUserID] = append(c.neighbors[surfaceUserID], cellIndex)
}
