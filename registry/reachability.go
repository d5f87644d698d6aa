package registry

// Reachability diagnostics supplementing the unmatched-surface counter
// (itself informational: reaching zero only raises a warning). These are
// informational only: they traverse whatever the neighbor cache has
// discovered so far, in the traversal style of the corpus's bfs/dfs
// packages (hookable, a queue/stack over a lazily-known adjacency), applied
// here to the cell-neighbor graph rather than a core.Graph.

// VisitHook, if non-nil, is called once per cell visited by ReachableCells,
// in discovery order. Returning an error aborts the traversal early and the
// error is propagated to the caller. DeadCellReachable takes no hook.
type VisitHook func(cellIndex int) error

// neighborsOf returns the union, across all of a cell's bounding surfaces,
// of the cell indices currently cached as neighbors across that surface.
func (r *Registry) neighborsOf(index int) ([]int, error) {
	c, err := r.Cell(index)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool)
	var out []int
	for _, b := range c.Bounds() {
		for _, n := range c.Neighbors(b.Surface.UserID()) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out, nil
}

// ReachableCells performs a breadth-first traversal of the cell-neighbor
// graph starting at from, using only links the neighborhood cache has
// discovered so far. The returned set is therefore a lower bound on true
// geometric adjacency: a cell absent from it may still genuinely border the
// geometry discovered region, just not yet via a crossing transport has
// recorded.
func (r *Registry) ReachableCells(from int, hook VisitHook) (map[int]bool, error) {
	if _, err := r.Cell(from); err != nil {
		return nil, err
	}
	visited := map[int]bool{from: true}
	queue := []int{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if hook != nil {
			if err := hook(cur); err != nil {
				return nil, err
			}
		}
		neighbors, err := r.neighborsOf(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited, nil
}

// DeadCellReachable performs a depth-first traversal of the cell-neighbor
// graph from `from`, reporting whether any reachable cell (from included) is
// flagged Dead. Like ReachableCells, it only sees links the neighborhood
// cache has discovered so far.
func (r *Registry) DeadCellReachable(from int) (bool, error) {
	start, err := r.Cell(from)
	if err != nil {
		return false, err
	}
	if start.IsDead() {
		return true, nil
	}

	visited := map[int]bool{from: true}
	stack := []int{from}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors, err := r.neighborsOf(cur)
		if err != nil {
			return false, err
		}
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			c, err := r.Cell(n)
			if err != nil {
				return false, err
			}
			if c.IsDead() {
				return true, nil
			}
			stack = append(stack, n)
		}
	}
	return false, nil
}
