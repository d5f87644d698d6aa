package diag

import "container/heap"

// Candidate pairs a cell index with a distance, the shape produced when a
// transport diagnostic wants to report several intersection candidates
// (e.g. near-tied corner crossings) in nearest-first order.
type Candidate struct {
	CellIndex int
	Distance  float64
}

// candidateHeap is a min-heap of Candidate ordered by ascending Distance,
// in the push/pop shape of the corpus's dijkstra priority queue.
type candidateHeap []Candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].Distance < h[j].Distance }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(Candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// SortByDistance returns a copy of candidates ordered by ascending
// Distance, via a heapsort rather than sort.Slice: diagnostics that
// enumerate a handful of corner candidates care about nearest-first order,
// not a general-purpose sort, and a heap is the idiom the rest of the
// corpus reaches for when ordering by a numeric key.
func SortByDistance(candidates []Candidate) []Candidate {
	h := make(candidateHeap, len(candidates))
	copy(h, candidates)
	heap.Init(&h)

	out := make([]Candidate, 0, len(candidates))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(Candidate))
	}
	return out
}
