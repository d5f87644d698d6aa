// Package registry owns the heap of surfaces and cells that make up one
// static geometry: it assigns dense indices, maintains the user-ID <->
// index bijections for both, indexes cells by (surface, sense) for the
// transport kernel's opposite-side lookup, and tracks the unmatched-surface
// counter that announces when the neighbor graph is fully discovered.
//
// A Registry is append-only during construction (AddSurface, AddCell) and
// becomes immutable after CompleteInput freezes it — matching spec.md 9's
// resolution of the Open Question about complete_input's documented intent
// (the original routine was a no-op; here it actually rejects further
// insertion). After freezing, the only mutable state is each cell's
// neighborhood cache (see package cell) and the unmatched-surface counter,
// both owned per spec.md 5's concurrency model.
package registry
