// Package cell defines Cell: a region of space bounded by a list of
// (surface, expected sense) pairs, plus the lazily-materialized
// neighborhood cache the transport kernel uses to short-circuit repeat
// surface crossings.
//
// A Cell is immutable except for its neighborhood cache: Contains and
// Intersect never mutate a Cell, while AddNeighbor and Neighbors manage the
// per-surface adjacency discovered at transport time, guarded by a mutex so
// concurrent transport of independent particles can share one geometry
// (spec's shared-resource policy, option (i): serialize writes to
// neighborhood lists behind a coarse lock).
//
// cell has no knowledge of registry or transport: bounding surfaces are
// referenced by core.Surface value and compared by UserID, and neighboring
// cells are referenced by plain dense index (int), per the arena/index
// convention that avoids an ownership cycle between cells.
package cell
