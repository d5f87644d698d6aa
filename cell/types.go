package cell

import (
	"sync"

	"github.com/orbital-csg/geomkit/core"
)

// Bound pairs a bounding surface with the sense a point must have on that
// surface to satisfy this side of the cell's definition.
type Bound struct {
	Surface core.Surface
	Sense   bool
}

// Flags is an independent bitfield matching spec.md 6's signed-integer cell
// format: bit 0 = DEAD, bit 1 = NEGATED.
type Flags uint8

const (
	// Dead marks a cell that terminates any particle entering it.
	Dead Flags = 1 << iota
	// Negated inverts the cell's membership test: a point is inside iff it
	// disagrees with at least one bound, rather than agreeing with all of them.
	Negated
)

// Cell is a region defined by a conjunction (or, if Negated, a disjunction
// of disagreements) of sense constraints over its Bounds. Cell is immutable
// except for its neighborhood cache.
type Cell struct {
	userID uint64
	index  int
	bounds []Bound
	flags  Flags

	mu        sync.RWMutex
	neighbors map[uint64][]int // bounding surface UserID -> neighboring cell indices
}

// New constructs a Cell. bounds must be non-empty (ErrNoBounds otherwise).
// index is the dense index this cell will occupy in its owning registry;
// userID is the caller-assigned identifier. Both are supplied by the caller
// (registry.AddCell) rather than assigned internally, since registry owns
// the ID <-> index bijection.
func New(userID uint64, index int, bounds []Bound, flags Flags) (*Cell, error) {
	if len(bounds) == 0 {
		return nil, ErrNoBounds
	}
	boundsCopy := make([]Bound, len(bounds))
	copy(boundsCopy, bounds)
	return &Cell{
		userID: userID,
		index:  index,
		bounds: boundsCopy,
		flags:  flags,
	}, nil
}

// UserID returns the caller-assigned identifier for this cell.
func (c *Cell) UserID() uint64 { return c.userID }

// Index returns this cell's dense index within its owning registry.
func (c *Cell) Index() int { return c.index }

// Bounds returns the cell's bounding (surface, sense) pairs. The returned
// slice must not be mutated by callers.
func (c *Cell) Bounds() []Bound { return c.bounds }

// IsDead reports whether this cell terminates particles on entry.
func (c *Cell) IsDead() bool { return c.flags&Dead != 0 }

// IsNegated reports whether this cell's membership test is inverted.
func (c *Cell) IsNegated() bool { return c.flags&Negated != 0 }
