package registry

import (
	"sync"
	"sync/atomic"

	"github.com/orbital-csg/geomkit/cell"
	"github.com/orbital-csg/geomkit/core"
)

// pairKey identifies a (surface, sense) pair for the opposite-side cell
// index (spec.md 3's "map from (surface, sense) -> list of cells").
type pairKey struct {
	surfaceUserID uint64
	sense         bool
}

// Registry owns every surface and cell of one static geometry.
type Registry struct {
	mu sync.RWMutex // guards the maps below during construction

	surfaces       []core.Surface
	surfaceIndexOf map[uint64]int // surface user id -> dense index

	cells       []*cell.Cell
	cellIndexOf map[uint64]int // cell user id -> dense index

	pairCells map[pairKey][]int // (surface, sense) -> cell indices bearing that pair

	frozen bool

	unmatched    atomic.Int64 // decremented by 2 each time two cells are linked across a surface
	epsilonScale float64
}

// Option configures a Registry at construction time. Per the corpus's
// functional-option idiom, option constructors validate and panic on
// meaningless arguments; Registry's query/transport methods never panic on
// caller geometry data.
type Option func(*Registry)

// WithEpsilonScale scales the machine-epsilon bump-on-zero threshold used
// by the transport kernel's find-new-cell step 1 (spec.md 4.E). scale must
// be > 0.
func WithEpsilonScale(scale float64) Option {
	if scale <= 0 {
		panic("registry: WithEpsilonScale requires scale > 0")
	}
	return func(r *Registry) { r.epsilonScale = scale }
}

// New constructs an empty, unfrozen Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		surfaceIndexOf: make(map[uint64]int),
		cellIndexOf:    make(map[uint64]int),
		pairCells:      make(map[pairKey][]int),
		epsilonScale:   1.0,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EpsilonScale returns the configured bump-on-zero epsilon scale factor.
func (r *Registry) EpsilonScale() float64 { return r.epsilonScale }
