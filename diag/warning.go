package diag

import "fmt"

// Kind identifies which informational condition a Warning reports.
type Kind int

const (
	// BumpOnZero fires when find_new_cell's cached distance was zero and
	// had to be replaced by a small epsilon bump (spec.md 4.E step 1).
	BumpOnZero Kind = iota
	// GlobalSearchUsed fires when find_new_cell fell through to the
	// O(n) global cell scan because neither the neighborhood cache nor
	// the opposite-sense registry lookup produced a match (step 6).
	GlobalSearchUsed
	// ConnectivityComplete fires once the unmatched-surface counter
	// reaches zero, meaning every bounding-surface crossing in the mesh
	// has been linked to a neighbor at least once.
	ConnectivityComplete
)

// String renders a Kind for log lines and test assertions.
func (k Kind) String() string {
	switch k {
	case BumpOnZero:
		return "bump-on-zero"
	case GlobalSearchUsed:
		return "used-global-search"
	case ConnectivityComplete:
		return "connectivity-complete"
	default:
		return "unknown-warning-kind"
	}
}

// Warning is an informational condition (spec.md 7: "never abort"). Hooks
// registered with transport.WithWarningHook receive one of these per
// occurrence; the zero value of Position/Direction/CellIndex is used for
// the connectivity-complete kind, which is not tied to a single particle
// step.
type Warning struct {
	Kind      Kind
	Position  [3]float64
	Direction [3]float64
	CellIndex int
	Message   string
}

// Error lets Warning satisfy the error interface, for callers that prefer
// to log warnings through the same path as errors. Transport itself never
// returns a Warning as an error value.
func (w Warning) Error() string {
	return fmt.Sprintf("%s: cell=%d pos=%v dir=%v: %s", w.Kind, w.CellIndex, w.Position, w.Direction, w.Message)
}
