package diag

import (
	"fmt"
	"strings"

	"github.com/orbital-csg/geomkit/cell"
)

// BoundDump captures one bounding surface of a cell for a fatal-error
// report: its kind, user id, expected sense, and whatever neighbors the
// cache has discovered across it so far.
type BoundDump struct {
	SurfaceUserID uint64
	SurfaceKind   string
	Sense         bool
	Neighbors     []int
}

// DumpCell snapshots a cell's bounding-surface list and known
// neighborhoods, for inclusion in a FatalError per spec.md 4.F's "dump of
// the current cell's bounding-surface list and each surface's known
// neighborhood".
func DumpCell(c *cell.Cell) []BoundDump {
	bounds := c.Bounds()
	out := make([]BoundDump, len(bounds))
	for i, b := range bounds {
		out[i] = BoundDump{
			SurfaceUserID: b.Surface.UserID(),
			SurfaceKind:   b.Surface.Kind().String(),
			Sense:         b.Sense,
			Neighbors:     c.Neighbors(b.Surface.UserID()),
		}
	}
	return out
}

// FatalError reports one of spec.md 7's fatal geometry conditions: missing
// surface connectivity, a point no cell claims, a cell with no forward
// intersection, or a lost particle. It carries
// enough of the offending cell's state that a host can print a useful
// diagnostic without re-deriving it from the registry.
type FatalError struct {
	Message   string
	Position  [3]float64
	Direction [3]float64
	CellIndex int
	Bounds    []BoundDump
}

func (e *FatalError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "geomkit: fatal: %s (cell=%d pos=%v dir=%v)", e.Message, e.CellIndex, e.Position, e.Direction)
	for _, bd := range e.Bounds {
		fmt.Fprintf(&b, "\n  surface %d (%s) sense=%v neighbors=%v", bd.SurfaceUserID, bd.SurfaceKind, bd.Sense, bd.Neighbors)
	}
	return b.String()
}

// NewFatalError builds a FatalError, dumping cell's current bounding
// surfaces and neighborhoods. cell may be nil if no cell context is
// available (e.g. find_cell, which has no current cell), in which case
// Bounds is left empty.
func NewFatalError(message string, position, direction [3]float64, cellIndex int, c *cell.Cell) *FatalError {
	fe := &FatalError{
		Message:   message,
		Position:  position,
		Direction: direction,
		CellIndex: cellIndex,
	}
	if c != nil {
		fe.Bounds = DumpCell(c)
	}
	return fe
}
