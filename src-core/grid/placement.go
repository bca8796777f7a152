package grid

import (
	"fmt"
	"time"

	"gridcal/src-core/model"
)

// Placement binds one occasion to one grid column. A single Placement is
// shared by reference across every cell the occasion occupies, so a
// VisualClass assigned once is visible from all of them.
type Placement struct {
	Occasion    *model.Occasion
	Column      int
	VisualClass string

	startUnix int64 // slot key of the first occupied row
}

// Cell is one grid slot: either empty (nil Placement) or a reference to
// a Placement. Continuation marks cells after the occasion's first row.
type Cell struct {
	Placement    *Placement
	Continuation bool
}

func (c Cell) Empty() bool {
	return c.Placement == nil
}

// Row pairs a slot key with its cells. Cells always has the grid's
// uniform column count; unoccupied columns hold empty cells.
type Row struct {
	Key   time.Time
	Cells []Cell
}

// Grid is a finished layout, rows ascending by slot key. It is built
// fresh per call and never mutated afterwards.
type Grid struct {
	Rows    []Row
	Columns int
}

// Formatter renders one cell into an opaque presentation unit. The grid
// never inspects the result.
type Formatter interface {
	Format(cell Cell) string
}

const continuationString = "^"

// LinkFormatter renders the occasion summary as a link on its first cell
// and a continuation marker on every cell after it.
type LinkFormatter struct{}

var _ Formatter = LinkFormatter{}

func (LinkFormatter) Format(cell Cell) string {
	if cell.Empty() {
		return ""
	}
	if cell.Continuation {
		return continuationString
	}
	occasion := cell.Placement.Occasion
	summary := occasion.ID
	if occasion.Event != nil {
		summary = occasion.Event.Summary
	}
	return fmt.Sprintf(`<a href="/events/%s/occasions/%s">%s</a>`,
		occasion.EventID, occasion.ID, summary)
}
