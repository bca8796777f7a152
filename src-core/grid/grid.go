package grid

import (
	"fmt"
	"log/slog"
	"time"

	"gridcal/src-core/metric"
	"gridcal/src-core/model"
)

// Build lays the given occasions out on one day's timeslot grid.
//
// Occasions are processed in canonical order (ascending start, then
// end); each claims the lowest free column of its starting row and keeps
// that column for every later row it spans. Per-occasion anomalies are
// dropped, not errors: occasions ending before the grid opens, occasions
// whose start does not land on a slot boundary, and continuation walks
// running off a truncated grid. Dropping misaligned starts is a known
// limitation inherited from the layout's slot-alignment assumption.
//
// A nil cycles leaves every VisualClass blank.
func Build(day time.Time, cfg Config, occasions []*model.Occasion, cycles *CycleSet) (*Grid, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("grid.Build: %w", err)
	}

	gridStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(cfg.StartTime)
	gridEnd := gridStart.Add(cfg.Span)

	// Slot keys run through the inclusive upper bound: the final row
	// lands exactly on gridEnd.
	var keys []time.Time
	rows := make(map[int64]map[int]*Placement)
	for t := gridStart; !t.After(gridEnd); t = t.Add(cfg.SlotInterval) {
		keys = append(keys, t)
		rows[t.Unix()] = make(map[int]*Placement)
	}

	sorted := make([]*model.Occasion, len(occasions))
	copy(sorted, occasions)
	model.SortOccasions(sorted)

	gridEndUnix := gridEnd.Unix()
	for _, occasion := range sorted {
		if !occasion.EndTime().After(gridStart) {
			// ended before the visible window opens
			metric.OccasionsDroppedTotal.WithLabelValues(metric.DropPreWindow).Inc()
			continue
		}

		rowKey := gridStart
		if occasion.StartTime().After(gridStart) {
			rowKey = occasion.StartTime()
		}
		row, ok := rows[rowKey.Unix()]
		if !ok {
			metric.OccasionsDroppedTotal.WithLabelValues(metric.DropMisaligned).Inc()
			slog.Debug("grid: occasion start is off the slot boundary, dropping",
				"occasion", occasion.ID, "start", occasion.StartTime())
			continue
		}

		// lowest free column of the starting row, never a preferred or
		// remembered one
		column := 0
		for {
			if _, occupied := row[column]; !occupied {
				break
			}
			column++
		}

		placement := &Placement{
			Occasion:  occasion,
			Column:    column,
			startUnix: rowKey.Unix(),
		}

		// The starting row is claimed outright, even for a zero-duration
		// occasion whose walk below never runs.
		row[column] = placement

		// Walk the rest of the span forward, sharing the one placement.
		// Rows cover keys strictly before the occasion's end, except that
		// an end landing exactly on gridEnd still occupies that final row.
		endUnix := occasion.EndUnixUTC
		for current := rowKey.Add(cfg.SlotInterval); current.Unix() < endUnix ||
			(current.Unix() == endUnix && current.Unix() == gridEndUnix); current = current.Add(cfg.SlotInterval) {
			r, ok := rows[current.Unix()]
			if !ok {
				// grid truncated before the occasion ends
				break
			}
			r[column] = placement
		}
	}

	columns := cfg.MinColumns
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	out := &Grid{
		Rows:    make([]Row, 0, len(keys)),
		Columns: columns,
	}
	for _, key := range keys {
		cells := make([]Cell, columns)
		for column := 0; column < columns; column++ {
			placement, ok := rows[key.Unix()][column]
			if !ok {
				continue
			}
			cells[column] = Cell{
				Placement:    placement,
				Continuation: key.Unix() != placement.startUnix,
			}
			// first use wins; a class assigned here never changes even
			// when a later row reuses the column
			if cycles != nil && placement.VisualClass == "" {
				placement.VisualClass = cycles.next(column, placement.Occasion.Kind())
			}
		}
		out.Rows = append(out.Rows, Row{Key: key, Cells: cells})
	}

	metric.GridBuildsTotal.Inc()
	return out, nil
}
