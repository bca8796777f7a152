package model

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/uptrace/bun"
)

// One concrete scheduled interval of an owning event. Occasions are
// created once (usually by recurrence expansion) and treated as
// read-only inputs from then on.
type Occasion struct {
	bun.BaseModel `bun:"table:occasions"`

	ID      string `bun:"id,pk"`            // required
	EventID string `bun:"event_id,notnull"` // required

	StartUnixUTC int64 `bun:"start_date,notnull"` // required
	EndUnixUTC   int64 `bun:"end_date,notnull"`   // required

	Event *Event `bun:"rel:belongs-to,join:event_id=id"`
}

func (o *Occasion) StartTime() time.Time {
	return time.Unix(o.StartUnixUTC, 0).UTC()
}

func (o *Occasion) EndTime() time.Time {
	return time.Unix(o.EndUnixUTC, 0).UTC()
}

func (o *Occasion) Span() TimeSpan {
	return TimeSpan{Start: o.StartTime(), End: o.EndTime()}
}

// Kind returns the owning event's presentation kind, or "" when the
// relation is not loaded.
func (o *Occasion) Kind() string {
	if o.Event == nil {
		return ""
	}
	return o.Event.Kind
}

// Before reports whether o sorts before other in the canonical order:
// ascending start, ties broken by end.
func (o *Occasion) Before(other *Occasion) bool {
	if o.StartUnixUTC != other.StartUnixUTC {
		return o.StartUnixUTC < other.StartUnixUTC
	}
	return o.EndUnixUTC < other.EndUnixUTC
}

// SortOccasions sorts in place into the canonical order. The sort is
// stable so equal occasions keep their input order.
func SortOccasions(occasions []*Occasion) {
	sort.SliceStable(occasions, func(i, j int) bool {
		return occasions[i].Before(occasions[j])
	})
}

func (o *Occasion) Upsert(ctx context.Context, db bun.IDB) error {
	switch {
	case o.ID == "":
		return fmt.Errorf("(*Occasion).Upsert: occasion id is blank")
	case o.EventID == "":
		return fmt.Errorf("(*Occasion).Upsert: event id is blank")
	case o.StartUnixUTC == 0:
		return fmt.Errorf("(*Occasion).Upsert: start date is blank")
	case o.EndUnixUTC == 0:
		return fmt.Errorf("(*Occasion).Upsert: end date is blank")
	case o.StartUnixUTC > o.EndUnixUTC:
		return fmt.Errorf("(*Occasion).Upsert: start date must be before end date")
	}

	exists, err := db.NewSelect().
		Model((*Occasion)(nil)).
		Where("id = ?", o.ID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("(*Occasion).Upsert: %w", err)
	}

	switch exists {
	case true:
		if _, err := db.NewUpdate().
			Model(o).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Occasion).Upsert: %w", err)
		}
	case false:
		if _, err := db.NewInsert().
			Model(o).
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Occasion).Upsert: %w", err)
		}
	}

	return nil
}
