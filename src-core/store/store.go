package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"gridcal/src-core/model"
	"gridcal/src-core/recur"
	"gridcal/src-core/utils"
)

// Store is the persistence collaborator: everything the scheduling core
// needs from the database goes through it.
type Store struct {
	db bun.IDB
}

func New(db bun.IDB) *Store {
	return &Store{db: db}
}

// SaveOccasion persists one occasion, minting an id when blank.
func (s *Store) SaveOccasion(ctx context.Context, occasion *model.Occasion) error {
	if occasion.ID == "" {
		occasion.ID = uuid.NewString()
	}
	if err := occasion.Upsert(ctx, s.db); err != nil {
		return fmt.Errorf("(*Store).SaveOccasion: %w", err)
	}
	return nil
}

// DailyOccasions returns every occasion overlapping the day containing
// ref, with the owning event loaded, ascending by start then end. A
// non-blank eventID restricts the result to one event.
func (s *Store) DailyOccasions(ctx context.Context, ref time.Time, eventID string) ([]*model.Occasion, error) {
	start, end := model.DayWindow(ref)

	var occasions []*model.Occasion
	query := s.db.NewSelect().
		Model(&occasions).
		Relation("Event").
		Where("((start_date >= ? AND start_date <= ?) OR (end_date >= ? AND end_date <= ?) OR (start_date < ? AND end_date > ?))",
			start.Unix(), end.Unix(),
			start.Unix(), end.Unix(),
			start.Unix(), end.Unix()).
		OrderExpr("occasion.start_date ASC, occasion.end_date ASC")
	if eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*Store).DailyOccasions: %w", err)
	}
	return occasions, nil
}

// UpcomingOccasions returns every occasion of the event starting at or
// after ref, with the owning event loaded, ascending by start then end.
func (s *Store) UpcomingOccasions(ctx context.Context, eventID string, ref time.Time) ([]*model.Occasion, error) {
	var occasions []*model.Occasion
	if err := s.db.NewSelect().
		Model(&occasions).
		Relation("Event").
		Where("event_id = ?", eventID).
		Where("start_date >= ?", ref.Unix()).
		OrderExpr("occasion.start_date ASC, occasion.end_date ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*Store).UpcomingOccasions: %w", err)
	}
	return occasions, nil
}

// NextOccasion returns the event's earliest occasion starting at or
// after ref, or nil when none remain.
func (s *Store) NextOccasion(ctx context.Context, eventID string, ref time.Time) (*model.Occasion, error) {
	occasion := new(model.Occasion)
	err := s.db.NewSelect().
		Model(occasion).
		Relation("Event").
		Where("event_id = ?", eventID).
		Where("start_date >= ?", ref.Unix()).
		OrderExpr("occasion.start_date ASC, occasion.end_date ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("(*Store).NextOccasion: %w", err)
	}
	return occasion, nil
}

// AddOccasions expands the rule against the event and persists every
// resulting span as an occasion. Nothing is written when expansion
// fails.
func (s *Store) AddOccasions(ctx context.Context, event *model.Event, start, end time.Time, rule recur.Rule) ([]*model.Occasion, error) {
	spans, err := recur.Expand(start, end, rule)
	if err != nil {
		return nil, fmt.Errorf("(*Store).AddOccasions: %w", err)
	}

	occasions := make([]*model.Occasion, 0, len(spans))
	for _, span := range spans {
		occasion := &model.Occasion{
			ID:           uuid.NewString(),
			EventID:      event.ID,
			StartUnixUTC: span.Start.Unix(),
			EndUnixUTC:   span.End.Unix(),
		}
		if err := occasion.Upsert(ctx, s.db); err != nil {
			return nil, fmt.Errorf("(*Store).AddOccasions: %w", err)
		}
		occasions = append(occasions, occasion)
	}
	return occasions, nil
}

// CreateEvent creates an event and its occasions in one call. Start
// defaults to the top of the current hour, end to start plus the default
// occasion duration.
func (s *Store) CreateEvent(ctx context.Context, summary, description, kind string, start, end time.Time, rule recur.Rule) (*model.Event, error) {
	event := &model.Event{
		ID:          uuid.NewString(),
		Summary:     utils.CleanupString(summary),
		Description: description,
		Kind:        kind,
	}
	if err := event.Upsert(ctx, s.db); err != nil {
		return nil, fmt.Errorf("(*Store).CreateEvent: %w", err)
	}

	if start.IsZero() {
		start = time.Now().UTC().Truncate(time.Hour)
	}
	if end.IsZero() {
		end = start.Add(recur.DefaultOccasionDuration)
	}
	if _, err := s.AddOccasions(ctx, event, start, end, rule); err != nil {
		return nil, err
	}
	return event, nil
}
