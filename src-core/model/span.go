package model

import "time"

// TimeSpan is a concrete start/end pair. End is never before Start.
type TimeSpan struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the span and the window share at least one
// instant. Both boundaries are closed: a span ending exactly at
// windowStart still counts as overlapping.
func (s TimeSpan) Overlaps(windowStart, windowEnd time.Time) bool {
	return !s.Start.After(windowEnd) && !s.End.Before(windowStart)
}

// DayWindow returns the window [00:00:00, 23:59:59] of the day
// containing ref, in ref's location.
func DayWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return start, start.Add(24*time.Hour - time.Second)
}

// Overlapping filters occasions down to those whose span intersects the
// window, preserving input order. A non-blank eventID additionally
// restricts the result to occasions of that event.
func Overlapping(occasions []*Occasion, windowStart, windowEnd time.Time, eventID string) []*Occasion {
	out := make([]*Occasion, 0, len(occasions))
	for _, occasion := range occasions {
		if eventID != "" && occasion.EventID != eventID {
			continue
		}
		if occasion.Span().Overlaps(windowStart, windowEnd) {
			out = append(out, occasion)
		}
	}
	return out
}
