package model_test

import (
	"testing"
	"time"

	"gridcal/src-core/model"
)

func span(start, end time.Time) model.TimeSpan {
	return model.TimeSpan{Start: start, End: end}
}

func TestTimeSpanOverlaps(t *testing.T) {
	windowStart := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.Add(24*time.Hour - time.Second)

	for name, tc := range map[string]struct {
		span model.TimeSpan
		want bool
	}{
		"fully inside": {
			span: span(windowStart.Add(9*time.Hour), windowStart.Add(10*time.Hour)),
			want: true,
		},
		"starts inside, ends after": {
			span: span(windowStart.Add(23*time.Hour), windowStart.Add(26*time.Hour)),
			want: true,
		},
		"starts before, ends inside": {
			span: span(windowStart.Add(-2*time.Hour), windowStart.Add(time.Hour)),
			want: true,
		},
		"fully contains the window": {
			span: span(windowStart.Add(-24*time.Hour), windowEnd.Add(24*time.Hour)),
			want: true,
		},
		"ends exactly at window start": {
			// closed boundary: exact equality still overlaps
			span: span(windowStart.Add(-time.Hour), windowStart),
			want: true,
		},
		"starts exactly at window end": {
			span: span(windowEnd, windowEnd.Add(time.Hour)),
			want: true,
		},
		"entirely before": {
			span: span(windowStart.Add(-2*time.Hour), windowStart.Add(-time.Second)),
			want: false,
		},
		"entirely after": {
			span: span(windowEnd.Add(time.Second), windowEnd.Add(time.Hour)),
			want: false,
		},
	} {
		if got := tc.span.Overlaps(windowStart, windowEnd); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", name, got, tc.want)
		}
		// symmetry: the window, read as a span, must agree
		if got := span(windowStart, windowEnd).Overlaps(tc.span.Start, tc.span.End); got != tc.want {
			t.Errorf("%s: symmetric Overlaps = %v, want %v", name, got, tc.want)
		}
	}
}

func TestDayWindow(t *testing.T) {
	ref := time.Date(2024, 10, 7, 14, 32, 5, 0, time.UTC)
	start, end := model.DayWindow(ref)

	if want := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("window start %v, want %v", start, want)
	}
	if want := time.Date(2024, 10, 7, 23, 59, 59, 0, time.UTC); !end.Equal(want) {
		t.Errorf("window end %v, want %v", end, want)
	}
}

func TestOverlapping(t *testing.T) {
	day := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	windowStart, windowEnd := model.DayWindow(day)

	inside := &model.Occasion{
		ID: "inside", EventID: "event-a",
		StartUnixUTC: day.Add(9 * time.Hour).Unix(),
		EndUnixUTC:   day.Add(10 * time.Hour).Unix(),
	}
	straddling := &model.Occasion{
		ID: "straddling", EventID: "event-b",
		StartUnixUTC: day.Add(-time.Hour).Unix(),
		EndUnixUTC:   day.Add(25 * time.Hour).Unix(),
	}
	before := &model.Occasion{
		ID: "before", EventID: "event-a",
		StartUnixUTC: day.Add(-3 * time.Hour).Unix(),
		EndUnixUTC:   day.Add(-2 * time.Hour).Unix(),
	}

	got := model.Overlapping([]*model.Occasion{inside, straddling, before}, windowStart, windowEnd, "")
	if len(got) != 2 || got[0].ID != "inside" || got[1].ID != "straddling" {
		t.Errorf("unexpected result %v", got)
	}

	// owner filter
	got = model.Overlapping([]*model.Occasion{inside, straddling, before}, windowStart, windowEnd, "event-a")
	if len(got) != 1 || got[0].ID != "inside" {
		t.Errorf("unexpected filtered result %v", got)
	}
}

func TestSortOccasions(t *testing.T) {
	day := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	mk := func(id string, start, end time.Duration) *model.Occasion {
		return &model.Occasion{
			ID:           id,
			EventID:      "event",
			StartUnixUTC: day.Add(start).Unix(),
			EndUnixUTC:   day.Add(end).Unix(),
		}
	}

	occasions := []*model.Occasion{
		mk("c", 10*time.Hour, 11*time.Hour),
		mk("b", 9*time.Hour, 11*time.Hour), // same start as a, later end
		mk("a", 9*time.Hour, 10*time.Hour),
	}
	model.SortOccasions(occasions)

	want := []string{"a", "b", "c"}
	for i, occasion := range occasions {
		if occasion.ID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, occasion.ID, want[i])
		}
	}
}
