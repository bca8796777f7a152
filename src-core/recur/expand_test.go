package recur_test

import (
	"errors"
	"testing"
	"time"

	"github.com/xyedo/rrule"

	"gridcal/src-core/recur"
)

func TestExpandDegenerateRule(t *testing.T) {
	start := time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	spans, err := recur.Expand(start, end, recur.Rule{})
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 1 {
		t.Fatalf("want exactly one span, got %d", len(spans))
	}
	if !spans[0].Start.Equal(start) || !spans[0].End.Equal(end) {
		t.Errorf("span %v..%v does not match input %v..%v", spans[0].Start, spans[0].End, start, end)
	}
}

func TestExpandCount(t *testing.T) {
	start := time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	// frequency omitted, must default to daily
	spans, err := recur.Expand(start, end, recur.Rule{Count: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 5 {
		t.Fatalf("want 5 spans, got %d", len(spans))
	}
	for i, span := range spans {
		if want := start.AddDate(0, 0, i); !span.Start.Equal(want) {
			t.Errorf("span %d starts at %v, want %v", i, span.Start, want)
		}
		if got := span.End.Sub(span.Start); got != time.Hour {
			t.Errorf("span %d has duration %v, want %v", i, got, time.Hour)
		}
		if i > 0 && span.Start.Before(spans[i-1].Start) {
			t.Errorf("span %d starts before span %d", i, i-1)
		}
	}
}

func TestExpandInterval(t *testing.T) {
	start := time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	spans, err := recur.Expand(start, end, recur.Rule{Count: 3, Interval: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 3 {
		t.Fatalf("want 3 spans, got %d", len(spans))
	}
	for i, span := range spans {
		if want := start.AddDate(0, 0, 2*i); !span.Start.Equal(want) {
			t.Errorf("span %d starts at %v, want %v", i, span.Start, want)
		}
	}
}

func TestExpandUntil(t *testing.T) {
	start := time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	until := start.AddDate(0, 0, 3)

	spans, err := recur.Expand(start, end, recur.Rule{Until: until})
	if err != nil {
		t.Fatal(err)
	}
	// anchors at or before until, inclusive: days 0 through 3
	if len(spans) != 4 {
		t.Fatalf("want 4 spans, got %d", len(spans))
	}
	last := spans[len(spans)-1]
	if !last.Start.Equal(until) {
		t.Errorf("last span starts at %v, want %v", last.Start, until)
	}
}

func TestExpandWeeklyByWeekday(t *testing.T) {
	// 2024-10-07 is a Monday
	start := time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	spans, err := recur.Expand(start, end, recur.Rule{
		Freq:      recur.Weekly,
		Count:     4,
		ByWeekday: []rrule.Weekday{rrule.MO, rrule.WE},
	})
	if err != nil {
		t.Fatal(err)
	}
	wantDays := []int{7, 9, 14, 16}
	if len(spans) != len(wantDays) {
		t.Fatalf("want %d spans, got %d", len(wantDays), len(spans))
	}
	for i, span := range spans {
		if span.Start.Day() != wantDays[i] {
			t.Errorf("span %d lands on day %d, want %d", i, span.Start.Day(), wantDays[i])
		}
	}
}

func TestExpandInvalidRule(t *testing.T) {
	start := time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	for name, rule := range map[string]recur.Rule{
		"negative interval": {Count: 3, Interval: -1},
		"negative count":    {Count: -1, Until: start.AddDate(0, 0, 3)},
	} {
		if _, err := recur.Expand(start, end, rule); !errors.Is(err, recur.ErrInvalidRule) {
			t.Errorf("%s: want ErrInvalidRule, got %v", name, err)
		}
	}
}
