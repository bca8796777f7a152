package recur

import (
	"fmt"
	"time"

	"github.com/xyedo/rrule"

	"gridcal/src-core/metric"
	"gridcal/src-core/model"
)

// Expand materializes a rule into concrete spans, each keeping the
// duration of the original start/end pair. Anchors follow standard
// recurrence semantics beginning at start, ascending.
//
// A degenerate rule (neither Count nor Until) yields the input span
// untouched and never reaches the rrule iterator, which would otherwise
// run unbounded.
func Expand(start, end time.Time, rule Rule) ([]model.TimeSpan, error) {
	if err := rule.validate(); err != nil {
		return nil, fmt.Errorf("recur.Expand: %w", err)
	}

	if !rule.Bounded() {
		metric.ExpansionsTotal.Inc()
		return []model.TimeSpan{{Start: start, End: end}}, nil
	}

	freq, err := rule.Freq.rruleFreq()
	if err != nil {
		return nil, fmt.Errorf("recur.Expand: %w", err)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:       freq,
		Dtstart:    start,
		Interval:   rule.Interval,
		Count:      rule.Count,
		Until:      rule.Until,
		Byweekday:  rule.ByWeekday,
		Bymonthday: rule.ByMonthDay,
	})
	if err != nil {
		return nil, fmt.Errorf("recur.Expand: %w", err)
	}

	delta := end.Sub(start)
	anchors := r.All()
	spans := make([]model.TimeSpan, 0, len(anchors))
	for _, anchor := range anchors {
		spans = append(spans, model.TimeSpan{Start: anchor, End: anchor.Add(delta)})
	}

	metric.ExpansionsTotal.Inc()
	return spans, nil
}
