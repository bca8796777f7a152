package recur

import (
	"errors"
	"fmt"
	"time"

	"github.com/xyedo/rrule"
)

var ErrInvalidRule = errors.New("invalid recurrence rule")

// DefaultOccasionDuration is the length of a newly created occasion when
// the caller gives no end time.
const DefaultOccasionDuration = time.Hour

// Frequency of repetition. The zero value means "not set" and defaults
// to Daily at expansion time.
type Frequency int

const (
	freqUnset Frequency = iota
	Yearly
	Monthly
	Weekly
	Daily
	Hourly
	Minutely
	Secondly
)

func (f Frequency) rruleFreq() (rrule.Frequency, error) {
	switch f {
	case freqUnset, Daily:
		return rrule.DAILY, nil
	case Yearly:
		return rrule.YEARLY, nil
	case Monthly:
		return rrule.MONTHLY, nil
	case Weekly:
		return rrule.WEEKLY, nil
	case Hourly:
		return rrule.HOURLY, nil
	case Minutely:
		return rrule.MINUTELY, nil
	case Secondly:
		return rrule.SECONDLY, nil
	default:
		return 0, fmt.Errorf("unknown frequency %d: %w", f, ErrInvalidRule)
	}
}

// Rule describes a repetition pattern for an event's occasions.
//
// Count and Until bound the expansion; a rule with neither is degenerate
// and expands to exactly the single input span. Interval zero means the
// caller omitted it and is treated as 1.
type Rule struct {
	Freq     Frequency
	Interval int
	Count    int       // 0 = unset
	Until    time.Time // zero = unset

	ByWeekday  []rrule.Weekday
	ByMonthDay []int
}

// Bounded reports whether the rule terminates on its own.
func (r Rule) Bounded() bool {
	return r.Count > 0 || !r.Until.IsZero()
}

func (r Rule) validate() error {
	switch {
	case r.Interval < 0:
		return fmt.Errorf("interval must be at least 1: %w", ErrInvalidRule)
	case r.Count < 0:
		return fmt.Errorf("count must be at least 1: %w", ErrInvalidRule)
	}
	return nil
}
