package grid

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid grid config")

// Config describes the shape of one day's timeslot grid. StartTime is an
// offset from the day's midnight; the grid covers
// [start, start+Span] inclusive, discretized in steps of SlotInterval.
type Config struct {
	StartTime    time.Duration
	Span         time.Duration
	SlotInterval time.Duration
	MinColumns   int
}

func (c Config) validate() error {
	if c.SlotInterval <= 0 {
		return fmt.Errorf("slot interval must be positive: %w", ErrInvalidConfig)
	}
	return nil
}
