package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons recorded on OccasionsDroppedTotal.
const (
	DropPreWindow  = "pre_window"
	DropMisaligned = "misaligned"
)

var (
	ExpansionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridcal_expansions_total",
		Help: "The number of recurrence expansions performed",
	})

	GridBuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridcal_grid_builds_total",
		Help: "The number of timeslot grids built",
	})

	OccasionsDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridcal_occasions_dropped_total",
		Help: "Occasions silently dropped during grid layout, by reason",
	}, []string{"reason"})
)
