package ballot

import "github.com/ballotpaper/go-ballotpaper/metrics"

const subsystem = "ballot"

var (
	transitionCount = metrics.NewCounter(
		"transitions",
		subsystem,
		"number of vote lifecycle transitions",
		[]string{"from", "to"},
	)
	submitDuration = metrics.NewHistogramWithBuckets(
		"submit_duration_seconds",
		subsystem,
		"duration of a vote submission from simulation to broadcast",
		[]string{"outcome"},
		[]float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	)
)
