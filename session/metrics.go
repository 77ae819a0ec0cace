package session

import "github.com/ballotpaper/go-ballotpaper/metrics"

const subsystem = "session"

var (
	eventCount = metrics.NewCounter(
		"events",
		subsystem,
		"number of pushed events handled",
		[]string{"source", "kind"},
	)
	refreshCount = metrics.NewCounter(
		"refreshes",
		subsystem,
		"number of results refreshes triggered by consensus rounds",
		[]string{"outcome"},
	)
	activeSessions = metrics.NewGauge(
		"active",
		subsystem,
		"number of connected sessions",
		[]string{},
	).WithLabelValues()
)
