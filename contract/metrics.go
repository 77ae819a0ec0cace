package contract

import "github.com/ballotpaper/go-ballotpaper/metrics"

const (
	subsystem = "contract"

	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	queryCount = metrics.NewCounter(
		"queries",
		subsystem,
		"number of simulated contract calls",
		[]string{"function", "outcome"},
	)
	cacheHits = metrics.NewCounter(
		"query_cache_hits",
		subsystem,
		"number of getter queries served from cache",
		[]string{"function"},
	)
	callCount = metrics.NewCounter(
		"calls",
		subsystem,
		"number of broadcast contract calls",
		[]string{"function", "outcome"},
	)
)
