// Package metrics exposes Prometheus instrumentation for the DSSR-driven
// solve loop: how long a solve took, how many DSSR iterations it needed,
// and how many solves ran, by outcome. Label counts are not exported. The
// dependency
// (github.com/prometheus/client_golang) comes from mihai-snyk-descheduler's
// go.mod in the retrieval pack; no concrete usage file for it was retrieved
// there, so this package follows the library's own standard
// promauto/promhttp wiring rather than a pack-specific idiom.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SolveDuration observes wall-clock solve time in seconds, labeled by
	// outcome ("feasible" / "infeasible").
	SolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "evscheduled_solve_duration_seconds",
		Help:    "Time spent in one schedule.Solve call, including all DSSR iterations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	// DSSRIterations observes how many DP passes DSSR needed to reach an
	// elementary best label (or exhaust the search).
	DSSRIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evscheduled_dssr_iterations",
		Help:    "Number of DP passes DSSR performed per Solve call, including the first.",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	})

	// SolvesTotal counts solves by outcome.
	SolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evscheduled_solves_total",
		Help: "Total number of schedule.Solve calls, labeled by outcome.",
	}, []string{"outcome"})
)

// Outcome returns the outcome label value for a solve result.
func Outcome(infeasible bool) string {
	if infeasible {
		return "infeasible"
	}
	return "feasible"
}
