// Package metrics exposes Prometheus collectors for the solver.
//
// Search counters are fed through dijkstra hooks (see Collector.Options), so
// the search itself stays free of any metrics dependency.
package metrics

import (
	"time"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/prometheus/client_golang/prometheus"
)

// Solve outcomes used as the "outcome" label.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
)

// Collector groups the burrow metrics.
type Collector struct {
	expanded prometheus.Counter
	pushed   prometheus.Counter
	solves   *prometheus.CounterVec
	cache    *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_states_expanded_total",
			Help: "Configurations finalized by the search",
		}),
		pushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "burrow_frontier_pushes_total",
			Help: "Frontier insertions, duplicates included",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "burrow_solves_total",
			Help: "Solve requests by outcome",
		}, []string{"outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "burrow_cache_lookups_total",
			Help: "Result cache lookups by result",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "burrow_solve_duration_seconds",
			Help:    "Wall time of searches that ran",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	reg.MustRegister(c.expanded, c.pushed, c.solves, c.cache, c.duration)

	return c
}

// Options returns the dijkstra hooks that feed the search counters.
func (c *Collector) Options() []dijkstra.Option {
	return []dijkstra.Option{
		dijkstra.WithOnExpand(func(board.Config, int64) { c.expanded.Inc() }),
		dijkstra.WithOnPush(func(board.Config, int64) { c.pushed.Inc() }),
	}
}

// ObserveSolve records one request. Rejected boards never reach the search
// and are left out of the duration histogram.
func (c *Collector) ObserveSolve(outcome string, took time.Duration) {
	c.solves.WithLabelValues(outcome).Inc()
	if outcome != OutcomeInvalid {
		c.duration.Observe(took.Seconds())
	}
}

// ObserveCache records a cache lookup; hit reports whether it was served.
func (c *Collector) ObserveCache(hit bool) {
	if hit {
		c.cache.WithLabelValues("hit").Inc()
		return
	}
	c.cache.WithLabelValues("miss").Inc()
}
