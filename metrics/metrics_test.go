package metrics_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_SolveHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	start := board.New("...........", map[byte]string{'A': "BA", 'B': "AB", 'C': "CC", 'D': "DD"})
	res, err := dijkstra.Solve(start, board.Goal(start), c.Options()...)
	require.NoError(t, err)
	c.ObserveSolve(metrics.OutcomeSolved, 3*time.Millisecond)
	c.ObserveCache(false)
	c.ObserveCache(true)
	c.ObserveCache(true)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if m.GetCounter() != nil {
				values[f.GetName()] += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(res.Expanded), values["burrow_states_expanded_total"])
	assert.Equal(t, float64(res.Pushed), values["burrow_frontier_pushes_total"])
	assert.Equal(t, float64(1), values["burrow_solves_total"])
	assert.Equal(t, float64(3), values["burrow_cache_lookups_total"])
	assert.Len(t, families, 5)

	series, err := testutil.GatherAndCount(reg, "burrow_cache_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series, "hit and miss series")
}

func TestCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
