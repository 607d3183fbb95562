package service_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/cache"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/metrics"
	"github.com/katalvlaran/burrow/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const swapped = `#############
#...........#
###B#A#C#D###
  #A#B#C#D#
  #########`

func TestSolve_CachesInMemory(t *testing.T) {
	mem := cache.NewMemory(0)
	svc := service.New(service.WithCache(mem), service.WithMetrics(metrics.New(prometheus.NewRegistry())))
	ctx := context.Background()

	first, err := svc.Solve(ctx, service.Request{Board: swapped})
	require.NoError(t, err)
	assert.Equal(t, int64(46), first.Energy)
	assert.False(t, first.Cached)
	assert.Positive(t, first.Expanded)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 1, mem.Len())

	second, err := svc.Solve(ctx, service.Request{Board: swapped})
	require.NoError(t, err)
	assert.Equal(t, int64(46), second.Energy)
	assert.True(t, second.Cached)
	assert.Zero(t, second.Expanded)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSolve_PathBypassesCacheRead(t *testing.T) {
	mem := cache.NewMemory(0)
	svc := service.New(service.WithCache(mem))
	ctx := context.Background()

	_, err := svc.Solve(ctx, service.Request{Board: swapped})
	require.NoError(t, err)

	rep, err := svc.Solve(ctx, service.Request{Board: swapped, Path: true})
	require.NoError(t, err)
	assert.False(t, rep.Cached)
	require.NotEmpty(t, rep.Path)
	assert.Equal(t, rep.Start, rep.Path[0])
	assert.Equal(t, rep.Goal, rep.Path[len(rep.Path)-1])
}

func TestSolve_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rc := cache.NewRedis(mr.Addr(), "", 0, cache.WithPrefix("t:"))
	defer rc.Close()
	svc := service.New(service.WithCache(rc))

	_, err = svc.Solve(context.Background(), service.Request{Board: swapped})
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 1)

	rep, err := svc.Solve(context.Background(), service.Request{Board: swapped})
	require.NoError(t, err)
	assert.True(t, rep.Cached)
	assert.Equal(t, int64(46), rep.Energy)
}

func TestSolve_CacheOutageFallsBackToSearch(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rc := cache.NewRedis(mr.Addr(), "", 0)
	defer rc.Close()
	mr.Close()

	rep, err := service.New(service.WithCache(rc)).Solve(context.Background(), service.Request{Board: swapped})
	require.NoError(t, err)
	assert.Equal(t, int64(46), rep.Energy)
}

func TestSolve_Errors(t *testing.T) {
	svc := service.New()
	ctx := context.Background()

	_, err := svc.Solve(ctx, service.Request{Board: "###"})
	assert.ErrorIs(t, err, board.ErrMalformedBoard)

	shallow := "#############\n#...........#\n###B#A#C#D###\n  #########"
	_, err = svc.Solve(ctx, service.Request{Board: shallow, Unfold: true})
	assert.ErrorIs(t, err, board.ErrInvalidConfiguration, "only depth-2 boards unfold")

	mem := cache.NewMemory(0)
	capped := service.New(service.WithMaxEnergy(10), service.WithCache(mem))
	_, err = capped.Solve(ctx, service.Request{Board: swapped})
	assert.ErrorIs(t, err, dijkstra.ErrNoSolution)
	assert.Zero(t, mem.Len(), "capped dead ends are not cached")
}

func TestSolve_CachedDeadEnd(t *testing.T) {
	start, goal, err := board.Parse(swapped)
	require.NoError(t, err)

	mem := cache.NewMemory(0)
	require.NoError(t, mem.Set(context.Background(), cache.Key(board.Standard(), start, goal), cache.Entry{NoSolution: true}))

	_, err = service.New(service.WithCache(mem)).Solve(context.Background(), service.Request{Board: swapped})
	assert.ErrorIs(t, err, dijkstra.ErrNoSolution)
}
