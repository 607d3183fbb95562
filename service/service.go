// Package service ties the pieces together for the CLI and the HTTP API:
// parse the board, consult the result cache, search, record metrics, store
// the outcome and report.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/cache"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/internal/logging"
	"github.com/katalvlaran/burrow/metrics"
)

// Request is one board to solve.
type Request struct {
	Board  string // textual board, see board.Parse
	Unfold bool   // insert the two extra rows before solving
	Path   bool   // reconstruct the move sequence (bypasses cache reads)
}

// Report is the outcome of a successful Solve.
type Report struct {
	ID       string
	Start    board.Config
	Goal     board.Config
	Energy   int64
	Expanded int
	Pushed   int
	Cached   bool
	Path     []board.Config
	Steps    []int64
	Took     time.Duration
}

// Service solves boards. It is safe for concurrent use when its Cache is.
type Service struct {
	layout    board.Layout
	cache     cache.Cache
	metrics   *metrics.Collector
	log       *slog.Logger
	maxEnergy int64
}

// Option configures a Service.
type Option func(*Service)

// WithLayout sets the board geometry (default board.Standard()).
func WithLayout(l board.Layout) Option {
	return func(s *Service) { s.layout = l }
}

// WithCache enables result caching.
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *metrics.Collector) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the logger (default: no-op).
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxEnergy caps every search; 0 means no cap.
func WithMaxEnergy(n int64) Option {
	return func(s *Service) { s.maxEnergy = n }
}

// New returns a Service.
func New(opts ...Option) *Service {
	s := &Service{layout: board.Standard(), log: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve parses req.Board and returns the minimum energy. Errors wrap
// board.ErrMalformedBoard, board.ErrInvalidConfiguration,
// dijkstra.ErrNoSolution or a context error.
func (s *Service) Solve(ctx context.Context, req Request) (*Report, error) {
	id := uuid.NewString()
	log := s.log.With("id", id)

	start, goal, err := board.ParseLayout(s.layout, req.Board)
	if err == nil && req.Unfold {
		if start, err = board.Unfold(start); err == nil {
			goal = board.Goal(start)
		}
	}
	if err != nil {
		s.observe(metrics.OutcomeInvalid, 0)
		log.Debug("rejected board", "error", err)
		return nil, err
	}

	rep := &Report{ID: id, Start: start, Goal: goal}
	key := cache.Key(s.layout, start, goal)
	if hit, err := s.lookup(ctx, log, key, req); hit != nil || err != nil {
		if err != nil {
			return nil, err
		}
		rep.Energy, rep.Cached = hit.Energy, true
		log.Info("served from cache", "energy", rep.Energy)
		return rep, nil
	}

	opts := []dijkstra.Option{dijkstra.WithLayout(s.layout), dijkstra.WithContext(ctx)}
	if s.maxEnergy > 0 {
		opts = append(opts, dijkstra.WithMaxEnergy(s.maxEnergy))
	}
	if req.Path {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	if s.metrics != nil {
		opts = append(opts, s.metrics.Options()...)
	}

	began := time.Now()
	res, err := dijkstra.Solve(start, goal, opts...)
	rep.Took = time.Since(began)
	switch {
	case errors.Is(err, dijkstra.ErrNoSolution):
		s.observe(metrics.OutcomeNoSolution, rep.Took)
		if s.maxEnergy == 0 {
			s.store(ctx, log, key, cache.Entry{NoSolution: true})
		}
		log.Info("no solution", "took", rep.Took)
		return nil, err
	case err != nil:
		s.observe(metrics.OutcomeError, rep.Took)
		log.Warn("search failed", "error", err)
		return nil, err
	}

	s.observe(metrics.OutcomeSolved, rep.Took)
	s.store(ctx, log, key, cache.Entry{Energy: res.Energy})
	rep.Energy, rep.Expanded, rep.Pushed = res.Energy, res.Expanded, res.Pushed
	rep.Path, rep.Steps = res.Path, res.Steps
	log.Info("solved", "energy", res.Energy, "expanded", res.Expanded, "took", rep.Took)

	return rep, nil
}

// lookup returns a cached entry, ErrNoSolution for a cached dead end, or
// (nil, nil) when the search has to run. Cache failures are logged and
// treated as misses.
func (s *Service) lookup(ctx context.Context, log *slog.Logger, key string, req Request) (*cache.Entry, error) {
	if s.cache == nil || req.Path {
		return nil, nil
	}
	e, err := s.cache.Get(ctx, key)
	switch {
	case errors.Is(err, cache.ErrMiss):
		s.observeCache(false)
		return nil, nil
	case err != nil:
		s.observeCache(false)
		log.Warn("cache lookup failed", "error", err)
		return nil, nil
	}
	s.observeCache(true)
	if e.NoSolution {
		return nil, fmt.Errorf("cached: %w", dijkstra.ErrNoSolution)
	}

	return &e, nil
}

func (s *Service) store(ctx context.Context, log *slog.Logger, key string, e cache.Entry) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, e); err != nil {
		log.Warn("cache store failed", "error", err)
	}
}

func (s *Service) observe(outcome string, took time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveSolve(outcome, took)
	}
}

func (s *Service) observeCache(hit bool) {
	if s.metrics != nil {
		s.metrics.ObserveCache(hit)
	}
}
