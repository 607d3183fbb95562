// Package dijkstra defines core types and configuration options
// for the uniform-cost search over board configurations.
//
// Solve computes the minimum energy needed to turn a start board.Config into a
// goal board.Config. The graph is implicit: vertices are configurations,
// edges are the legal moves produced by moves.Generator, and edge weights are
// the (strictly positive) move energies.
//
// Complexity:
//
//	– Time:  O((V + E) log E)   where V = reachable configurations, E = moves among them
//	   • Each configuration is expanded at most once (V expansions).
//	   • Each improving relaxation pushes into the priority queue (up to E pushes).
//	   • Each heap operation (push/pop) costs O(log E).
//	– Space: O(V + E)
//	   • O(V) for the best-energy table (and predecessors when a path is requested).
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Layout:      board geometry (default board.Standard()).
//	– Ctx:         cancellation, checked once per dequeue.
//	– ReturnPath:  if true, Result.Path and Result.Steps are filled.
//	– MaxEnergy:   optional cap; successors costing more are never queued.
//	– Validate:    run board.Validate on start and goal before searching (default true).
//	– OnExpand / OnPush: observation hooks.
//
// Errors (sentinel):
//
//	– ErrNoSolution      if the frontier empties before the goal is dequeued.
//	– ErrOptionViolation if an option was given an invalid value.
//	– board.ErrInvalidLayout, board.ErrInvalidConfiguration from validation.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/burrow/board"
)

// Sentinel errors returned by Solve.
var (
	// ErrNoSolution indicates that every reachable configuration was expanded
	// without dequeuing the goal. It is never reported as a number.
	ErrNoSolution = errors.New("dijkstra: goal is unreachable from start")

	// ErrOptionViolation indicates that an invalid Option value was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of Solve.
//
// Layout     – board geometry used to generate moves.
// Ctx        – context checked for cancellation once per dequeue.
// ReturnPath – if true, reconstruct the cheapest path into Result.Path/Steps.
// MaxEnergy  – successors whose accumulated energy exceeds this are not queued.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Validate   – check start and goal against Layout before searching.
// OnExpand   – called once for every configuration finalized by the search,
//
//	in non-decreasing energy order.
//
// OnPush     – called for every frontier insertion, duplicates included.
type Options struct {
	Layout     board.Layout
	Ctx        context.Context
	ReturnPath bool
	MaxEnergy  int64
	Validate   bool
	OnExpand   func(c board.Config, energy int64)
	OnPush     func(c board.Config, energy int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLayout sets the board geometry.
func WithLayout(layout board.Layout) Option {
	return func(o *Options) {
		o.Layout = layout
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables reconstruction of the cheapest path.
// If not set (default), Result.Path and Result.Steps stay nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxEnergy caps the energy of queued configurations.
// Negative values are recorded and surfaced as ErrOptionViolation.
func WithMaxEnergy(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxEnergy cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxEnergy = max
	}
}

// WithValidation toggles the upfront board.Validate of start and goal.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validate = on
	}
}

// WithOnExpand registers a callback run when a configuration is finalized.
func WithOnExpand(fn func(c board.Config, energy int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run on every frontier insertion.
func WithOnPush(fn func(c board.Config, energy int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Layout:     board.Standard().
//   - Ctx:        context.Background().
//   - ReturnPath: false.
//   - MaxEnergy:  math.MaxInt64 (no cap).
//   - Validate:   true.
//   - hooks:      no-ops.
func DefaultOptions() Options {
	return Options{
		Layout:     board.Standard(),
		Ctx:        context.Background(),
		ReturnPath: false,
		MaxEnergy:  math.MaxInt64,
		Validate:   true,
		OnExpand:   func(board.Config, int64) {},
		OnPush:     func(board.Config, int64) {},
	}
}

// Result holds the outcome of a successful Solve.
//
//   - Energy:   minimum total energy from start to goal.
//   - Expanded: configurations finalized (successors generated) before the goal was dequeued.
//   - Pushed:   frontier insertions, the start included.
//   - Path:     start … goal, only with WithReturnPath.
//   - Steps:    Steps[i] is the energy of the move Path[i] → Path[i+1].
type Result struct {
	Energy   int64
	Expanded int
	Pushed   int
	Path     []board.Config
	Steps    []int64
}
