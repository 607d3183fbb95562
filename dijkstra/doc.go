// Package dijkstra finds the minimum total energy needed to sort the amphipods
// of a start configuration into a goal configuration.
//
// Overview:
//
//   - The search space is implicit: every board.Config reachable from the start
//     by legal moves (see package moves) is a vertex, every move an edge
//     weighted by its energy. All weights are strictly positive.
//   - Solve runs a uniform-cost search with a binary min-heap and a best-energy
//     table keyed by board.Config. There is no decrease-key: improved
//     configurations are pushed again and stale heap entries are skipped when
//     popped.
//   - The search ends the first time the goal is dequeued. If the frontier
//     empties first, Solve returns ErrNoSolution instead of a sentinel number.
//
// When to use:
//
//   - Exact minimum energy for a board, never an approximation.
//   - Optional path reconstruction for replaying or rendering the solution.
//
// Key features:
//
//   - Functional options (WithLayout, WithContext, WithReturnPath,
//     WithMaxEnergy, WithValidation, WithOnExpand, WithOnPush).
//   - OnExpand observes configurations in non-decreasing energy order, which
//     makes it a natural hook for metrics and progress logging.
//
// Error handling (sentinel errors):
//
//   - ErrNoSolution:      the goal cannot be reached (e.g. its rooms differ from the start's).
//   - ErrOptionViolation: an option was given an invalid value (negative MaxEnergy).
//   - board.ErrInvalidLayout / board.ErrInvalidConfiguration: geometry or endpoints
//     rejected before any search takes place.
//
// API reference:
//
//	func Solve(start, goal board.Config, opts ...Option) (*Result, error)
//
// Thread safety:
//
//   - Each Solve call owns its frontier and table; concurrent calls on
//     different or identical configurations are independent.
//   - Hooks run on the calling goroutine.
package dijkstra
