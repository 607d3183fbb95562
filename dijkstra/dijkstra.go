// Package dijkstra implements a uniform-cost (Dijkstra) search over board
// configurations.
//
// Solve processes configurations in order of increasing accumulated energy
// using a min-heap priority queue, relaxing every legal move and updating the
// best-known energy table accordingly.
//
// Notes on implementation choices:
//
//   - The graph is never materialized; successors come from moves.Generator on demand.
//   - The goal test happens when a configuration is dequeued, so the first goal
//     dequeued carries the minimum energy and the search stops right there.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     skipping entries whose energy exceeds the recorded best.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/moves"
)

// Solve returns the minimum energy needed to turn start into goal.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. The layout must be consistent (board.ErrInvalidLayout).
//  3. With validation on (default), start and goal must fit the layout
//     (board.ErrInvalidConfiguration).
//
// Outcomes:
//
//   - *Result, nil:        the goal was dequeued; Result.Energy is minimal.
//   - nil, ErrNoSolution:  the frontier emptied first.
//   - nil, ctx error:      the context was cancelled (wrapped).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Solve(start, goal board.Config, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate geometry, then the two endpoints
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.Validate {
		if err := board.Validate(cfg.Layout, start); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		if err := board.Validate(cfg.Layout, goal); err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
	}

	// 3) Prepare the runner and run the main loop.
	r := &runner{
		gen:     moves.New(cfg.Layout),
		options: cfg,
		goal:    goal,
		best:    make(map[board.Config]int64),
		pq:      make(nodePQ, 0, 64),
	}
	if cfg.ReturnPath {
		r.prev = make(map[board.Config]edge)
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	gen     *moves.Generator
	options Options
	goal    board.Config
	best    map[board.Config]int64 // configuration → lowest energy seen so far
	prev    map[board.Config]edge  // configuration → move that reached it at best energy
	pq      nodePQ

	expanded int
	pushed   int
}

// edge remembers how a configuration was reached.
type edge struct {
	from board.Config
	cost int64
}

// init seeds the table and the heap with start at energy 0.
func (r *runner) init(start board.Config) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(start, 0)
}

// process is the core loop. It repeatedly extracts the cheapest configuration
// and either returns (goal), skips it (stale) or relaxes its moves.
func (r *runner) process() (*Result, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dijkstra: search interrupted after %d expansions: %w", r.expanded, err)
		}

		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Goal reached: its energy is final and minimal.
		if item.config == r.goal {
			return r.result(item.config, item.energy), nil
		}

		// 3) Stale entry: a cheaper copy was already queued.
		if item.energy > r.best[item.config] {
			continue
		}

		// 4) Finalize and relax.
		r.expanded++
		r.options.OnExpand(item.config, item.energy)
		r.relax(item.config, item.energy)
	}

	return nil, ErrNoSolution
}

// relax pushes every successor of c whose energy improves on the table.
func (r *runner) relax(c board.Config, energy int64) {
	for _, m := range r.gen.Moves(c) {
		next := energy + m.Cost
		if next > r.options.MaxEnergy {
			continue
		}
		if old, ok := r.best[m.Next]; ok && next >= old {
			continue
		}
		r.best[m.Next] = next
		if r.prev != nil {
			r.prev[m.Next] = edge{from: c, cost: m.Cost}
		}
		r.push(m.Next, next)
	}
}

func (r *runner) push(c board.Config, energy int64) {
	r.pushed++
	r.options.OnPush(c, energy)
	heap.Push(&r.pq, &nodeItem{config: c, energy: energy})
}

// result assembles the Result, walking predecessors back to the start when a
// path was requested.
func (r *runner) result(goal board.Config, energy int64) *Result {
	res := &Result{Energy: energy, Expanded: r.expanded, Pushed: r.pushed}
	if r.prev == nil {
		return res
	}

	path := []board.Config{goal}
	steps := []int64{}
	for cur := goal; ; {
		e, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, e.from)
		steps = append(steps, e.cost)
		cur = e.from
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	res.Path, res.Steps = path, steps

	return res
}

// nodeItem is a configuration and the energy it was queued with.
type nodeItem struct {
	config board.Config
	energy int64
}

// nodePQ is a min-heap of *nodeItem ordered by energy. Ties are broken by heap
// position only; order among equal energies carries no meaning.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller energy → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].energy < pq[j].energy }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
