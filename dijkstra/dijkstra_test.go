// Package dijkstra_test contains unit tests for the configuration search.
// These tests validate option handling, the pinned puzzle scenarios, path
// reconstruction, energy caps, cancellation and the monotone expansion order.
package dijkstra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/moves"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

const hall = "..........."

// swapped is the depth-2 board with a single mismatched pair between rooms A and B.
func swapped() (board.Config, board.Config) {
	start := board.New(hall, map[byte]string{'A': "BA", 'B': "AB", 'C': "CC", 'D': "DD"})

	return start, board.Goal(start)
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSolve_NegativeMaxEnergy(t *testing.T) {
	start, goal := swapped()
	_, err := dijkstra.Solve(start, goal, dijkstra.WithMaxEnergy(-1))
	if !errors.Is(err, dijkstra.ErrOptionViolation) {
		t.Fatalf("Expected ErrOptionViolation, got %v", err)
	}
}

func TestSolve_InvalidLayout(t *testing.T) {
	start, goal := swapped()
	_, err := dijkstra.Solve(start, goal, dijkstra.WithLayout(board.Layout{HallwayLen: 11}))
	if !errors.Is(err, board.ErrInvalidLayout) {
		t.Fatalf("Expected ErrInvalidLayout, got %v", err)
	}
}

func TestSolve_InvalidConfiguration(t *testing.T) {
	_, goal := swapped()
	bad := board.New("...", map[byte]string{'A': "BA", 'B': "AB", 'C': "CC", 'D': "DD"})

	_, err := dijkstra.Solve(bad, goal)
	if !errors.Is(err, board.ErrInvalidConfiguration) {
		t.Fatalf("start: expected ErrInvalidConfiguration, got %v", err)
	}
	_, err = dijkstra.Solve(goal, bad)
	if !errors.Is(err, board.ErrInvalidConfiguration) {
		t.Fatalf("goal: expected ErrInvalidConfiguration, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Scenarios: pinned energies for known boards.
// ------------------------------------------------------------------------

func TestSolve_SwappedPair(t *testing.T) {
	start, goal := swapped()
	res, err := dijkstra.Solve(start, goal)
	if err != nil {
		t.Fatal(err)
	}
	// B out to cell 3 (20), A out to cell 5 (2), B into room B (20), A into room A (4).
	if res.Energy != 46 {
		t.Errorf("Energy = %d; want 46", res.Energy)
	}
	if res.Path != nil || res.Steps != nil {
		t.Errorf("expected no path without WithReturnPath, got %d configs", len(res.Path))
	}
}

func TestSolve_AlreadyAtGoal(t *testing.T) {
	_, goal := swapped()
	expanded := 0
	res, err := dijkstra.Solve(goal, goal, dijkstra.WithOnExpand(func(board.Config, int64) { expanded++ }))
	if err != nil {
		t.Fatal(err)
	}
	if res.Energy != 0 || res.Expanded != 0 || expanded != 0 {
		t.Errorf("got energy=%d expanded=%d hook=%d; want all 0", res.Energy, res.Expanded, expanded)
	}
}

func TestSolve_GoalWithDifferentRooms(t *testing.T) {
	start, _ := swapped()
	goal := board.New(hall, map[byte]string{'A': "AA", 'B': "BB", 'C': "CC"})

	res, err := dijkstra.Solve(start, goal)
	if !errors.Is(err, dijkstra.ErrNoSolution) {
		t.Fatalf("Expected ErrNoSolution, got %v (result %+v)", err, res)
	}
	if res != nil {
		t.Errorf("expected nil result alongside ErrNoSolution")
	}
}

func TestSolve_GoalWithDifferentCensus(t *testing.T) {
	start, _ := swapped()
	goal := board.New(hall, map[byte]string{'A': "AA", 'B': "AA", 'C': "CC", 'D': "DD"})

	if _, err := dijkstra.Solve(start, goal); !errors.Is(err, dijkstra.ErrNoSolution) {
		t.Fatalf("Expected ErrNoSolution, got %v", err)
	}
}

func TestSolve_Example(t *testing.T) {
	start, goal, err := board.Parse(example)
	if err != nil {
		t.Fatal(err)
	}
	res, err := dijkstra.Solve(start, goal)
	if err != nil {
		t.Fatal(err)
	}
	if res.Energy != 12521 {
		t.Errorf("Energy = %d; want 12521", res.Energy)
	}
}

func TestSolve_ExampleUnfolded(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-4 search skipped in -short mode")
	}
	start, _, err := board.Parse(example)
	if err != nil {
		t.Fatal(err)
	}
	deep, err := board.Unfold(start)
	if err != nil {
		t.Fatal(err)
	}
	res, err := dijkstra.Solve(deep, board.Goal(deep))
	if err != nil {
		t.Fatal(err)
	}
	if res.Energy != 44169 {
		t.Errorf("Energy = %d; want 44169", res.Energy)
	}
}

// ------------------------------------------------------------------------
// 3. Path reconstruction.
// ------------------------------------------------------------------------

func TestSolve_ReturnPath(t *testing.T) {
	start, goal, err := board.Parse(example)
	if err != nil {
		t.Fatal(err)
	}
	res, err := dijkstra.Solve(start, goal, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Path) < 2 || res.Path[0] != start || res.Path[len(res.Path)-1] != goal {
		t.Fatalf("path must run from start to goal, got %d configs", len(res.Path))
	}
	if len(res.Steps) != len(res.Path)-1 {
		t.Fatalf("len(Steps) = %d; want %d", len(res.Steps), len(res.Path)-1)
	}

	// every step is a legal move with the recorded energy, and they add up
	gen := moves.New(board.Standard())
	var total int64
	for i, cost := range res.Steps {
		found := false
		for _, m := range gen.Moves(res.Path[i]) {
			if m.Next == res.Path[i+1] && m.Cost == cost {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("step %d (%d energy) is not a legal move", i, cost)
		}
		total += cost
	}
	if total != res.Energy {
		t.Errorf("sum(Steps) = %d; want %d", total, res.Energy)
	}
}

// ------------------------------------------------------------------------
// 4. MaxEnergy, cancellation and hooks.
// ------------------------------------------------------------------------

func TestSolve_MaxEnergy(t *testing.T) {
	start, goal := swapped()

	if _, err := dijkstra.Solve(start, goal, dijkstra.WithMaxEnergy(45)); !errors.Is(err, dijkstra.ErrNoSolution) {
		t.Errorf("cap 45: expected ErrNoSolution, got %v", err)
	}
	res, err := dijkstra.Solve(start, goal, dijkstra.WithMaxEnergy(46))
	if err != nil {
		t.Fatal(err)
	}
	if res.Energy != 46 {
		t.Errorf("cap 46: Energy = %d; want 46", res.Energy)
	}
}

func TestSolve_Cancelled(t *testing.T) {
	start, goal := swapped()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.Solve(start, goal, dijkstra.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestSolve_ExpansionOrderIsMonotone(t *testing.T) {
	start, goal, err := board.Parse(example)
	if err != nil {
		t.Fatal(err)
	}

	var last int64 = -1
	seen := map[board.Config]bool{}
	pushes := 0
	res, err := dijkstra.Solve(start, goal,
		dijkstra.WithOnExpand(func(c board.Config, energy int64) {
			if energy < last {
				t.Errorf("expansion energy went down: %d after %d", energy, last)
			}
			if seen[c] {
				t.Errorf("configuration expanded twice:\n%s", c)
			}
			seen[c] = true
			last = energy
		}),
		dijkstra.WithOnPush(func(board.Config, int64) { pushes++ }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if res.Expanded != len(seen) {
		t.Errorf("Expanded = %d; hook saw %d", res.Expanded, len(seen))
	}
	if res.Pushed != pushes {
		t.Errorf("Pushed = %d; hook saw %d", res.Pushed, pushes)
	}
	if last > res.Energy {
		t.Errorf("expanded beyond the goal energy: %d > %d", last, res.Energy)
	}
}

func TestSolve_WithoutValidation(t *testing.T) {
	// a shorter hallway is fine for the search itself when validation is off
	layout := board.Layout{
		HallwayLen: 5,
		Rooms: []board.RoomSpec{
			{Kind: 'A', Column: 1, StepCost: 1},
			{Kind: 'B', Column: 3, StepCost: 10},
		},
	}
	start := board.New(".....", map[byte]string{'A': "B", 'B': "A"})
	res, err := dijkstra.Solve(start, board.Goal(start), dijkstra.WithLayout(layout), dijkstra.WithValidation(false))
	if err != nil {
		t.Fatal(err)
	}
	// A out to cell 4 (2), B out to cell 2 (20), B home (20), A home (4).
	if res.Energy != 46 {
		t.Errorf("Energy = %d; want 46", res.Energy)
	}
}
