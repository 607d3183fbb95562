// Package dijkstra_test provides examples demonstrating how to use Solve.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/dijkstra"
)

// ExampleSolve parses the classic board and computes its minimum energy.
func ExampleSolve() {
	// 1) Parse the board; the goal is derived from the start.
	start, goal, err := board.Parse(`#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search with default options (standard layout, validation on).
	res, err := dijkstra.Solve(start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("energy:", res.Energy)
	// Output: energy: 12521
}

// ExampleSolve_path replays the cheapest sequence of moves for a single
// swapped pair.
func ExampleSolve_path() {
	start := board.New("...........", map[byte]string{'A': "BA", 'B': "AB", 'C': "CC", 'D': "DD"})

	res, err := dijkstra.Solve(start, board.Goal(start), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The hallway after each of the four moves.
	for i, step := range res.Steps {
		fmt.Printf("%s %4d\n", res.Path[i+1].Hallway(), step)
	}
	fmt.Println("total:", res.Energy)
}

// ExampleSolve_noSolution shows that an unreachable goal is an error, not a number.
func ExampleSolve_noSolution() {
	start := board.New("...........", map[byte]string{'A': "BA", 'B': "AB", 'C': "CC", 'D': "DD"})
	goal := board.New("...........", map[byte]string{'A': "AA", 'B': "BB", 'C': "CC"})

	_, err := dijkstra.Solve(start, goal)
	fmt.Println(errors.Is(err, dijkstra.ErrNoSolution))
	// Output: true
}
