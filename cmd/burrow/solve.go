package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/internal/printer"
	"github.com/katalvlaran/burrow/service"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print the minimum energy for a burrow drawing",
	Long: `Reads a burrow drawing from file (or stdin when file is "-" or missing)
and prints the minimum total energy needed to sort it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().Bool("unfold", false, "Insert the two extra room rows before solving")
	solveCmd.Flags().Bool("path", false, "Print every intermediate board of the cheapest solution")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	deps, err := setup(cmd)
	if err != nil {
		return err
	}
	defer deps.close()

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	unfold, _ := cmd.Flags().GetBool("unfold")
	path, _ := cmd.Flags().GetBool("path")
	rep, err := deps.svc.Solve(cmd.Context(), service.Request{
		Board:  text,
		Unfold: unfold,
		Path:   path || deps.cfg.Solver.ReturnPath,
	})

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	switch {
	case errors.Is(err, dijkstra.ErrNoSolution):
		printer.NoSolution(errOut)
		return err
	case errors.Is(err, board.ErrMalformedBoard), errors.Is(err, board.ErrInvalidConfiguration):
		return printer.Error(errOut, "cannot read the burrow", err, "Expected a drawing like:\n\n"+exampleBoard)
	case err != nil:
		return err
	}

	printer.Report(out, rep)

	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read board: %w", err)
	}

	return string(data), nil
}

const exampleBoard = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`
