// Package printer renders solve reports on a terminal.
package printer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/service"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)
)

// kindColors tints amphipods in board drawings.
var kindColors = map[byte]*color.Color{
	'A': color.New(color.FgHiYellow),
	'B': color.New(color.FgHiGreen),
	'C': color.New(color.FgHiCyan),
	'D': color.New(color.FgHiMagenta),
}

// Report writes the minimum energy, then the move sequence when present.
func Report(w io.Writer, rep *service.Report) {
	if len(rep.Path) > 0 {
		for i, c := range rep.Path {
			if i == 0 {
				cyan.Fprintln(w, "start")
			} else {
				cyan.Fprintf(w, "move %d: %d energy\n", i, rep.Steps[i-1])
			}
			fmt.Fprintln(w, Board(c))
			fmt.Fprintln(w)
		}
	}

	green.Fprintf(w, "✓ minimum energy: %d\n", rep.Energy)
	if rep.Cached {
		faint.Fprintln(w, "  (from cache)")
		return
	}
	faint.Fprintf(w, "  %d states expanded, %d queued, %s\n", rep.Expanded, rep.Pushed, rep.Took.Round(time.Microsecond))
}

// Board draws c with colored amphipods.
func Board(c board.Config) string {
	var sb strings.Builder
	for _, r := range c.String() {
		if r < 0x80 {
			if col, ok := kindColors[byte(r)]; ok {
				sb.WriteString(col.Sprint(string(r)))
				continue
			}
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// NoSolution explains an unreachable goal.
func NoSolution(w io.Writer) {
	yellow.Fprintln(w, "⚠️  no sequence of moves sorts this board")
}

// Error prints a titled error with an optional hint and returns a plain error
// carrying the title.
func Error(w io.Writer, title string, err error, hint string) error {
	red.Fprintf(w, "%s\n\n", title)
	fmt.Fprintf(w, "%v\n", err)
	if hint != "" {
		fmt.Fprintf(w, "\n%s\n", hint)
	}

	return fmt.Errorf("%s: %w", title, err)
}
