package board

import (
	"fmt"
	"strings"
)

// Parse reads a board drawn in the classic layout
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// against the Standard layout and returns the start Config together with the
// sorted goal derived from it (see Goal).
func Parse(text string) (start, goal Config, err error) {
	return ParseLayout(Standard(), text)
}

// ParseLayout is Parse for an arbitrary layout. The second line holds the
// hallway between its walls; every following line whose room columns hold
// amphipods or Empty cells is one room row, entrance row first. A room under
// hallway column c is read from text column c+1.
func ParseLayout(layout Layout, text string) (start, goal Config, err error) {
	if err = layout.Validate(); err != nil {
		return Config{}, Config{}, err
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) < 3 {
		return Config{}, Config{}, fmt.Errorf("%w: need at least 3 lines, got %d", ErrMalformedBoard, len(lines))
	}

	hallway := strings.Trim(strings.TrimSpace(lines[1]), "#")
	rooms := make(map[byte][]byte, len(layout.Rooms))
	for _, line := range lines[2:] {
		row, ok := readRow(layout, line)
		if !ok {
			break
		}
		for i, r := range layout.Rooms {
			rooms[r.Kind] = append(rooms[r.Kind], row[i])
		}
	}
	if len(rooms) == 0 {
		return Config{}, Config{}, fmt.Errorf("%w: no room rows below the hallway", ErrMalformedBoard)
	}

	cells := make(map[byte]string, len(rooms))
	for k, v := range rooms {
		cells[k] = string(v)
	}
	start = New(hallway, cells)
	if err = Validate(layout, start); err != nil {
		return Config{}, Config{}, err
	}

	return start, Goal(start), nil
}

// readRow extracts one cell per room from line, in layout order. It reports
// false for the closing wall or any line that is not a room row.
func readRow(layout Layout, line string) ([]byte, bool) {
	row := make([]byte, 0, len(layout.Rooms))
	for _, r := range layout.Rooms {
		col := r.Column + 1
		if col >= len(line) {
			return nil, false
		}
		ch := line[col]
		if ch == '#' || ch == ' ' {
			return nil, false
		}
		row = append(row, ch)
	}

	return row, true
}

// Goal returns the sorted arrangement for c: an empty hallway of the same
// length and every room filled with its own kind.
func Goal(c Config) Config {
	rooms := make(map[byte]string, c.n)
	for i := 0; i < c.n; i++ {
		rooms[c.kinds[i]] = strings.Repeat(string(c.kinds[i]), len(c.rooms[i]))
	}

	return New(strings.Repeat(string(Empty), len(c.hallway)), rooms)
}

// unfoldRows are inserted between the entrance row and the deepest row by
// Unfold, one cell per room in kind order.
var unfoldRows = [2]string{"DCBA", "DBAC"}

// Unfold turns a depth-2 board of four rooms into the depth-4 board obtained
// by inserting the rows
//
//	#D#C#B#A#
//	#D#B#A#C#
//
// below the entrance row.
func Unfold(c Config) (Config, error) {
	if c.n != len(unfoldRows[0]) {
		return Config{}, fmt.Errorf("%w: unfold needs %d rooms, got %d", ErrInvalidConfiguration, len(unfoldRows[0]), c.n)
	}
	rooms := make(map[byte]string, c.n)
	for i := 0; i < c.n; i++ {
		room := c.rooms[i]
		if len(room) != 2 {
			return Config{}, fmt.Errorf("%w: unfold needs depth 2, room %q has %d", ErrInvalidConfiguration, c.kinds[i], len(room))
		}
		rooms[c.kinds[i]] = string([]byte{room[0], unfoldRows[0][i], unfoldRows[1][i], room[1]})
	}

	return New(c.hallway, rooms), nil
}
