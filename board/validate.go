package board

import "fmt"

// Validate checks c against layout and returns ErrInvalidConfiguration wrapped
// with the first problem found:
//
//   - the hallway length differs from layout.HallwayLen;
//   - c has no rooms, or a room kind the layout does not place;
//   - rooms have zero or differing depths;
//   - a cell holds something other than Empty or a layout kind.
//
// Per-kind counts are deliberately not compared between configurations: a goal
// that cannot be reached from a start is a search outcome, not a shape error.
func Validate(layout Layout, c Config) error {
	if len(c.hallway) != layout.HallwayLen {
		return fmt.Errorf("%w: hallway has %d cells, layout expects %d",
			ErrInvalidConfiguration, len(c.hallway), layout.HallwayLen)
	}
	if c.n == 0 {
		return fmt.Errorf("%w: no rooms", ErrInvalidConfiguration)
	}
	if err := checkCells(layout, "hallway", c.hallway); err != nil {
		return err
	}

	depth := len(c.rooms[0])
	for i := 0; i < c.n; i++ {
		kind, room := c.kinds[i], c.rooms[i]
		if _, ok := layout.room(kind); !ok {
			return fmt.Errorf("%w: room %q is not part of the layout", ErrInvalidConfiguration, kind)
		}
		if len(room) == 0 {
			return fmt.Errorf("%w: room %q is empty", ErrInvalidConfiguration, kind)
		}
		if len(room) != depth {
			return fmt.Errorf("%w: room %q has depth %d, want %d",
				ErrInvalidConfiguration, kind, len(room), depth)
		}
		if err := checkCells(layout, fmt.Sprintf("room %q", kind), room); err != nil {
			return err
		}
	}

	return nil
}

func checkCells(layout Layout, where, cells string) error {
	for i := 0; i < len(cells); i++ {
		if cells[i] == Empty {
			continue
		}
		if _, ok := layout.room(cells[i]); !ok {
			return fmt.Errorf("%w: %s cell %d holds unknown kind %q",
				ErrInvalidConfiguration, where, i, cells[i])
		}
	}

	return nil
}
