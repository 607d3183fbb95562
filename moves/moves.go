package moves

import "github.com/katalvlaran/burrow/board"

// Move is one legal single-amphipod move: the Config it leads to and the
// energy it costs.
type Move struct {
	Next board.Config
	Cost int64
}

// Generator enumerates legal moves on a fixed Layout. It holds no state beyond
// the layout, so one Generator may be shared by any number of searches.
type Generator struct {
	layout board.Layout
}

// New returns a Generator for layout. The layout is trusted; callers that
// accept user geometry should run layout.Validate first.
func New(layout board.Layout) *Generator {
	return &Generator{layout: layout}
}

// Layout returns the geometry the Generator was built with.
func (g *Generator) Layout() board.Layout { return g.layout }

// Moves returns every legal move from c: all room→hallway moves (rooms in
// kind order) followed by all hallway→room moves (hallway left to right).
// The list is recomputed on each call.
func (g *Generator) Moves(c board.Config) []Move {
	out := g.FromRooms(c, nil)

	return g.IntoRooms(c, out)
}

// FromRooms appends to dst every move taking the topmost amphipod of an
// unsettled room to a reachable, non-entrance hallway cell.
func (g *Generator) FromRooms(c board.Config, dst []Move) []Move {
	hall := c.Hallway()
	for _, kind := range c.Kinds() {
		room, _ := c.Room(kind)
		if settled(room, kind) {
			continue
		}
		col, ok := g.layout.Column(kind)
		if !ok {
			continue
		}

		// only the shallowest occupant can leave
		depth := topmost(room)
		amphipod := room[depth]
		step, ok := g.layout.StepCost(amphipod)
		if !ok {
			continue
		}

		emit := func(pos int) {
			dist := int64(abs(pos-col) + depth + 1)
			dst = append(dst, Move{Next: c.Exit(kind, depth, pos), Cost: dist * step})
		}
		for pos := col - 1; pos >= 0 && hall[pos] == board.Empty; pos-- {
			if !g.layout.Blocked(pos) {
				emit(pos)
			}
		}
		for pos := col + 1; pos < len(hall) && hall[pos] == board.Empty; pos++ {
			if !g.layout.Blocked(pos) {
				emit(pos)
			}
		}
	}

	return dst
}

// IntoRooms appends to dst every move taking a hallway amphipod straight into
// its own room, provided the path is clear and the room holds no stranger.
// The amphipod goes to the deepest free slot.
func (g *Generator) IntoRooms(c board.Config, dst []Move) []Move {
	hall := c.Hallway()
	for pos := 0; pos < len(hall); pos++ {
		ch := hall[pos]
		if ch == board.Empty {
			continue
		}
		target, ok := g.layout.Column(ch)
		if !ok {
			continue
		}
		room, ok := c.Room(ch)
		if !ok {
			continue
		}
		if !pathClear(hall, pos, target) || !settled(room, ch) {
			continue
		}
		depth := deepestFree(room)
		if depth < 0 {
			continue
		}
		step, _ := g.layout.StepCost(ch)
		dist := int64(abs(pos-target) + depth + 1)
		dst = append(dst, Move{Next: c.Enter(pos, ch, depth), Cost: dist * step})
	}

	return dst
}

// pathClear reports whether every hallway cell from pos (exclusive) to target
// (inclusive) is empty.
func pathClear(hall string, pos, target int) bool {
	step := 1
	if target < pos {
		step = -1
	}
	for i := pos; i != target; {
		i += step
		if hall[i] != board.Empty {
			return false
		}
	}

	return true
}

// settled reports whether room holds nothing but kind and empty cells.
func settled(room string, kind byte) bool {
	for i := 0; i < len(room); i++ {
		if room[i] != board.Empty && room[i] != kind {
			return false
		}
	}

	return true
}

func topmost(room string) int {
	for i := 0; i < len(room); i++ {
		if room[i] != board.Empty {
			return i
		}
	}

	return -1
}

func deepestFree(room string) int {
	for i := len(room) - 1; i >= 0; i-- {
		if room[i] == board.Empty {
			return i
		}
	}

	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
