package board

import (
	"fmt"
	"sort"
	"strings"
)

// MaxRooms bounds the number of rooms a Config can hold.
const MaxRooms = 8

// Config is one arrangement of amphipods across the hallway and the rooms.
//
// Config is an immutable, comparable value: rooms are kept sorted by kind, so
// two configurations with the same hallway and the same room contents are
// equal under == regardless of the order the rooms were supplied in. It can be
// used directly as a map key.
//
// Room cell 0 is the entrance slot; the last cell is the deepest slot.
type Config struct {
	hallway string
	n       int
	kinds   [MaxRooms]byte
	rooms   [MaxRooms]string
}

// New builds a Config from a hallway and a kind→room mapping. It does not
// validate anything; see Validate. New panics if more than MaxRooms rooms are
// supplied.
func New(hallway string, rooms map[byte]string) Config {
	if len(rooms) > MaxRooms {
		panic(fmt.Sprintf("board: %d rooms exceed MaxRooms=%d", len(rooms), MaxRooms))
	}
	kinds := make([]byte, 0, len(rooms))
	for k := range rooms {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	c := Config{hallway: hallway, n: len(kinds)}
	for i, k := range kinds {
		c.kinds[i] = k
		c.rooms[i] = rooms[k]
	}

	return c
}

// Hallway returns the hallway cells, left to right.
func (c Config) Hallway() string { return c.hallway }

// Cell returns the hallway cell at pos.
func (c Config) Cell(pos int) byte { return c.hallway[pos] }

// Kinds returns the room kinds in ascending order.
func (c Config) Kinds() []byte {
	out := make([]byte, c.n)
	copy(out, c.kinds[:c.n])

	return out
}

// Room returns the cells of kind's room, entrance first.
func (c Config) Room(kind byte) (string, bool) {
	i := c.index(kind)
	if i < 0 {
		return "", false
	}

	return c.rooms[i], true
}

// Rooms returns a fresh kind→room mapping.
func (c Config) Rooms() map[byte]string {
	out := make(map[byte]string, c.n)
	for i := 0; i < c.n; i++ {
		out[c.kinds[i]] = c.rooms[i]
	}

	return out
}

// Depth returns the depth of the first room, or 0 when there are no rooms.
func (c Config) Depth() int {
	if c.n == 0 {
		return 0
	}

	return len(c.rooms[0])
}

// Equal reports structural equality. It is identical to ==.
func (c Config) Equal(other Config) bool { return c == other }

// Key returns the canonical encoding "hallway|A=..|B=..", stable across
// processes. Equal configurations always share a Key.
func (c Config) Key() string {
	var sb strings.Builder
	sb.WriteString(c.hallway)
	for i := 0; i < c.n; i++ {
		sb.WriteByte('|')
		sb.WriteByte(c.kinds[i])
		sb.WriteByte('=')
		sb.WriteString(c.rooms[i])
	}

	return sb.String()
}

// Exit derives the Config in which the amphipod at slot depth of kind's room
// has stepped out to hallway cell pos.
func (c Config) Exit(kind byte, depth, pos int) Config {
	i := c.index(kind)
	room := []byte(c.rooms[i])
	hall := []byte(c.hallway)
	hall[pos] = room[depth]
	room[depth] = Empty

	next := c
	next.hallway = string(hall)
	next.rooms[i] = string(room)

	return next
}

// Enter derives the Config in which the amphipod at hallway cell pos has moved
// into slot depth of kind's room.
func (c Config) Enter(pos int, kind byte, depth int) Config {
	i := c.index(kind)
	room := []byte(c.rooms[i])
	hall := []byte(c.hallway)
	room[depth] = hall[pos]
	hall[pos] = Empty

	next := c
	next.hallway = string(hall)
	next.rooms[i] = string(room)

	return next
}

// Census counts amphipods of each kind across the hallway and the rooms.
func (c Config) Census() map[byte]int {
	out := make(map[byte]int)
	count := func(s string) {
		for i := 0; i < len(s); i++ {
			if s[i] != Empty {
				out[s[i]]++
			}
		}
	}
	count(c.hallway)
	for i := 0; i < c.n; i++ {
		count(c.rooms[i])
	}

	return out
}

// String draws the Config the way puzzle inputs are written, with room i
// under hallway column 2+2i.
func (c Config) String() string {
	width := len(c.hallway) + 2
	if minWidth := 2*c.n + 3; width < minWidth {
		width = minWidth
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", width))
	sb.WriteString("\n#")
	sb.WriteString(c.hallway)
	sb.WriteString("#\n")
	for d := 0; d < c.Depth(); d++ {
		row := []byte(strings.Repeat(" ", width))
		if d == 0 {
			row = []byte(strings.Repeat("#", width))
		}
		for i := 0; i < c.n; i++ {
			col := 3 + 2*i
			row[col-1] = '#'
			if d < len(c.rooms[i]) {
				row[col] = c.rooms[i][d]
			}
			row[col+1] = '#'
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	if c.n > 0 {
		sb.WriteString("  ")
		sb.WriteString(strings.Repeat("#", 2*c.n+1))
	}

	return sb.String()
}

func (c Config) index(kind byte) int {
	for i := 0; i < c.n; i++ {
		if c.kinds[i] == kind {
			return i
		}
	}

	return -1
}
