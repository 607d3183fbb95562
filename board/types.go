// Package board defines the immutable Config value, the board geometry
// (Layout) and the sentinel errors shared by the board subpackage of
// github.com/katalvlaran/burrow.
package board

import (
	"errors"
	"fmt"
	"sort"
)

// Empty marks an unoccupied hallway or room cell.
const Empty byte = '.'

// Sentinel errors for board operations.
var (
	// ErrInvalidConfiguration indicates a Config that does not fit its Layout
	// (wrong hallway length, unknown kind, inconsistent room depths...).
	ErrInvalidConfiguration = errors.New("board: invalid configuration")

	// ErrInvalidLayout indicates an inconsistent board geometry.
	ErrInvalidLayout = errors.New("board: invalid layout")

	// ErrMalformedBoard indicates a textual board that cannot be read.
	ErrMalformedBoard = errors.New("board: malformed board text")
)

// RoomSpec places one room on the board.
//
// Kind     – the amphipod type the room is sorted for (e.g. 'A').
// Column   – hallway column directly above the room entrance.
// StepCost – energy spent by an amphipod of this Kind per step.
type RoomSpec struct {
	Kind     byte
	Column   int
	StepCost int64
}

// Layout is the fixed geometry of a board: the hallway length and the rooms
// hanging below it. Entrance columns are derived from the rooms and are
// transit-only for hallway stops.
//
// A Layout is a plain value; build it once and share it freely.
type Layout struct {
	HallwayLen int
	Rooms      []RoomSpec
}

// Standard returns the classic board: an 11-cell hallway with rooms A, B, C, D
// below columns 2, 4, 6, 8, each kind ten times costlier per step than the last.
func Standard() Layout {
	return Layout{
		HallwayLen: 11,
		Rooms: []RoomSpec{
			{Kind: 'A', Column: 2, StepCost: 1},
			{Kind: 'B', Column: 4, StepCost: 10},
			{Kind: 'C', Column: 6, StepCost: 100},
			{Kind: 'D', Column: 8, StepCost: 1000},
		},
	}
}

// room returns the spec for kind.
func (l Layout) room(kind byte) (RoomSpec, bool) {
	for _, r := range l.Rooms {
		if r.Kind == kind {
			return r, true
		}
	}

	return RoomSpec{}, false
}

// Column returns the entrance column of kind's room.
func (l Layout) Column(kind byte) (int, bool) {
	r, ok := l.room(kind)

	return r.Column, ok
}

// StepCost returns the per-step energy of kind.
func (l Layout) StepCost(kind byte) (int64, bool) {
	r, ok := l.room(kind)

	return r.StepCost, ok
}

// Blocked reports whether col is a room entrance (no stopping allowed).
func (l Layout) Blocked(col int) bool {
	for _, r := range l.Rooms {
		if r.Column == col {
			return true
		}
	}

	return false
}

// Kinds returns the room kinds in ascending order.
func (l Layout) Kinds() []byte {
	kinds := make([]byte, 0, len(l.Rooms))
	for _, r := range l.Rooms {
		kinds = append(kinds, r.Kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// Validate checks the geometry and returns ErrInvalidLayout wrapped with the
// first problem found.
func (l Layout) Validate() error {
	if l.HallwayLen < 1 {
		return fmt.Errorf("%w: hallway length %d", ErrInvalidLayout, l.HallwayLen)
	}
	if len(l.Rooms) == 0 {
		return fmt.Errorf("%w: no rooms", ErrInvalidLayout)
	}
	if len(l.Rooms) > MaxRooms {
		return fmt.Errorf("%w: %d rooms, at most %d", ErrInvalidLayout, len(l.Rooms), MaxRooms)
	}
	kinds := make(map[byte]bool, len(l.Rooms))
	cols := make(map[int]bool, len(l.Rooms))
	for _, r := range l.Rooms {
		switch {
		case r.Kind == Empty || r.Kind == 0:
			return fmt.Errorf("%w: room kind %q is reserved", ErrInvalidLayout, r.Kind)
		case kinds[r.Kind]:
			return fmt.Errorf("%w: duplicate room kind %q", ErrInvalidLayout, r.Kind)
		case cols[r.Column]:
			return fmt.Errorf("%w: duplicate room column %d", ErrInvalidLayout, r.Column)
		case r.Column < 0 || r.Column >= l.HallwayLen:
			return fmt.Errorf("%w: room %q column %d outside hallway [0,%d)", ErrInvalidLayout, r.Kind, r.Column, l.HallwayLen)
		case r.StepCost <= 0:
			return fmt.Errorf("%w: room %q step cost %d must be positive", ErrInvalidLayout, r.Kind, r.StepCost)
		}
		kinds[r.Kind] = true
		cols[r.Column] = true
	}

	return nil
}
