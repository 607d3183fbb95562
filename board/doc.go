// Package board models the amphipod burrow: a hallway with rooms hanging below
// it, and the immutable Config value describing who stands where.
//
// What:
//
//   - Config is a comparable value (hallway cells plus kind→room cells) that
//     works as a map key; equal arrangements are == and share a Key().
//   - Layout is the fixed geometry: hallway length, room columns and the
//     per-step energy of every kind. Room columns are entrance columns, where
//     amphipods may pass but never stop.
//   - Parse reads the classic textual board and derives the sorted goal.
//   - Validate rejects configurations that do not fit a Layout.
//
// Why:
//
//   - Search code needs a cheap, hashable state; Config derivations (Exit,
//     Enter) copy the value and change exactly two cells.
//   - Keeping geometry as data (Layout) makes board topology testable input
//     instead of hidden control flow.
//
// Errors:
//
//   - ErrInvalidConfiguration: Config does not fit the Layout.
//   - ErrInvalidLayout:        inconsistent geometry.
//   - ErrMalformedBoard:       unreadable board text.
package board
