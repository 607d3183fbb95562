// Package moves generates the legal single-amphipod moves of a board.Config.
//
// Two move families exist and nothing else is legal:
//
//   - Room → hallway: the topmost amphipod of a room that still holds a
//     stranger walks out and stops on any empty, non-entrance hallway cell it
//     can reach. Scanning stops at the first occupied cell in each direction.
//     Rooms holding only their own kind (settled rooms) never emit moves.
//   - Hallway → room: a hallway amphipod walks straight into the deepest free
//     slot of its own room, if every cell up to the entrance is empty and the
//     room holds no other kind.
//
// Cost of a move is (horizontal distance + slot depth + 1) × step cost of the
// moving kind, with step costs taken from the board.Layout.
//
// Complexity: O(R·H + H·(H + D)) per call for R rooms, hallway length H and
// room depth D. Generation never fails; a configuration without legal moves
// simply yields an empty list.
package moves
