// Package burrow computes the least energy needed to sort amphipods into
// their rooms.
//
// 🚀 What is burrow?
//
//	A small solver stack for the amphipod burrow puzzle:
//		• Board model: immutable, comparable configurations and their geometry
//		• Move generation: every legal room-to-hallway and hallway-to-room move
//		• Shortest path: uniform-cost (Dijkstra) search over configurations
//		• Serving: a cached solve service, an HTTP API and a CLI
//
// ✨ Why burrow?
//
//   - Exact answers: Dijkstra over an implicit graph, no heuristics
//   - Geometry as data: hallway length, room columns and step costs live in a Layout
//   - Hooks: OnExpand and OnPush feed metrics and progress logging
//
// Packages:
//
//	board/       Config, Layout, Parse, Goal, Unfold
//	moves/       the move generator
//	dijkstra/    Solve with functional options
//	config/      burrow.yaml loading
//	cache/       in-memory and Redis result caches
//	metrics/     Prometheus collectors wired to the search hooks
//	service/     parse, cache, solve and report in one call
//	api/         HTTP handlers (POST /solve, /healthz, /metrics)
//	cmd/burrow/  the command line
//
// Quick ASCII example:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
//	takes 12521 energy to sort; unfolded to depth 4 it takes 44169.
//
//	go install github.com/katalvlaran/burrow/cmd/burrow@latest
package burrow
