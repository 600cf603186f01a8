// Package gridpath is a playground for watching grid searches think: pick a
// start and a goal on a square board, choose a strategy, and see every cell
// it discovers, one event at a time, until the path lights up.
//
// 🚀 What is gridpath?
//
//	A small, pull-driven search engine plus the pieces to show it off:
//		• Geometry: square boards, fixed-order 4-neighbourhoods, Manhattan distance
//		• Search: Dijkstra, depth-first, greedy best-first and A* behind one engine
//		• Events: a lazy, cancellable stream of discoveries (Next, Events, Drain)
//		• Presentation: board colouring, click and menu mapping, paced playback
//		• Output: ANSI terminal frames and PNG snapshots
//
// ✨ Why gridpath?
//
//   - Exact: each strategy keeps its classic quirks (DFS revisits, A*
//     without a closed set) so the animation shows what really happens
//   - Lazy: no work is done until the consumer asks for the next event
//   - Cancellable: stop a run from any goroutine via context
//   - Decoupled: the engine never imports the presentation layer
//
// Packages:
//
//	gridgraph/     Cell, Grid, neighbour order, row-major indexing, Manhattan
//	gridsearch/    Engine, Algorithm, Result, Event, path reconstruction
//	shell/         Board, Session, Play, TerminalRenderer, PNGRenderer
//	config/        HCL settings file with defaults and validation
//	cmd/gridpath/  command-line runner
//
// Quick ASCII example (3×3, Dijkstra, plain glyphs):
//
//	S**
//	++*
//	++*
//
//	go run github.com/katalvlaran/gridpath/cmd/gridpath -size 3 -plain -delay 0
package gridpath
