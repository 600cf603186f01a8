// Package shell is the presentation side of the pathfinding demo: it owns
// the picture of the board, turns pointer input into grid picks, launches
// the engine and paces its event stream into frames.
//
// The engine in package gridsearch never calls into this package. The shell
// only consumes gridsearch.Result events and the reconstructed path.
//
//   - Board      cell states (unvisited, explored, start, goal, path).
//   - Session    start/goal/algorithm picks, launch gating, path colouring.
//   - PointToCell, MenuHit  pixel → cell and pixel → menu button mapping.
//   - Play       drains a Result with a per-event delay, one frame per event.
//   - TerminalRenderer, PNGRenderer  draw a Board as ANSI text or a PNG image.
//
// Session refuses to launch until both picks are set and refuses new picks
// while a search is in flight, mirroring a window that ignores clicks until
// the current animation completes or is cancelled.
package shell
