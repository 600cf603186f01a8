// Package gridsearch runs one of four classic search strategies over a
// 4-connected square grid and exposes the exploration as a lazy, pull-driven
// stream of "cell visited" events, followed by path reconstruction.
//
// What:
//
//   - Engine holds the board size and the start/goal picks (Configure) and
//     launches exactly one search per Run call.
//   - Result is the running search: Next pulls one event at a time, Events
//     ranges over the rest, Drain consumes everything eagerly.
//   - After the goal is reached, Path (or Engine.ReconstructPath) follows the
//     predecessor table from goal back to start.
//
// Algorithms:
//
//	| Algorithm       | Frontier   | Settled         | Visited filter | Key          |
//	|-----------------|------------|-----------------|----------------|--------------|
//	| Dijkstra        | FIFO queue | on pop          | yes            | g            |
//	| DFS             | LIFO stack | on pop          | yes            | none         |
//	| GreedyBestFirst | min-heap   | on pop          | yes            | h            |
//	| AStar           | min-heap   | never           | no             | f = g + h    |
//
//	Neighbours are always generated in the order left, right, up, down.
//	h is the Manhattan distance to the goal; every move costs 1.
//
// Exactness:
//
//	Each variant reproduces a specific exploration order, quirks included:
//
//	  - Dijkstra is a relaxation-gated FIFO walk: a neighbour is enqueued only
//	    when its tentative distance strictly improves. On a unit-cost grid this
//	    settles cells in non-decreasing distance.
//	  - DFS marks a cell visited when it is popped, not when it is pushed, so
//	    the same cell may sit on the stack several times and be expanded more
//	    than once. The predecessor is overwritten on every push.
//	  - AStar keeps no visited set. Any neighbour whose g improves is re-pushed,
//	    stale heap entries are expanded again using the current g. This is not
//	    textbook A*; it still terminates because g values only decrease a
//	    bounded number of times.
//	  - GreedyBestFirst and AStar break priority ties in whatever order the
//	    heap yields them. Do not depend on the order of equal keys.
//
// Events:
//
//	Every successful discovery or relaxation emits one Event before the next
//	frontier pop. The start cell is never emitted. The stream is finite and
//	cannot be restarted; run the engine again for a fresh one.
//
// Cancellation:
//
//	Engine.Cancel, Result.Cancel and the context passed to Run all end the
//	stream early. The result then reports StatusCancelled and has no path.
//	Cancel may be called from another goroutine; Next, Drain and Path belong
//	to the consumer.
//
// Errors:
//
//   - ErrInvalidConfiguration  size <= 0, start/goal out of bounds, start == goal.
//   - ErrNotConfigured         Run before Configure.
//   - ErrUnknownAlgorithm      Algorithm outside the closed enumeration.
//   - ErrNoPathAvailable       path requested before the goal was reached.
//
// Complexity (N = board side):
//
//   - Dijkstra: O(N²) time and memory (FIFO frontier).
//   - GreedyBestFirst: O(N² log N²) time, O(N²) memory.
//   - DFS: O(N²) pushes per expansion wave; duplicates bound the stack by O(4·N²).
//   - AStar: O(N² log N²) on an open board.
package gridsearch
