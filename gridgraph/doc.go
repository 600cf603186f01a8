// Package gridgraph treats a fixed-size square grid of cells as an
// implicit 4-connected graph, the search space for the gridsearch engine.
//
// What:
//
//   - Grid describes an N×N board addressed by Cell{Row, Col}, 0-indexed.
//   - Neighbors yields orthogonal neighbours in a fixed order:
//     left (row, col-1), right (row, col+1), up (row-1, col), down (row+1, col).
//   - Index/Coordinate convert between cells and row-major indices so that
//     per-cell tables can live in flat slices.
//   - Manhattan is the heuristic shared by greedy best-first and A*.
//
// Why:
//
//   - Searches need a deterministic neighbour order: the visit sequence of
//     DFS and uniform-cost search is fully determined by it.
//   - Flat tables keep per-run allocation at O(N²) with no map overhead.
//
// Complexity:
//
//   - InBounds, Index, Coordinate, Manhattan: O(1).
//   - Neighbors: O(1) (at most four cells).
//
// Errors:
//
//   - ErrInvalidSize: grid side must be positive.
package gridgraph
