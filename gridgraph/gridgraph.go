package gridgraph

import "fmt"

// DefaultSize is the side length of the demonstration board.
const DefaultSize = 20

// Cell addresses one grid position.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// offsets4 is the fixed expansion order: left, right, up, down.
var offsets4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is an immutable N×N board.
type Grid struct {
	size int
}

// NewGrid constructs a Grid of side n.
// Returns ErrInvalidSize if n <= 0.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	return &Grid{size: n}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// Cells returns N², the number of cells on the board.
func (g *Grid) Cells() int { return g.size * g.size }

// InBounds reports whether c lies within [0,N)×[0,N).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Neighbors appends the in-bounds orthogonal neighbours of c to dst in
// the order left, right, up, down and returns the extended slice.
// Passing a reusable dst[:0] avoids an allocation per expansion.
func (g *Grid) Neighbors(dst []Cell, c Cell) []Cell {
	for _, d := range offsets4 {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.InBounds(n) {
			continue
		}
		dst = append(dst, n)
	}

	return dst
}

// Index maps c to a row-major index: Row*N + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.size + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.size, Col: idx % g.size}
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b differ by exactly one orthogonal step.
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
