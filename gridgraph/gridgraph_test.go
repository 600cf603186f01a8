package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive sizes.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
	}{
		{"Zero", 0},
		{"Negative", -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.n)
			if !errors.Is(err, gridgraph.ErrInvalidSize) {
				t.Errorf("NewGrid(%d) error = %v; want %v", tc.n, err, gridgraph.ErrInvalidSize)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 9, g.Cells())

	valid := []gridgraph.Cell{{0, 0}, {2, 2}, {1, 0}, {0, 2}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Cell{{-1, 0}, {3, 0}, {1, 3}, {2, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed left, right, up, down order.
func TestNeighbors_Order(t *testing.T) {
	g, _ := gridgraph.NewGrid(3)
	got := g.Neighbors(nil, gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{{1, 0}, {1, 2}, {0, 1}, {2, 1}}
	assert.Equal(t, want, got)
}

// TestNeighbors_Corners verifies that corner and edge cells never yield
// out-of-range coordinates.
func TestNeighbors_Corners(t *testing.T) {
	g, _ := gridgraph.NewGrid(3)
	cases := []struct {
		name string
		c    gridgraph.Cell
		want []gridgraph.Cell
	}{
		{"TopLeft", gridgraph.Cell{0, 0}, []gridgraph.Cell{{0, 1}, {1, 0}}},
		{"BottomRight", gridgraph.Cell{2, 2}, []gridgraph.Cell{{2, 1}, {1, 2}}},
		{"TopEdge", gridgraph.Cell{0, 1}, []gridgraph.Cell{{0, 0}, {0, 2}, {1, 1}}},
		{"LeftEdge", gridgraph.Cell{1, 0}, []gridgraph.Cell{{1, 1}, {0, 0}, {2, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Neighbors(nil, tc.c)
			assert.Equal(t, tc.want, got)
			for _, n := range got {
				assert.True(t, g.InBounds(n), "neighbour %v out of bounds", n)
			}
		})
	}
}

// TestNeighbors_SingleCell checks that a 1×1 board has no neighbours.
func TestNeighbors_SingleCell(t *testing.T) {
	g, _ := gridgraph.NewGrid(1)
	assert.Empty(t, g.Neighbors(nil, gridgraph.Cell{}))
}

// TestNeighbors_ReusesBuffer verifies that Neighbors appends into dst.
func TestNeighbors_ReusesBuffer(t *testing.T) {
	g, _ := gridgraph.NewGrid(4)
	buf := make([]gridgraph.Cell, 0, 4)
	out := g.Neighbors(buf[:0], gridgraph.Cell{Row: 2, Col: 2})
	assert.Len(t, out, 4)
	assert.Equal(t, cap(buf), cap(out))
}

//----------------------------------------------------------------------------//
// Index / Coordinate / Manhattan Tests
//----------------------------------------------------------------------------//

// TestIndexRoundTrip ensures Coordinate inverts Index for every cell.
func TestIndexRoundTrip(t *testing.T) {
	g, _ := gridgraph.NewGrid(5)
	for i := 0; i < g.Cells(); i++ {
		c := g.Coordinate(i)
		require.True(t, g.InBounds(c))
		require.Equal(t, i, g.Index(c))
	}
	assert.Equal(t, 7, g.Index(gridgraph.Cell{Row: 1, Col: 2}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, gridgraph.Manhattan(gridgraph.Cell{2, 2}, gridgraph.Cell{2, 2}))
	assert.Equal(t, 8, gridgraph.Manhattan(gridgraph.Cell{0, 0}, gridgraph.Cell{4, 4}))
	assert.Equal(t, 5, gridgraph.Manhattan(gridgraph.Cell{4, 1}, gridgraph.Cell{1, 3}))
	assert.True(t, gridgraph.Adjacent(gridgraph.Cell{1, 1}, gridgraph.Cell{1, 2}))
	assert.False(t, gridgraph.Adjacent(gridgraph.Cell{1, 1}, gridgraph.Cell{2, 2}))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "(3,7)", gridgraph.Cell{Row: 3, Col: 7}.String())
}
