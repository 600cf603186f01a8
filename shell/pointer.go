package shell

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// WindowSize is the pixel side of the square board window.
const WindowSize = 800

// Button identifies the pointer button of a click.
type Button int

const (
	// LeftButton picks the start cell.
	LeftButton Button = iota
	// RightButton picks the goal cell.
	RightButton
)

// PointToCell maps a pixel inside an n×n board of cellSize-pixel cells to
// its cell: row = y / cellSize, col = x / cellSize.
// Returns ErrOutOfBoard for points outside the board.
func PointToCell(x, y, cellSize, n int) (gridgraph.Cell, error) {
	if cellSize <= 0 || x < 0 || y < 0 || x >= cellSize*n || y >= cellSize*n {
		return gridgraph.Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBoard, x, y)
	}

	return gridgraph.Cell{Row: y / cellSize, Col: x / cellSize}, nil
}

// CellSizeFor returns the pixel side of one cell when an n×n board fills
// a window of the given side. Boards wider than the window get 1-pixel cells.
func CellSizeFor(window, n int) int {
	if n <= 0 {
		return 0
	}

	return max(window/n, 1)
}

// Menu layout: four stacked buttons, one per algorithm.
const (
	menuX      = 300
	menuY      = 200
	menuW      = 200
	menuH      = 50
	menuStride = 100
)

// MenuLabel returns the button caption for alg.
func MenuLabel(alg gridsearch.Algorithm) string {
	switch alg {
	case gridsearch.Dijkstra:
		return "Dijkstra's"
	case gridsearch.DFS:
		return "DFS"
	case gridsearch.GreedyBestFirst:
		return "Greedy Best First"
	case gridsearch.AStar:
		return "A*"
	}

	return alg.String()
}

// MenuHit reports which algorithm button, if any, contains the pixel (x,y).
func MenuHit(x, y int) (gridsearch.Algorithm, bool) {
	for i, alg := range gridsearch.Algorithms() {
		top := menuY + i*menuStride
		if x >= menuX && x < menuX+menuW && y >= top && y < top+menuH {
			return alg, true
		}
	}

	return 0, false
}
