package shell

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// CellState is the presentation colouring of one cell.
type CellState uint8

const (
	Unvisited CellState = iota
	Explored
	Start
	Goal
	Path
)

// glyph is the plain-text symbol used by TerminalRenderer in plain mode.
func (s CellState) glyph() byte {
	switch s {
	case Explored:
		return '+'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Path:
		return '*'
	}

	return '.'
}

// Board is the N×N picture the renderers draw.
type Board struct {
	grid   *gridgraph.Grid
	states []CellState
	start  *gridgraph.Cell
	goal   *gridgraph.Cell
}

// NewBoard returns an all-unvisited board of side n.
func NewBoard(n int) (*Board, error) {
	grid, err := gridgraph.NewGrid(n)
	if err != nil {
		return nil, err
	}

	return &Board{grid: grid, states: make([]CellState, grid.Cells())}, nil
}

// Size returns the board side.
func (b *Board) Size() int { return b.grid.Size() }

// State returns the colouring of c; out-of-range cells read as Unvisited.
func (b *Board) State(c gridgraph.Cell) CellState {
	if !b.grid.InBounds(c) {
		return Unvisited
	}

	return b.states[b.grid.Index(c)]
}

// SetStart moves the start marker to c, clearing the previous one.
// Picking the goal's cell removes the goal marker.
func (b *Board) SetStart(c gridgraph.Cell) {
	if b.goal != nil && *b.goal == c {
		b.goal = nil
	}
	b.start = b.mark(b.start, c, Start)
}

// SetGoal moves the goal marker to c, clearing the previous one.
// Picking the start's cell removes the start marker.
func (b *Board) SetGoal(c gridgraph.Cell) {
	if b.start != nil && *b.start == c {
		b.start = nil
	}
	b.goal = b.mark(b.goal, c, Goal)
}

func (b *Board) mark(prev *gridgraph.Cell, c gridgraph.Cell, st CellState) *gridgraph.Cell {
	if prev != nil && b.states[b.grid.Index(*prev)] == st {
		b.states[b.grid.Index(*prev)] = Unvisited
	}
	b.states[b.grid.Index(c)] = st

	return &c
}

// Apply colours the cell of a visited event. Start and goal markers stay
// visible while the search animates.
func (b *Board) Apply(ev gridsearch.Event) {
	if !b.grid.InBounds(ev.Cell) {
		return
	}
	i := b.grid.Index(ev.Cell)
	switch b.states[i] {
	case Start, Goal:
		return
	}
	b.states[i] = Explored
}

// MarkPath colours every path cell except the start, goal included.
func (b *Board) MarkPath(path []gridgraph.Cell) {
	for _, c := range path {
		if !b.grid.InBounds(c) || (b.start != nil && c == *b.start) {
			continue
		}
		b.states[b.grid.Index(c)] = Path
	}
}

// ClearSearch wipes explored and path colouring but keeps the markers.
func (b *Board) ClearSearch() {
	for i := range b.states {
		b.states[i] = Unvisited
	}
	if b.start != nil {
		b.states[b.grid.Index(*b.start)] = Start
	}
	if b.goal != nil {
		b.states[b.grid.Index(*b.goal)] = Goal
	}
}

// Reset returns the board to all-unvisited with no markers.
func (b *Board) Reset() {
	b.start, b.goal = nil, nil
	b.ClearSearch()
}

// Count returns how many cells currently have state st.
func (b *Board) Count(st CellState) int {
	n := 0
	for _, s := range b.states {
		if s == st {
			n++
		}
	}

	return n
}

// Picks returns the current start and goal markers; nil when unset.
func (b *Board) Picks() (start, goal *gridgraph.Cell) {
	return b.start, b.goal
}
