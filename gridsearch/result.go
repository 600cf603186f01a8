package gridsearch

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Result is one search in progress. It is pull-driven: every call to Next
// advances the search just far enough to produce the next event.
// Results are single-use; the event stream is not restartable.
type Result struct {
	alg    Algorithm
	v      variant
	grid   *gridgraph.Grid
	start  gridgraph.Cell
	goal   gridgraph.Cell
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc

	frontier frontier
	visited  []bool // nil for AStar
	dist     []int  // nil for DFS and GreedyBestFirst
	parent   []int  // row-major predecessor index, -1 if none
	nbuf     []gridgraph.Cell

	pending []Event
	head    int
	seq     int
	emitted int
	pops    int
	status  Status
}

func newResult(ctx context.Context, alg Algorithm, grid *gridgraph.Grid, start, goal gridgraph.Cell, opts Options) *Result {
	cctx, cancel := context.WithCancel(ctx)
	v := variants[alg]
	n := grid.Cells()

	r := &Result{
		alg:      alg,
		v:        v,
		grid:     grid,
		start:    start,
		goal:     goal,
		opts:     opts,
		ctx:      cctx,
		cancel:   cancel,
		frontier: v.newFrontier(),
		parent:   make([]int, n),
		nbuf:     make([]gridgraph.Cell, 0, 4),
		pending:  make([]Event, 0, 4),
		status:   StatusRunning,
	}
	for i := range r.parent {
		r.parent[i] = -1
	}
	if v.settle != settleNever {
		r.visited = make([]bool, n)
	}
	if v.relax {
		r.dist = make([]int, n)
		for i := range r.dist {
			r.dist[i] = math.MaxInt
		}
		r.dist[grid.Index(start)] = 0
	}

	// Seed the frontier with the start cell at g = 0.
	r.frontier.push(item{cell: start, key: v.key(0, gridgraph.Manhattan(start, goal))})

	return r
}

// Algorithm returns the strategy this result runs.
func (r *Result) Algorithm() Algorithm { return r.alg }

// Start returns the start cell fixed for this run.
func (r *Result) Start() gridgraph.Cell { return r.start }

// Goal returns the goal cell fixed for this run.
func (r *Result) Goal() gridgraph.Cell { return r.goal }

// Next returns the next visited event, or false once the search has
// terminated (goal reached, frontier exhausted, or cancelled).
func (r *Result) Next() (Event, bool) {
	for {
		if r.status != StatusRunning {
			return Event{}, false
		}
		if r.ctx.Err() != nil {
			r.finish(StatusCancelled)

			return Event{}, false
		}
		if r.head < len(r.pending) {
			ev := r.pending[r.head]
			r.head++
			r.emitted++
			if r.opts.OnVisit != nil {
				r.opts.OnVisit(ev)
			}

			return ev, true
		}
		r.pending, r.head = r.pending[:0], 0
		r.step()
	}
}

// Events ranges over the remaining events. Breaking out of the loop leaves
// the search paused; it can be resumed with Next or another Events call.
func (r *Result) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := r.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Drain runs the search to termination and returns every remaining event.
func (r *Result) Drain() []Event {
	var out []Event
	for ev := range r.Events() {
		out = append(out, ev)
	}

	return out
}

// Status reports the lifecycle state. A cancellation that has not yet been
// observed by Next is reported here as StatusCancelled.
func (r *Result) Status() Status {
	if r.status == StatusRunning && r.ctx.Err() != nil {
		r.finish(StatusCancelled)
	}

	return r.status
}

// Done reports whether the search has terminated for any reason.
func (r *Result) Done() bool { return r.Status() != StatusRunning }

// Reached reports whether the goal was popped from the frontier.
func (r *Result) Reached() bool { return r.status == StatusReached }

// Visited returns how many events Next has returned so far.
func (r *Result) Visited() int { return r.emitted }

// Expanded returns how many frontier pops the search has performed.
func (r *Result) Expanded() int { return r.pops }

// Cancel stops the search. Events already buffered are discarded and the
// result becomes StatusCancelled on the next Next or Status call.
// Safe to call from any goroutine and more than once.
func (r *Result) Cancel() { r.cancel() }

// Path follows predecessors from the goal back to the start and returns
// the cells in goal→start order, both ends included.
// Returns ErrNoPathAvailable unless the search reached the goal.
func (r *Result) Path() ([]gridgraph.Cell, error) {
	if st := r.Status(); st != StatusReached {
		return nil, fmt.Errorf("%w: %s search is %s", ErrNoPathAvailable, r.alg, st)
	}

	limit := r.grid.Cells()
	startIdx := r.grid.Index(r.start)
	path := make([]gridgraph.Cell, 0, gridgraph.Manhattan(r.start, r.goal)+1)
	for at := r.grid.Index(r.goal); ; at = r.parent[at] {
		if at < 0 || len(path) >= limit {
			return nil, fmt.Errorf("%w: predecessor chain broken at step %d", ErrNoPathAvailable, len(path))
		}
		path = append(path, r.grid.Coordinate(at))
		if at == startIdx {
			return path, nil
		}
	}
}

// step pops one frontier entry and expands it into pending events.
func (r *Result) step() {
	it, ok := r.frontier.pop()
	if !ok {
		r.finish(StatusExhausted)

		return
	}
	r.pops++
	cur := it.cell
	ci := r.grid.Index(cur)

	if r.v.settle == settleBeforeGoal {
		r.visited[ci] = true
	}
	if cur == r.goal {
		r.finish(StatusReached)

		return
	}
	if r.v.settle == settleAfterGoal {
		r.visited[ci] = true
	}

	r.expand(cur, ci)
}

// expand examines the neighbours of cur in fixed order, applying the
// variant's visited filter and relax condition.
func (r *Result) expand(cur gridgraph.Cell, ci int) {
	r.nbuf = r.grid.Neighbors(r.nbuf[:0], cur)
	for _, nb := range r.nbuf {
		ni := r.grid.Index(nb)
		if r.v.skipVisited && r.visited[ni] {
			continue
		}

		g := NoCost
		if r.v.relax {
			g = r.dist[ci] + 1
			if g >= r.dist[ni] {
				continue
			}
			r.dist[ni] = g
		}
		h := 0
		if r.v.heuristic {
			h = gridgraph.Manhattan(nb, r.goal)
		}
		key := r.v.key(g, h)

		r.parent[ni] = ci
		r.seq++
		r.pending = append(r.pending, Event{
			Seq:      r.seq,
			Cell:     nb,
			From:     cur,
			Cost:     g,
			Priority: key,
		})
		r.frontier.push(item{cell: nb, key: key})
	}
}

// finish records the terminal status and releases the frontier.
func (r *Result) finish(st Status) {
	r.status = st
	r.pending, r.head = nil, 0
	r.frontier = nil
	r.cancel()
	r.opts.Logger.Debug("Search finished.",
		"algorithm", r.alg.String(),
		"status", st.String(),
		"events", r.emitted,
		"expanded", r.pops,
	)
}
