package gridsearch

// settleMode says when a popped cell is marked visited.
type settleMode int

const (
	settleBeforeGoal settleMode = iota // mark, then test for goal
	settleAfterGoal                    // test for goal, then mark
	settleNever                        // no visited set at all
)

// variant is the per-algorithm capability set: frontier order, relax
// condition and cost model. One engine loop interprets all four.
type variant struct {
	newFrontier func() frontier
	settle      settleMode
	skipVisited bool // drop neighbours already marked visited
	relax       bool // gate discoveries on g+1 < dist and track g
	heuristic   bool // add Manhattan(cell, goal) to the key
}

var variants = [...]variant{
	Dijkstra: {
		newFrontier: newFIFO,
		settle:      settleBeforeGoal,
		skipVisited: true,
		relax:       true,
	},
	DFS: {
		newFrontier: newLIFO,
		settle:      settleAfterGoal,
		skipVisited: true,
	},
	GreedyBestFirst: {
		newFrontier: newMinHeap,
		settle:      settleBeforeGoal,
		skipVisited: true,
		heuristic:   true,
	},
	AStar: {
		newFrontier: newMinHeap,
		settle:      settleNever,
		relax:       true,
		heuristic:   true,
	},
}

// key computes the frontier key for a cell with accumulated cost g and
// heuristic h; g is ignored when the variant does not relax.
func (v variant) key(g, h int) int {
	switch {
	case v.relax && v.heuristic:
		return g + h
	case v.relax:
		return g
	case v.heuristic:
		return h
	}

	return NoCost
}
