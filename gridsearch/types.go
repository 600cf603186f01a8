package gridsearch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for engine operations.
var (
	// ErrInvalidConfiguration indicates a bad board size or start/goal pick.
	ErrInvalidConfiguration = errors.New("gridsearch: invalid configuration")

	// ErrNotConfigured is returned by Run before Configure succeeded.
	ErrNotConfigured = errors.New("gridsearch: engine not configured")

	// ErrNoPathAvailable is returned when no reached goal exists to trace back from.
	ErrNoPathAvailable = errors.New("gridsearch: no path available")

	// ErrUnknownAlgorithm indicates an Algorithm value or name outside the enumeration.
	ErrUnknownAlgorithm = errors.New("gridsearch: unknown algorithm")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	// Dijkstra is uniform-cost search with a relaxation-gated FIFO queue.
	Dijkstra Algorithm = iota
	// DFS is depth-first search over an explicit stack.
	DFS
	// GreedyBestFirst orders the frontier by Manhattan distance to the goal only.
	GreedyBestFirst
	// AStar orders the frontier by g + Manhattan distance.
	AStar
)

var algorithmNames = [...]string{
	Dijkstra:        "dijkstra",
	DFS:             "dfs",
	GreedyBestFirst: "greedy",
	AStar:           "astar",
}

// Algorithms lists every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, DFS, GreedyBestFirst, AStar}
}

// Valid reports whether a is one of the enumerated algorithms.
func (a Algorithm) Valid() bool {
	return a >= Dijkstra && a <= AStar
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm resolves a menu/config name. Matching is case-insensitive and
// accepts a few common aliases ("uniform-cost", "gbfs", "a*").
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra", "uniform-cost", "ucs":
		return Dijkstra, nil
	case "dfs", "depth-first":
		return DFS, nil
	case "greedy", "gbfs", "greedy-best-first", "best-first":
		return GreedyBestFirst, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Status describes where a Result is in its lifecycle.
type Status int

const (
	// StatusRunning means more events may follow.
	StatusRunning Status = iota
	// StatusReached means the goal was popped from the frontier.
	StatusReached
	// StatusExhausted means the frontier emptied without reaching the goal.
	StatusExhausted
	// StatusCancelled means the run was stopped before termination.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusReached:
		return "reached"
	case StatusExhausted:
		return "exhausted"
	case StatusCancelled:
		return "cancelled"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// NoCost marks an Event field the algorithm does not track.
const NoCost = -1

// Event reports one discovery or relaxation.
//
//	Seq      – 1-based emission index within the run.
//	Cell     – the discovered cell.
//	From     – the cell being expanded (the new predecessor of Cell).
//	Cost     – accumulated g (Dijkstra, AStar) or NoCost.
//	Priority – frontier key: g, h, f, or NoCost for DFS.
type Event struct {
	Seq      int
	Cell     gridgraph.Cell
	From     gridgraph.Cell
	Cost     int
	Priority int
}

// HasCost reports whether the event carries an accumulated path cost.
func (e Event) HasCost() bool { return e.Cost != NoCost }

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds engine-wide settings shared by every run.
type Options struct {
	// Logger receives Debug records for configure, run start and termination.
	Logger *slog.Logger

	// OnVisit, if non-nil, observes each event right before Next returns it.
	OnVisit func(Event)
}

// DefaultOptions returns Options with a discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnVisit: nil,
	}
}

// WithLogger routes engine diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers an observer invoked for every emitted event.
func WithOnVisit(fn func(Event)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
