package gridsearch

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Engine owns the board configuration and the most recent run.
// Configure and Run may be called repeatedly; every Run starts from fresh
// tables and supersedes (cancels) the previous one.
type Engine struct {
	mu         sync.Mutex
	opts       Options
	grid       *gridgraph.Grid
	start      gridgraph.Cell
	goal       gridgraph.Cell
	configured bool
	last       *Result
}

// NewEngine returns an unconfigured engine with the given options applied.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{opts: o}
}

// Configure sets the board side and the start/goal picks.
// Returns ErrInvalidConfiguration if size <= 0, either cell is out of
// bounds, or start == goal; the previous configuration is kept in that case.
// A successful Configure cancels any in-flight run and forgets its result.
func (e *Engine) Configure(size int, start, goal gridgraph.Cell) error {
	grid, err := gridgraph.NewGrid(size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if !grid.InBounds(start) {
		return fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalidConfiguration, start, size, size)
	}
	if !grid.InBounds(goal) {
		return fmt.Errorf("%w: goal %v outside %dx%d board", ErrInvalidConfiguration, goal, size, size)
	}
	if start == goal {
		return fmt.Errorf("%w: start and goal are both %v", ErrInvalidConfiguration, start)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropLastLocked()
	e.grid, e.start, e.goal = grid, start, goal
	e.configured = true
	e.opts.Logger.Debug("Engine configured.", "size", size, "start", start.String(), "goal", goal.String())

	return nil
}

// Run launches alg over the configured board and returns its lazy Result.
// The search makes progress only as the caller pulls events.
// Returns ErrUnknownAlgorithm or ErrNotConfigured on misuse.
func (e *Engine) Run(ctx context.Context, alg Algorithm) (*Result, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.configured {
		return nil, ErrNotConfigured
	}
	e.dropLastLocked()

	r := newResult(ctx, alg, e.grid, e.start, e.goal, e.opts)
	e.last = r
	e.opts.Logger.Debug("Search started.", "algorithm", alg.String(), "start", e.start.String(), "goal", e.goal.String())

	return r, nil
}

// Cancel stops the in-flight run, if any. Safe to call from any goroutine.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.last != nil {
		e.last.Cancel()
	}
}

// ReconstructPath returns the most recent run's path in goal→start order.
// Returns ErrNoPathAvailable before any run, or if that run has not
// reached the goal (still running, exhausted, or cancelled).
func (e *Engine) ReconstructPath() ([]gridgraph.Cell, error) {
	e.mu.Lock()
	r := e.last
	e.mu.Unlock()
	if r == nil {
		return nil, fmt.Errorf("%w: no search has been run", ErrNoPathAvailable)
	}

	return r.Path()
}

// Configured reports whether Configure has succeeded at least once.
func (e *Engine) Configured() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.configured
}

// dropLastLocked cancels and forgets the previous run. Caller holds e.mu.
func (e *Engine) dropLastLocked() {
	if e.last != nil {
		e.last.Cancel()
		e.last = nil
	}
}
