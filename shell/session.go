package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// Session is the controller between pointer/menu input, the board and the
// engine. It is driven from a single UI goroutine; only Cancel may be called
// from elsewhere.
type Session struct {
	eng     *gridsearch.Engine
	board   *Board
	alg     gridsearch.Algorithm
	running *gridsearch.Result
	log     *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger routes session diagnostics to l.
func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates a session over an n×n board driving eng.
// The default algorithm is Dijkstra.
func NewSession(eng *gridsearch.Engine, n int, opts ...SessionOption) (*Session, error) {
	board, err := NewBoard(n)
	if err != nil {
		return nil, err
	}
	s := &Session{
		eng:   eng,
		board: board,
		alg:   gridsearch.Dijkstra,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Board exposes the board for rendering.
func (s *Session) Board() *Board { return s.board }

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() gridsearch.Algorithm { return s.alg }

// Running reports whether a launched search has not been finished yet.
func (s *Session) Running() bool { return s.running != nil }

// SelectAlgorithm picks the strategy for the next launch.
func (s *Session) SelectAlgorithm(alg gridsearch.Algorithm) error {
	if s.running != nil {
		return ErrRunInProgress
	}
	if !alg.Valid() {
		return fmt.Errorf("%w: %d", gridsearch.ErrUnknownAlgorithm, int(alg))
	}
	s.alg = alg
	s.log.Debug("Algorithm selected.", "algorithm", alg.String())

	return nil
}

// SetStart picks the start cell.
func (s *Session) SetStart(c gridgraph.Cell) error {
	if err := s.checkPick(c); err != nil {
		return err
	}
	s.board.ClearSearch()
	s.board.SetStart(c)

	return nil
}

// SetGoal picks the goal cell.
func (s *Session) SetGoal(c gridgraph.Cell) error {
	if err := s.checkPick(c); err != nil {
		return err
	}
	s.board.ClearSearch()
	s.board.SetGoal(c)

	return nil
}

// Click translates a pointer press at pixel (x,y) into a pick: the left
// button sets the start, the right button the goal.
func (s *Session) Click(x, y int, btn Button) error {
	c, err := PointToCell(x, y, CellSizeFor(WindowSize, s.board.Size()), s.board.Size())
	if err != nil {
		return err
	}
	if btn == RightButton {
		return s.SetGoal(c)
	}

	return s.SetStart(c)
}

func (s *Session) checkPick(c gridgraph.Cell) error {
	if s.running != nil {
		return ErrRunInProgress
	}
	if !s.board.grid.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBoard, c)
	}

	return nil
}

// Launch configures the engine with the current picks and starts the
// selected algorithm. The session stays locked until Finish.
func (s *Session) Launch(ctx context.Context) (*gridsearch.Result, error) {
	if s.running != nil {
		return nil, ErrRunInProgress
	}
	start, goal := s.board.Picks()
	if start == nil || goal == nil {
		return nil, ErrSelectionIncomplete
	}
	if err := s.eng.Configure(s.board.Size(), *start, *goal); err != nil {
		return nil, err
	}
	res, err := s.eng.Run(ctx, s.alg)
	if err != nil {
		return nil, err
	}
	s.board.ClearSearch()
	s.running = res
	s.log.Info("Search launched.", "algorithm", s.alg.String(), "start", start.String(), "goal", goal.String())

	return res, nil
}

// Finish unlocks the session after the launched search terminated and
// colours the path. Returns gridsearch.ErrNoPathAvailable when the search
// ended without reaching the goal, and ErrRunInProgress if it is still running.
func (s *Session) Finish() ([]gridgraph.Cell, error) {
	if s.running == nil {
		return nil, ErrNoRun
	}
	if !s.running.Done() {
		return nil, ErrRunInProgress
	}
	res := s.running
	s.running = nil

	path, err := res.Path()
	if err != nil {
		s.log.Warn("Search ended without a path.", "algorithm", res.Algorithm().String(), "status", res.Status().String())
		return nil, err
	}
	s.board.MarkPath(path)
	s.log.Info("Search finished.",
		"algorithm", res.Algorithm().String(),
		"visited", res.Visited(),
		"path_steps", len(path)-1,
	)

	return path, nil
}

// Cancel stops the in-flight search. Safe from any goroutine.
func (s *Session) Cancel() { s.eng.Cancel() }

// Reset clears picks and colouring. Refused while a search is running.
func (s *Session) Reset() error {
	if s.running != nil {
		return ErrRunInProgress
	}
	s.board.Reset()

	return nil
}
