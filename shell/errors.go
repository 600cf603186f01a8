package shell

import "errors"

var (
	// ErrSelectionIncomplete indicates Launch was called before start and goal were picked.
	ErrSelectionIncomplete = errors.New("shell: start and goal must both be set")
	// ErrRunInProgress indicates a pick or launch while a search is still animating.
	ErrRunInProgress = errors.New("shell: a search is already in progress")
	// ErrNoRun indicates Finish was called with nothing launched.
	ErrNoRun = errors.New("shell: no search has been launched")
	// ErrOutOfBoard indicates a pointer position outside the board.
	ErrOutOfBoard = errors.New("shell: point outside the board")
)
