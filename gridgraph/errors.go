package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates a non-positive grid side.
	ErrInvalidSize = errors.New("gridgraph: grid size must be positive")
)
