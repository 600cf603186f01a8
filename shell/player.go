package shell

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/gridsearch"
)

// DefaultVisitDelay is the pause between animated events.
const DefaultVisitDelay = 50 * time.Millisecond

// Frame is called after each event has been applied to the board.
// Returning an error stops playback and cancels the search.
type Frame func(b *Board, ev gridsearch.Event) error

// Play pulls every event of res, applies it to b, calls frame and waits
// delay before pulling the next one. A delay <= 0 plays as fast as possible.
// Cancelling ctx cancels the search and returns ctx.Err().
func Play(ctx context.Context, res *gridsearch.Result, b *Board, delay time.Duration, frame Frame) error {
	var tick <-chan time.Time
	if delay > 0 {
		t := time.NewTicker(delay)
		defer t.Stop()
		tick = t.C
	}

	for {
		if err := ctx.Err(); err != nil {
			res.Cancel()
			return err
		}
		ev, ok := res.Next()
		if !ok {
			return nil
		}
		b.Apply(ev)
		if frame != nil {
			if err := frame(b, ev); err != nil {
				res.Cancel()
				return err
			}
		}
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			res.Cancel()
			return ctx.Err()
		case <-tick:
		}
	}
}
