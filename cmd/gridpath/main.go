// Command gridpath runs one grid search and animates it in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridpath/gridsearch"
	"github.com/katalvlaran/gridpath/shell"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, searches, and draws boards to outW. Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, opts, shouldExit, err := parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	eng := gridsearch.NewEngine(gridsearch.WithLogger(logger))
	sess, err := shell.NewSession(eng, cfg.GridSize, shell.WithSessionLogger(logger))
	if err != nil {
		return err
	}
	if err := sess.SelectAlgorithm(cfg.AlgorithmValue()); err != nil {
		return err
	}
	if err := sess.SetStart(cfg.StartCell()); err != nil {
		return err
	}
	if err := sess.SetGoal(cfg.GoalCell()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := sess.Launch(ctx)
	if err != nil {
		return err
	}

	delay := cfg.VisitDelay()
	term := &shell.TerminalRenderer{W: outW, Plain: opts.Plain, Home: delay > 0}
	var frame shell.Frame
	if delay > 0 {
		frame = func(b *shell.Board, _ gridsearch.Event) error { return term.Render(b) }
	}
	playErr := shell.Play(ctx, res, sess.Board(), delay, frame)

	path, err := sess.Finish()
	if err := term.Render(sess.Board()); err != nil {
		return err
	}
	if playErr != nil {
		return playErr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(outW, "%s: visited %d cells, path %d steps\n", res.Algorithm(), res.Visited(), len(path)-1)

	if opts.PNGPath != "" {
		png := &shell.PNGRenderer{}
		if err := png.Save(opts.PNGPath, sess.Board()); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.PNGPath, err)
		}
		logger.Info("Board image written.", "path", opts.PNGPath)
	}

	return nil
}
