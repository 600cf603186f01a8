package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/config"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// options are the settings that only exist on the command line.
type options struct {
	PNGPath string
	Plain   bool
}

// parse reads args into a validated config. Flags override values from the
// -config file. shouldExit is true after -h.
func parse(args []string, output io.Writer) (cfg *config.Config, opts options, shouldExit bool, err error) {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
gridpath - watch a grid search explore a board cell by cell.

Usage:
  gridpath [options]

Options:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to an HCL settings file.")
	algFlag := fs.String("algorithm", config.DefaultAlgorithm, "Search algorithm: dijkstra, dfs, greedy or astar.")
	sizeFlag := fs.Int("size", config.DefaultGridSize, "Board side N.")
	startFlag := fs.String("start", "", "Start cell as ROW,COL (default top-left corner).")
	goalFlag := fs.String("goal", "", "Goal cell as ROW,COL (default bottom-right corner).")
	delayFlag := fs.Int("delay", config.DefaultVisitDelayMs, "Milliseconds between animated events; 0 prints only the final board.")
	fs.StringVar(&opts.PNGPath, "png", "", "Write the final board as a PNG file.")
	fs.BoolVar(&opts.Plain, "plain", false, "Draw with plain glyphs instead of colour blocks.")
	levelFlag := fs.String("log-level", config.DefaultLogLevel, "Logging level: debug, info, warn or error.")
	formatFlag := fs.String("log-format", config.DefaultLogFormat, "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, opts, true, nil
		}
		return nil, opts, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, opts, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	cfg = config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, opts, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithm":
			cfg.Algorithm = *algFlag
		case "size":
			cfg.GridSize = *sizeFlag
		case "delay":
			cfg.VisitDelayMs = *delayFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*levelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*formatFlag)
		case "start":
			cfg.Start, err = config.ParseCell(*startFlag)
			flagErr = errors.Join(flagErr, err)
		case "goal":
			cfg.Goal, err = config.ParseCell(*goalFlag)
			flagErr = errors.Join(flagErr, err)
		}
	})
	if flagErr != nil {
		return nil, opts, false, &ExitError{Code: 2, Message: flagErr.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, opts, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, opts, false, nil
}
