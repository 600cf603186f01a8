package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultGridSize     = gridgraph.DefaultSize
	DefaultVisitDelayMs = 50
	DefaultAlgorithm    = "dijkstra"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// CellBlock is a start or goal block.
type CellBlock struct {
	Row int `hcl:"row"`
	Col int `hcl:"col"`
}

// Cell converts the block to a grid cell.
func (b CellBlock) Cell() gridgraph.Cell { return gridgraph.Cell{Row: b.Row, Col: b.Col} }

// Config is the decoded settings file. A nil Start or Goal means the
// corresponding board corner.
type Config struct {
	GridSize     int        `hcl:"grid_size,optional"`
	VisitDelayMs int        `hcl:"visit_delay_ms,optional"`
	Algorithm    string     `hcl:"algorithm,optional"`
	LogLevel     string     `hcl:"log_level,optional"`
	LogFormat    string     `hcl:"log_format,optional"`
	Start        *CellBlock `hcl:"start,block"`
	Goal         *CellBlock `hcl:"goal,block"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		GridSize:     DefaultGridSize,
		VisitDelayMs: DefaultVisitDelayMs,
		Algorithm:    DefaultAlgorithm,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}

// Load reads and validates the HCL file at path on top of Default.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	return decode(path, file)
}

// Parse is Load for in-memory source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	return decode(filename, file)
}

func decode(name string, file *hcl.File) (*Config, error) {
	cfg := Default()
	if diags := gohcl.DecodeBody(file.Body, evalContext(), cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", name, diags)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// evalContext exposes the process environment as the env object.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(k) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}

// Validate checks ranges and names. Every failure wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalidConfig, c.GridSize)
	}
	if c.VisitDelayMs < 0 {
		return fmt.Errorf("%w: visit_delay_ms must not be negative, got %d", ErrInvalidConfig, c.VisitDelayMs)
	}
	if _, err := gridsearch.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	grid, err := gridgraph.NewGrid(c.GridSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	start, goal := c.StartCell(), c.GoalCell()
	if !grid.InBounds(start) {
		return fmt.Errorf("%w: start %v outside %d×%d board", ErrInvalidConfig, start, c.GridSize, c.GridSize)
	}
	if !grid.InBounds(goal) {
		return fmt.Errorf("%w: goal %v outside %d×%d board", ErrInvalidConfig, goal, c.GridSize, c.GridSize)
	}
	if start == goal {
		return fmt.Errorf("%w: start and goal are both %v", ErrInvalidConfig, start)
	}

	return nil
}

// AlgorithmValue returns the parsed algorithm; call after Validate.
func (c *Config) AlgorithmValue() gridsearch.Algorithm {
	alg, err := gridsearch.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return gridsearch.Dijkstra
	}

	return alg
}

// StartCell returns the start block or the top-left corner.
func (c *Config) StartCell() gridgraph.Cell {
	if c.Start != nil {
		return c.Start.Cell()
	}

	return gridgraph.Cell{}
}

// GoalCell returns the goal block or the bottom-right corner.
func (c *Config) GoalCell() gridgraph.Cell {
	if c.Goal != nil {
		return c.Goal.Cell()
	}

	return gridgraph.Cell{Row: c.GridSize - 1, Col: c.GridSize - 1}
}

// VisitDelay returns visit_delay_ms as a duration.
func (c *Config) VisitDelay() time.Duration {
	return time.Duration(c.VisitDelayMs) * time.Millisecond
}

// ParseCell parses "row,col" into a CellBlock.
func ParseCell(s string) (*CellBlock, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("%w: cell %q is not row,col", ErrInvalidConfig, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return nil, fmt.Errorf("%w: cell %q: bad row: %v", ErrInvalidConfig, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return nil, fmt.Errorf("%w: cell %q: bad col: %v", ErrInvalidConfig, s, err)
	}

	return &CellBlock{Row: row, Col: col}, nil
}
