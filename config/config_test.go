package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

func writeHCL(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.GridSize)
	assert.Equal(t, 50*time.Millisecond, cfg.VisitDelay())
	assert.Equal(t, gridsearch.Dijkstra, cfg.AlgorithmValue())
	assert.Equal(t, gridgraph.Cell{}, cfg.StartCell())
	assert.Equal(t, gridgraph.Cell{Row: 19, Col: 19}, cfg.GoalCell())
}

func TestLoad_Full(t *testing.T) {
	path := writeHCL(t, `
grid_size      = 8
visit_delay_ms = 0
algorithm      = "astar"
log_level      = "debug"
log_format     = "json"

start {
  row = 1
  col = 2
}
goal {
  row = 7
  col = 0
}
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.GridSize)
	assert.Equal(t, time.Duration(0), cfg.VisitDelay())
	assert.Equal(t, gridsearch.AStar, cfg.AlgorithmValue())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 2}, cfg.StartCell())
	assert.Equal(t, gridgraph.Cell{Row: 7, Col: 0}, cfg.GoalCell())
}

// TestLoad_PartialKeepsDefaults verifies missing attributes keep defaults and
// corners follow grid_size.
func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeHCL(t, `grid_size = 5`))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.GridSize)
	assert.Equal(t, config.DefaultVisitDelayMs, cfg.VisitDelayMs)
	assert.Equal(t, "dijkstra", cfg.Algorithm)
	assert.Nil(t, cfg.Start)
	assert.Equal(t, gridgraph.Cell{Row: 4, Col: 4}, cfg.GoalCell())
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load(writeHCL(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Env(t *testing.T) {
	t.Setenv("GRIDPATH_TEST_ALG", "dfs")
	cfg, err := config.Parse([]byte(`algorithm = env.GRIDPATH_TEST_ALG`), "env.hcl")
	require.NoError(t, err)
	assert.Equal(t, gridsearch.DFS, cfg.AlgorithmValue())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)

	_, err = config.Load(writeHCL(t, "grid_size = \n"))
	require.ErrorContains(t, err, "failed to parse")

	_, err = config.Load(writeHCL(t, `colour = "red"`))
	require.ErrorContains(t, err, "failed to decode")

	_, err = config.Load(writeHCL(t, `grid_size = "big"`))
	require.ErrorContains(t, err, "failed to decode")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"zero size", `grid_size = 0`},
		{"negative delay", `visit_delay_ms = -1`},
		{"unknown algorithm", `algorithm = "bfs"`},
		{"bad level", `log_level = "trace"`},
		{"bad format", `log_format = "xml"`},
		{"start outside", "grid_size = 3\nstart {\n row = 3\n col = 0\n}"},
		{"goal outside", "grid_size = 3\ngoal {\n row = 0\n col = -1\n}"},
		{"same cells", "grid_size = 3\nstart {\n row = 2\n col = 2\n}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), tc.name+".hcl")
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParseCell(t *testing.T) {
	b, err := config.ParseCell(" 3, 14")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 14}, b.Cell())

	for _, s := range []string{"", "3", "a,1", "1,b"} {
		_, err := config.ParseCell(s)
		assert.ErrorIs(t, err, config.ErrInvalidConfig, s)
	}
}
