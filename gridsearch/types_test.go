package gridsearch_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]gridsearch.Algorithm{
		"dijkstra":     gridsearch.Dijkstra,
		"Uniform-Cost": gridsearch.Dijkstra,
		"dfs":          gridsearch.DFS,
		" DFS ":        gridsearch.DFS,
		"greedy":       gridsearch.GreedyBestFirst,
		"gbfs":         gridsearch.GreedyBestFirst,
		"astar":        gridsearch.AStar,
		"A*":           gridsearch.AStar,
	}
	for name, want := range cases {
		got, err := gridsearch.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := gridsearch.ParseAlgorithm("bfs")
	require.ErrorIs(t, err, gridsearch.ErrUnknownAlgorithm)
}

// TestAlgorithmStringRoundTrip ensures every menu name parses back.
func TestAlgorithmStringRoundTrip(t *testing.T) {
	for _, a := range gridsearch.Algorithms() {
		require.True(t, a.Valid())
		got, err := gridsearch.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.False(t, gridsearch.Algorithm(-1).Valid())
	assert.Equal(t, "Algorithm(9)", gridsearch.Algorithm(9).String())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", gridsearch.StatusRunning.String())
	assert.Equal(t, "reached", gridsearch.StatusReached.String())
	assert.Equal(t, "exhausted", gridsearch.StatusExhausted.String())
	assert.Equal(t, "cancelled", gridsearch.StatusCancelled.String())
	assert.Equal(t, "Status(7)", gridsearch.Status(7).String())
}

// TestWithLogger verifies engine diagnostics reach the configured logger
// and that a nil logger keeps the default.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := gridsearch.NewEngine(gridsearch.WithLogger(nil), gridsearch.WithLogger(l))
	require.NoError(t, eng.Configure(3, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2}))
	res, err := eng.Run(context.Background(), gridsearch.Dijkstra)
	require.NoError(t, err)
	res.Drain()

	assert.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "dijkstra")
	assert.NotNil(t, gridsearch.DefaultOptions().Logger)
}
