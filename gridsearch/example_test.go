package gridsearch_test

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/gridsearch"
)

// ExampleEngine_Run drives Dijkstra one event at a time on a 3×3 board,
// as an animation loop would, then reconstructs the path.
func ExampleEngine_Run() {
	eng := gridsearch.NewEngine()
	if err := eng.Configure(3, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2}); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := eng.Run(context.Background(), gridsearch.Dijkstra)
	for {
		ev, ok := res.Next()
		if !ok {
			break
		}
		fmt.Printf("%d %v g=%d\n", ev.Seq, ev.Cell, ev.Cost)
	}
	fmt.Println("status:", res.Status())

	path, _ := eng.ReconstructPath()
	slices.Reverse(path)
	fmt.Println("path:", path)
	// Output:
	// 1 (0,1) g=1
	// 2 (1,0) g=1
	// 3 (0,2) g=2
	// 4 (1,1) g=2
	// 5 (2,0) g=2
	// 6 (1,2) g=3
	// 7 (2,1) g=3
	// 8 (2,2) g=4
	// status: reached
	// path: [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleResult_Events compares how many cells each algorithm touches on
// the same 5×5 corner-to-corner search.
func ExampleResult_Events() {
	eng := gridsearch.NewEngine()
	_ = eng.Configure(5, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 4})

	for _, alg := range []gridsearch.Algorithm{gridsearch.Dijkstra, gridsearch.DFS} {
		res, _ := eng.Run(context.Background(), alg)
		n := 0
		for range res.Events() {
			n++
		}
		path, _ := res.Path()
		fmt.Printf("%-8s events=%d steps=%d\n", alg, n, len(path)-1)
	}
	// Output:
	// dijkstra events=24 steps=8
	// dfs      events=40 steps=24
}
