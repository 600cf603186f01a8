// Package config loads gridpath settings from an HCL file.
//
// Recognised settings and their defaults:
//
//	grid_size      = 20        // board side N
//	visit_delay_ms = 50        // pause between animated events
//	algorithm      = "dijkstra" // dijkstra | dfs | greedy | astar
//	log_level      = "info"    // debug | info | warn | error
//	log_format     = "text"    // text | json
//
//	start { row = 0  col = 0 }  // defaults to the top-left corner
//	goal  { row = 19 col = 19 } // defaults to the bottom-right corner
//
// Every attribute is optional. Expressions may read process environment
// variables through the env object, for example grid_size = env.GRID_N.
//
// Errors:
//
//   - ErrInvalidConfig wraps every validation failure.
//   - Parse and decode failures are returned as HCL diagnostics.
package config
