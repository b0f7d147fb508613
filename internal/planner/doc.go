// Package planner finds cheapest routes over a grid.Graph.
//
// FindPath snaps arbitrary coordinates onto the graph and runs A* with the
// great-circle distance to the goal as heuristic. Edge costs come from a
// pluggable CostModel, so distance-only and weather-aware routing share one
// search loop. The heuristic is admissible as long as the model never prices
// an edge below its great-circle length.
//
// A Planner bundles a graph and a cost model with a snap cache. Searches
// never mutate the graph, so one Planner may serve concurrent queries.
package planner
