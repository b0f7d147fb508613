// Package weather turns pre-fetched wind observations into traversal
// penalties for the route planner.
//
// Observations are gathered ahead of planning by Collect, which calls a
// Provider concurrently and returns an immutable Snapshot. WindModel then
// scales edge distances by 1 + wind/10, falling back to DefaultWindSpeed
// for nodes the snapshot has no data for. A failed or missing observation is
// never an error at search time.
package weather
