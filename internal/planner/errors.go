package planner

import "errors"

var (
	// ErrNoNodesAvailable indicates snapping against an empty graph.
	ErrNoNodesAvailable = errors.New("planner: graph has no nodes")
	// ErrNoPathFound indicates the search exhausted every reachable node
	// without reaching the goal.
	ErrNoPathFound = errors.New("planner: no path found")
	// ErrInvalidCost indicates a cost model produced a negative or
	// non-finite edge cost.
	ErrInvalidCost = errors.New("planner: invalid edge cost")
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("planner: graph is nil")
)
