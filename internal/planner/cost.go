package planner

import "ocean-router/internal/grid"

// CostModel prices a single edge traversal. Implementations must return a
// finite value no smaller than e.DistanceKm, otherwise the great-circle
// heuristic stops being admissible and paths may be suboptimal.
type CostModel interface {
	EdgeCost(e grid.Edge) float64
}

// CostFunc adapts a function to CostModel.
type CostFunc func(e grid.Edge) float64

// EdgeCost calls f.
func (f CostFunc) EdgeCost(e grid.Edge) float64 { return f(e) }

// DistanceOnly prices edges by their great-circle length alone.
type DistanceOnly struct{}

// EdgeCost returns e.DistanceKm.
func (DistanceOnly) EdgeCost(e grid.Edge) float64 { return e.DistanceKm }
