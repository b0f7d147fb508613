package planner

import (
	"ocean-router/internal/grid"
)

// SnapToNearestNode returns the graph node closest to c by great-circle
// distance. Ties go to the node seen first in graph iteration order.
func SnapToNearestNode(g *grid.Graph, c grid.Coordinate) (grid.Coordinate, error) {
	if err := c.Validate(); err != nil {
		return grid.Coordinate{}, err
	}
	if g.Len() == 0 {
		return grid.Coordinate{}, ErrNoNodesAvailable
	}

	nearest := g.Node(0)
	minDist := grid.DistanceKm(c, nearest)
	for i := 1; i < g.Len(); i++ {
		n := g.Node(i)
		if d := grid.DistanceKm(c, n); d < minDist {
			minDist = d
			nearest = n
		}
	}
	return nearest, nil
}
