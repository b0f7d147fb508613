package planner

import (
	"github.com/paulmach/orb/geojson"

	"ocean-router/internal/grid"
)

// PathResult is an ordered route from the snapped start to the snapped goal,
// both inclusive. Cost is the sum of the adjusted edge costs along Path;
// DistanceKm is the plain great-circle length of the same edges.
type PathResult struct {
	Path       []grid.Coordinate `json:"path"`
	Cost       float64           `json:"cost"`
	DistanceKm float64           `json:"distanceKm"`
}

// Start returns the first node of the path.
func (r PathResult) Start() grid.Coordinate { return r.Path[0] }

// Goal returns the last node of the path.
func (r PathResult) Goal() grid.Coordinate { return r.Path[len(r.Path)-1] }

// Feature returns the path as a GeoJSON LineString annotated with its cost
// and length.
func (r PathResult) Feature() *geojson.Feature {
	f := grid.PathFeature(r.Path)
	f.Properties["cost"] = r.Cost
	f.Properties["distanceKm"] = r.DistanceKm
	f.Properties["waypoints"] = len(r.Path)
	return f
}
