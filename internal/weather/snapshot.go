package weather

import (
	"maps"

	"ocean-router/internal/grid"
)

// Snapshot is an immutable set of wind speed samples keyed by coordinate.
// All samples share one unit; the penalty formula assumes m/s or km/h
// consistently, never a mix.
type Snapshot struct {
	wind map[grid.Coordinate]float64
}

// NewSnapshot copies samples into a Snapshot.
func NewSnapshot(samples map[grid.Coordinate]float64) Snapshot {
	return Snapshot{wind: maps.Clone(samples)}
}

// WindSpeed returns the sample for c, if any.
func (s Snapshot) WindSpeed(c grid.Coordinate) (float64, bool) {
	w, ok := s.wind[c]
	return w, ok
}

// Len returns the number of samples.
func (s Snapshot) Len() int {
	return len(s.wind)
}

// Samples returns a copy of the underlying map.
func (s Snapshot) Samples() map[grid.Coordinate]float64 {
	return maps.Clone(s.wind)
}
