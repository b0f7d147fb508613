package weather

import (
	"math"

	"ocean-router/internal/grid"
)

// DefaultWindSpeed is assumed wherever a snapshot has no usable sample.
const DefaultWindSpeed = 5.0

// windDivisor converts wind speed into the penalty slope.
const windDivisor = 10.0

// WindModel is the weather-aware edge cost: base distance scaled by a penalty
// derived from the wind at the edge's destination. The zero value uses an
// empty snapshot and DefaultWindSpeed.
type WindModel struct {
	Samples Snapshot
	// Default replaces DefaultWindSpeed when positive.
	Default float64
}

// NewWindModel returns a WindModel over samples.
func NewWindModel(samples Snapshot) WindModel {
	return WindModel{Samples: samples}
}

// windAt returns the wind speed used for node. Negative and non-finite
// samples count as missing so the penalty never drops below 1.
func (m WindModel) windAt(node grid.Coordinate) float64 {
	if w, ok := m.Samples.WindSpeed(node); ok && w >= 0 && !math.IsInf(w, 0) && !math.IsNaN(w) {
		return w
	}
	if m.Default > 0 {
		return m.Default
	}
	return DefaultWindSpeed
}

// Penalty returns the multiplicative cost factor for entering node.
func (m WindModel) Penalty(node grid.Coordinate) float64 {
	return 1 + m.windAt(node)/windDivisor
}

// AdjustedCost scales baseDistanceKm by the penalty at node.
func (m WindModel) AdjustedCost(baseDistanceKm float64, node grid.Coordinate) float64 {
	return baseDistanceKm * m.Penalty(node)
}

// EdgeCost prices e by the wind at its destination.
func (m WindModel) EdgeCost(e grid.Edge) float64 {
	return m.AdjustedCost(e.DistanceKm, e.To)
}
