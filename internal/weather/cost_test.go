package weather_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ocean-router/internal/grid"
	"ocean-router/internal/weather"
)

func TestWindModel_Penalty(t *testing.T) {
	windy := grid.Coordinate{Lat: 19, Lon: 73}
	calm := grid.Coordinate{Lat: 20, Lon: 74}
	m := weather.NewWindModel(weather.NewSnapshot(map[grid.Coordinate]float64{
		windy: 20,
		calm:  0,
	}))

	assert.Equal(t, 3.0, m.Penalty(windy))
	assert.Equal(t, 1.0, m.Penalty(calm))
	// Missing sample falls back to the default wind of 5.
	assert.Equal(t, 1.5, m.Penalty(grid.Coordinate{Lat: 1, Lon: 1}))
	assert.Equal(t, 30.0, m.AdjustedCost(10, windy))
}

func TestWindModel_EdgeCostUsesDestination(t *testing.T) {
	a := grid.Coordinate{Lat: 0, Lon: 0}
	b := grid.Coordinate{Lat: 0, Lon: 0.05}
	m := weather.NewWindModel(weather.NewSnapshot(map[grid.Coordinate]float64{a: 100, b: 20}))

	assert.Equal(t, 30.0, m.EdgeCost(grid.Edge{From: a, To: b, DistanceKm: 10}))
	assert.Equal(t, 110.0, m.EdgeCost(grid.Edge{From: b, To: a, DistanceKm: 10}))
}

func TestWindModel_NeverCheaperThanDistance(t *testing.T) {
	bad := grid.Coordinate{Lat: 1, Lon: 1}
	samples := []float64{-50, math.NaN(), math.Inf(-1), math.Inf(1), 0, 0.3, 12, 1000}
	for _, w := range samples {
		m := weather.NewWindModel(weather.NewSnapshot(map[grid.Coordinate]float64{bad: w}))
		p := m.Penalty(bad)
		assert.GreaterOrEqual(t, p, 1.0, "wind %v", w)
		assert.False(t, math.IsInf(p, 0) || math.IsNaN(p), "wind %v", w)
		assert.GreaterOrEqual(t, m.AdjustedCost(7, bad), 7.0)
	}
}

func TestWindModel_MonotonicInWind(t *testing.T) {
	n := grid.Coordinate{}
	prev := 0.0
	for w := 0.0; w <= 60; w += 2.5 {
		m := weather.NewWindModel(weather.NewSnapshot(map[grid.Coordinate]float64{n: w}))
		assert.GreaterOrEqual(t, m.Penalty(n), prev)
		prev = m.Penalty(n)
	}
}

func TestWindModel_CustomDefault(t *testing.T) {
	m := weather.WindModel{Default: 20}
	assert.Equal(t, 3.0, m.Penalty(grid.Coordinate{}))

	var zero weather.WindModel
	assert.Equal(t, 1.5, zero.Penalty(grid.Coordinate{}))
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := grid.Coordinate{Lat: 1, Lon: 2}
	src := map[grid.Coordinate]float64{c: 7}
	s := weather.NewSnapshot(src)
	src[c] = 99

	w, ok := s.WindSpeed(c)
	assert.True(t, ok)
	assert.Equal(t, 7.0, w)

	out := s.Samples()
	out[c] = 42
	w, _ = s.WindSpeed(c)
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 1, s.Len())
}
