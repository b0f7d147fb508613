package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocean-router/internal/grid"
	"ocean-router/internal/planner"
)

func TestSnapToNearestNode(t *testing.T) {
	g, err := grid.Build(grid.Bounds{MinLat: -10, MaxLat: 30, MinLon: 40, MaxLon: 120}, 0.5)
	require.NoError(t, err)

	cases := []struct {
		name string
		in   grid.Coordinate
		want grid.Coordinate
	}{
		{"Mumbai", grid.Coordinate{Lat: 18.9437, Lon: 72.8354}, grid.Coordinate{Lat: 19, Lon: 73}},
		{"Singapore", grid.Coordinate{Lat: 1.2644, Lon: 103.8408}, grid.Coordinate{Lat: 1.5, Lon: 104}},
		{"OnGrid", grid.Coordinate{Lat: 12.5, Lon: 80}, grid.Coordinate{Lat: 12.5, Lon: 80}},
		{"OutsideBox", grid.Coordinate{Lat: 45, Lon: 10}, grid.Coordinate{Lat: 30, Lon: 40}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := planner.SnapToNearestNode(g, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSnapToNearestNode_TieGoesToFirst checks iteration-order tie-breaking.
func TestSnapToNearestNode_TieGoesToFirst(t *testing.T) {
	east := grid.Coordinate{Lat: 0, Lon: 1}
	west := grid.Coordinate{Lat: 0, Lon: -1}

	g, err := grid.FromAdjacency([]grid.Adjacency{{Node: east}, {Node: west}})
	require.NoError(t, err)
	got, err := planner.SnapToNearestNode(g, grid.Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, east, got)

	g, err = grid.FromAdjacency([]grid.Adjacency{{Node: west}, {Node: east}})
	require.NoError(t, err)
	got, err = planner.SnapToNearestNode(g, grid.Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, west, got)
}

func TestSnapToNearestNode_Empty(t *testing.T) {
	g, err := grid.FromAdjacency(nil)
	require.NoError(t, err)
	_, err = planner.SnapToNearestNode(g, grid.Coordinate{})
	require.ErrorIs(t, err, planner.ErrNoNodesAvailable)
}
