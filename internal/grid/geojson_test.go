package grid_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocean-router/internal/grid"
)

func TestLineStrings_Dedup(t *testing.T) {
	g, err := grid.Build(unitBox(), 1.0)
	require.NoError(t, err)

	lines := g.LineStrings()
	// 12 orthogonal + 8 diagonal undirected edges in a 3x3 lattice.
	assert.Len(t, lines, 20)
	assert.Equal(t, 40, g.EdgeCount())

	fc := grid.EdgesFeatureCollection(g)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, 20, fc.Features[0].Properties["edges"])
	_, err = json.Marshal(fc)
	require.NoError(t, err)
}

func TestPathFeature(t *testing.T) {
	f := grid.PathFeature([]grid.Coordinate{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}})
	ls, ok := f.Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{2, 1}, {4, 3}}, ls)
}

const zonesGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "island"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "lagoon"},
     "geometry": {"type": "Polygon", "coordinates": [[[0.5,0.5],[1,0.5],[1,1],[0.5,1],[0.5,0.5]]]}},
    {"type": "Feature", "properties": {"name": "reefs"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[5,5],[6,5],[6,6],[5,6],[5,5]]],
       [[[8,8],[9,8],[9,9],[8,9],[8,8]]]
     ]}},
    {"type": "Feature", "properties": {"name": "buoy"},
     "geometry": {"type": "Point", "coordinates": [3,3]}}
  ]
}`

func TestLoadZones(t *testing.T) {
	zones, err := grid.LoadZones(strings.NewReader(zonesGeoJSON), grid.ZoneOptions{})
	require.NoError(t, err)
	// The lagoon lies inside the island and is dropped; the point is ignored.
	require.Len(t, zones, 3)
	assert.Equal(t, orb.Point{0, 0}, zones[0][0][0])
	assert.Equal(t, orb.Point{5, 5}, zones[1][0][0])
	assert.Equal(t, orb.Point{8, 8}, zones[2][0][0])
}

func TestLoadZones_Simplify(t *testing.T) {
	const doc = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},
	  "geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0.00001],[2,0],[2,2],[0,2],[0,0]]]}}]}`
	zones, err := grid.LoadZones(strings.NewReader(doc), grid.ZoneOptions{SimplifyDeg: 0.001})
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Len(t, zones[0][0], 5)
}

func TestLoadZones_Invalid(t *testing.T) {
	_, err := grid.LoadZones(strings.NewReader("{"), grid.ZoneOptions{})
	require.Error(t, err)
}
