package grid

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LineStrings returns every edge as a two-point line string. Edges present in
// both directions are reported once.
func (g *Graph) LineStrings() []orb.LineString {
	if g == nil {
		return nil
	}

	seen := make(map[[2]int]bool)
	lines := make([]orb.LineString, 0, g.EdgeCount()/2)
	for i, edges := range g.edges {
		for _, e := range edges {
			j := g.index[e.To]
			key := [2]int{min(i, j), max(i, j)}
			if seen[key] {
				continue
			}
			seen[key] = true
			lines = append(lines, orb.LineString{e.From.Point(), e.To.Point()})
		}
	}
	return lines
}

// EdgesFeatureCollection returns the graph edges as a single MultiLineString
// feature, annotated with node and edge counts.
func EdgesFeatureCollection(g *Graph) *geojson.FeatureCollection {
	lines := g.LineStrings()
	f := geojson.NewFeature(orb.MultiLineString(lines))
	f.Properties["nodes"] = g.Len()
	f.Properties["edges"] = len(lines)

	fc := geojson.NewFeatureCollection()
	fc.Append(f)
	return fc
}

// PathFeature returns a path as a LineString feature.
func PathFeature(path []Coordinate) *geojson.Feature {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = c.Point()
	}
	return geojson.NewFeature(ls)
}
