package grid

import (
	"fmt"
	"io"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// minRectSide pads degenerate (zero width or height) boxes so rtreego
// accepts them.
const minRectSide = 1e-9

// zoneEntry wraps a polygon for R-tree storage.
type zoneEntry struct {
	polygon orb.Polygon
	bbox    rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (z *zoneEntry) Bounds() rtreego.Rect {
	return z.bbox
}

// zoneIndex answers point and segment queries against exclusion zones. A nil
// tree means no zones.
type zoneIndex struct {
	tree *rtreego.Rtree
}

func newZoneIndex(zones []orb.Polygon) zoneIndex {
	if len(zones) == 0 {
		return zoneIndex{}
	}
	tree := rtreego.NewTree(2, 25, 50)
	for _, z := range zones {
		if len(z) == 0 || len(z[0]) == 0 {
			continue
		}
		tree.Insert(&zoneEntry{polygon: z, bbox: boundRect(z.Bound())})
	}
	return zoneIndex{tree: tree}
}

func (zi zoneIndex) query(b orb.Bound) []orb.Polygon {
	if zi.tree == nil {
		return nil
	}
	results := zi.tree.SearchIntersect(boundRect(b))
	polys := make([]orb.Polygon, 0, len(results))
	for _, item := range results {
		polys = append(polys, item.(*zoneEntry).polygon)
	}
	return polys
}

func (zi zoneIndex) contains(c Coordinate) bool {
	p := c.Point()
	for _, poly := range zi.query(orb.Bound{Min: p, Max: p}) {
		if planar.PolygonContains(poly, p) {
			return true
		}
	}
	return false
}

func (zi zoneIndex) crosses(a, b Coordinate) bool {
	pa, pb := a.Point(), b.Point()
	for _, poly := range zi.query(orb.MultiPoint{pa, pb}.Bound()) {
		if segmentCrossesPolygon(pa, pb, poly) {
			return true
		}
	}
	return false
}

// boundRect converts an orb bound into an rtreego rectangle.
func boundRect(b orb.Bound) rtreego.Rect {
	w := max(b.Max[0]-b.Min[0], minRectSide)
	h := max(b.Max[1]-b.Min[1], minRectSide)
	r, err := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{w, h})
	if err != nil {
		// Only reachable with non-positive lengths, which the padding rules out.
		panic(err)
	}
	return r
}

// ZoneOptions controls how LoadZones post-processes polygons.
type ZoneOptions struct {
	// SimplifyDeg is the Douglas-Peucker threshold in degrees; 0 disables
	// simplification.
	SimplifyDeg float64
}

// LoadZones reads exclusion zones from a GeoJSON FeatureCollection. Polygon
// and MultiPolygon features are accepted, and only their outer rings are
// kept. Zones fully inside another zone are dropped.
func LoadZones(r io.Reader, opts ZoneOptions) ([]orb.Polygon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read zones: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse zones: %w", err)
	}

	var zones []orb.Polygon
	for _, f := range fc.Features {
		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			zones = appendOuter(zones, geom)
		case orb.MultiPolygon:
			for _, p := range geom {
				zones = appendOuter(zones, p)
			}
		}
	}

	if opts.SimplifyDeg > 0 {
		s := simplify.DouglasPeucker(opts.SimplifyDeg)
		for i, z := range zones {
			// A ring simplified below a triangle no longer describes an area.
			if p, ok := s.Simplify(z.Clone()).(orb.Polygon); ok && len(p) > 0 && len(p[0]) >= 4 {
				zones[i] = p
			}
		}
	}

	return removeContained(zones), nil
}

func appendOuter(zones []orb.Polygon, p orb.Polygon) []orb.Polygon {
	if len(p) == 0 || len(p[0]) < 3 {
		return zones
	}
	return append(zones, orb.Polygon{p[0]})
}

// removeContained drops polygons that lie fully inside another polygon.
func removeContained(polys []orb.Polygon) []orb.Polygon {
	if len(polys) <= 1 {
		return polys
	}

	contained := make([]bool, len(polys))
	for i := range polys {
		if contained[i] {
			continue
		}
		for j := range polys {
			if i == j || contained[j] {
				continue
			}
			if polygonInside(polys[i], polys[j]) {
				contained[i] = true
				break
			}
		}
	}

	out := make([]orb.Polygon, 0, len(polys))
	for i, p := range polys {
		if !contained[i] {
			out = append(out, p)
		}
	}
	return out
}

// polygonInside reports whether every vertex of a lies within b.
func polygonInside(a, b orb.Polygon) bool {
	ab, bb := a.Bound(), b.Bound()
	if !bb.Contains(ab.Min) || !bb.Contains(ab.Max) {
		return false
	}
	for _, v := range a[0] {
		if !planar.RingContains(b[0], v) {
			return false
		}
	}
	return true
}
