package voyage

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"ocean-router/internal/grid"
)

// kmPerDegree matches the sphere grid.DistanceKm measures on.
const kmPerDegree = orb.EarthRadius / 1000 * math.Pi / 180

// hazardEntry wraps a hazard point for R-tree storage.
type hazardEntry struct {
	point grid.Coordinate
	order int
}

// Bounds implements rtreego.Spatial.
func (h *hazardEntry) Bounds() rtreego.Rect {
	return rtreego.Point{h.point.Lon, h.point.Lat}.ToRect(1e-9)
}

// hazardIndex finds hazards within a fixed great-circle radius.
type hazardIndex struct {
	tree        *rtreego.Rtree
	thresholdKm float64
	size        int
}

func newHazardIndex(points []grid.Coordinate, thresholdKm float64) (*hazardIndex, error) {
	tree := rtreego.NewTree(2, 25, 50)
	for i, p := range points {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("hazard %d: %w", i, err)
		}
		tree.Insert(&hazardEntry{point: p, order: i})
	}
	return &hazardIndex{tree: tree, thresholdKm: thresholdKm, size: len(points)}, nil
}

// firstInRange returns the earliest listed hazard strictly within the
// threshold of c, with its distance.
func (h *hazardIndex) firstInRange(c grid.Coordinate) (grid.Coordinate, float64, bool) {
	if h == nil || h.size == 0 {
		return grid.Coordinate{}, 0, false
	}

	var (
		best     *hazardEntry
		bestDist float64
	)
	for _, item := range h.tree.SearchIntersect(h.window(c)) {
		e := item.(*hazardEntry)
		if best != nil && e.order > best.order {
			continue
		}
		if d := grid.DistanceKm(c, e.point); d < h.thresholdKm {
			best, bestDist = e, d
		}
	}
	if best == nil {
		return grid.Coordinate{}, 0, false
	}
	return best.point, bestDist, true
}

// window is a lat/lon box guaranteed to contain every point within the
// threshold of c. It spans all longitudes near the poles or when the radius
// wraps the antimeridian.
func (h *hazardIndex) window(c grid.Coordinate) rtreego.Rect {
	dLat := h.thresholdKm/kmPerDegree*1.01 + 1e-9
	minLat, maxLat := math.Max(c.Lat-dLat, -90), math.Min(c.Lat+dLat, 90)

	minLon, maxLon := -180.0, 180.0
	if cos := math.Cos(math.Max(math.Abs(minLat), math.Abs(maxLat)) * math.Pi / 180); cos > 1e-6 {
		dLon := dLat / cos
		if c.Lon-dLon >= -180 && c.Lon+dLon <= 180 {
			minLon, maxLon = c.Lon-dLon, c.Lon+dLon
		}
	}

	r, err := rtreego.NewRect(rtreego.Point{minLon, minLat}, []float64{maxLon - minLon, maxLat - minLat})
	if err != nil {
		// Lengths are positive by construction.
		panic(err)
	}
	return r
}
