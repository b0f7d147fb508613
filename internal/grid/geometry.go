package grid

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// DistanceKm returns the great-circle (haversine) distance between two
// coordinates in kilometers.
func DistanceKm(a, b Coordinate) float64 {
	return geo.DistanceHaversine(a.Point(), b.Point()) / 1000
}

// segmentsIntersect checks if segments p1-p2 and p3-p4 intersect. Segments
// that only share an endpoint do not count.
func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear cases
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// direction is the cross product giving the orientation of p3 against p1-p2.
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

// onSegment checks if q lies within the bounding box of segment p-r.
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}

// segmentCrossesPolygon reports whether the straight segment a-b touches the
// polygon: crossing any ring, an endpoint inside it, or lying inside it.
func segmentCrossesPolygon(a, b orb.Point, poly orb.Polygon) bool {
	for _, ring := range poly {
		n := len(ring)
		for i := 0; i < n; i++ {
			if segmentsIntersect(a, b, ring[i], ring[(i+1)%n]) {
				return true
			}
		}
	}

	if planar.PolygonContains(poly, a) || planar.PolygonContains(poly, b) {
		return true
	}

	mid := orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
	return planar.PolygonContains(poly, mid)
}
