package grid

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a latitude/longitude pair in decimal degrees. It is used
// directly as a map key, so equality is exact value equality.
type Coordinate struct {
	Lat float64 `json:"lat" msgpack:"lat"`
	Lon float64 `json:"lon" msgpack:"lon"`
}

// FromPoint converts an orb point (lon, lat order) into a Coordinate.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lon: p.Lon()}
}

// Point returns the coordinate as an orb point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Validate reports ErrInvalidCoordinate when c is not a finite position on
// the globe.
func (c Coordinate) Validate() error {
	if !finite(c.Lat) || !finite(c.Lon) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidCoordinate, c)
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: %v is out of range", ErrInvalidCoordinate, c)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Lat, c.Lon)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
