package grid

import "fmt"

// Bounds is an inclusive lat/lon bounding box in decimal degrees.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// Validate reports ErrInvalidBounds for inverted, non-finite or off-globe boxes.
func (b Bounds) Validate() error {
	for _, v := range []float64{b.MinLat, b.MaxLat, b.MinLon, b.MaxLon} {
		if !finite(v) {
			return fmt.Errorf("%w: %+v is not finite", ErrInvalidBounds, b)
		}
	}
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return fmt.Errorf("%w: min exceeds max in %+v", ErrInvalidBounds, b)
	}
	if b.MinLat < -90 || b.MaxLat > 90 || b.MinLon < -180 || b.MaxLon > 180 {
		return fmt.Errorf("%w: %+v is outside [-90,90]x[-180,180]", ErrInvalidBounds, b)
	}
	return nil
}

// Contains reports whether c lies inside b, edges included.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lon >= b.MinLon && c.Lon <= b.MaxLon
}
