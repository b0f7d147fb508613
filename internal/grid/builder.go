package grid

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/paulmach/orb"
)

// scale converts degrees to the integer micro-degree space the lattice is
// stepped in, so repeated builds never accumulate floating-point drift.
const scale = 1e6

// MaxNodes caps the lattice size a single Build may generate.
const MaxNodes = 10_000_000

// moves are the eight compass offsets in lattice steps (lat, lon):
// E, W, N, S, NE, NW, SE, SW.
var moves = [8][2]int64{
	{0, 1}, {0, -1},
	{1, 0}, {-1, 0},
	{1, 1}, {1, -1},
	{-1, 1}, {-1, -1},
}

type buildConfig struct {
	zones  []orb.Polygon
	logger *slog.Logger
}

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

// WithExclusionZones drops lattice points inside any of the zones and any
// edge whose segment touches one.
func WithExclusionZones(zones ...orb.Polygon) BuildOption {
	return func(c *buildConfig) {
		c.zones = append(c.zones, zones...)
	}
}

// WithLogger sets the logger used to report build statistics.
func WithLogger(l *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Build generates the lattice over b at stepDeg resolution and connects every
// point to its in-bounds compass neighbors. The same bounds and step always
// produce the same nodes in the same order: latitude ascending, then
// longitude ascending.
func Build(b Bounds, stepDeg float64, opts ...BuildOption) (*Graph, error) {
	cfg := buildConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !finite(stepDeg) || stepDeg <= 0 {
		return nil, fmt.Errorf("%w: step %v must be a positive number of degrees", ErrInvalidBounds, stepDeg)
	}
	step := toMicro(stepDeg)
	if step == 0 {
		return nil, fmt.Errorf("%w: step %v is below lattice resolution", ErrInvalidBounds, stepDeg)
	}

	start := time.Now()
	minLat, maxLat := toMicro(b.MinLat), toMicro(b.MaxLat)
	minLon, maxLon := toMicro(b.MinLon), toMicro(b.MaxLon)

	rows := (maxLat-minLat)/step + 1
	cols := (maxLon-minLon)/step + 1
	if rows*cols > MaxNodes {
		return nil, fmt.Errorf("%w: %d x %d lattice exceeds %d points", ErrInvalidBounds, rows, cols, MaxNodes)
	}
	g := newGraph(int(rows * cols))
	zones := newZoneIndex(cfg.zones)

	type latticePoint struct{ lat, lon int64 }
	lattice := make([]latticePoint, 0, rows*cols)
	excluded := 0

	for lat := minLat; lat <= maxLat; lat += step {
		for lon := minLon; lon <= maxLon; lon += step {
			c := Coordinate{Lat: fromMicro(lat), Lon: fromMicro(lon)}
			if zones.contains(c) {
				excluded++
				continue
			}
			g.addNode(c)
			lattice = append(lattice, latticePoint{lat, lon})
		}
	}

	blocked := 0
	for i, p := range lattice {
		from := g.nodes[i]
		edges := make([]Edge, 0, len(moves))
		for _, m := range moves {
			lat, lon := p.lat+m[0]*step, p.lon+m[1]*step
			if lat < minLat || lat > maxLat || lon < minLon || lon > maxLon {
				continue
			}
			to := Coordinate{Lat: fromMicro(lat), Lon: fromMicro(lon)}
			if !g.Has(to) {
				continue
			}
			if zones.crosses(from, to) {
				blocked++
				continue
			}
			edges = append(edges, Edge{From: from, To: to, DistanceKm: DistanceKm(from, to)})
		}
		g.edges[i] = edges
	}

	cfg.logger.Debug("grid built",
		slog.Int("nodes", g.Len()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("excludedNodes", excluded),
		slog.Int("blockedEdges", blocked),
		slog.Duration("elapsed", time.Since(start)))

	g.lattice = &Lattice{Bounds: b, StepDeg: stepDeg, Zones: len(cfg.zones)}
	return g, nil
}

func toMicro(deg float64) int64 {
	return int64(math.Round(deg * scale))
}

func fromMicro(v int64) float64 {
	return float64(v) / scale
}
