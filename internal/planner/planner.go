package planner

import (
	"fmt"
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"ocean-router/internal/grid"
)

// DefaultSnapCacheSize is the number of snapped coordinates a Planner keeps.
const DefaultSnapCacheSize = 4096

type options struct {
	snapCacheSize int
	logger        *slog.Logger
}

// Option configures a Planner.
type Option func(*options)

// WithSnapCacheSize sets the snap cache capacity; 0 disables caching.
func WithSnapCacheSize(n int) Option {
	return func(o *options) { o.snapCacheSize = n }
}

// WithLogger sets the logger for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Planner answers route queries against one immutable graph.
type Planner struct {
	graph  *grid.Graph
	cost   CostModel
	snaps  *lru.Cache[grid.Coordinate, grid.Coordinate]
	logger *slog.Logger
}

// New returns a Planner over g pricing edges with cost (distance only when
// nil).
func New(g *grid.Graph, cost CostModel, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := options{
		snapCacheSize: DefaultSnapCacheSize,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if cost == nil {
		cost = DistanceOnly{}
	}

	p := &Planner{graph: g, cost: cost, logger: o.logger}
	if o.snapCacheSize > 0 {
		cache, err := lru.New[grid.Coordinate, grid.Coordinate](o.snapCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create snap cache: %w", err)
		}
		p.snaps = cache
	}
	return p, nil
}

// Graph returns the graph the planner searches.
func (p *Planner) Graph() *grid.Graph { return p.graph }

// WithCost returns a Planner over the same graph and snap cache that prices
// edges with cost, e.g. for a fresher weather snapshot.
func (p *Planner) WithCost(cost CostModel) *Planner {
	if cost == nil {
		cost = DistanceOnly{}
	}
	cp := *p
	cp.cost = cost
	return &cp
}

// Snap returns the graph node nearest to c.
func (p *Planner) Snap(c grid.Coordinate) (grid.Coordinate, error) {
	if p.snaps != nil {
		if n, ok := p.snaps.Get(c); ok {
			return n, nil
		}
	}
	n, err := SnapToNearestNode(p.graph, c)
	if err != nil {
		return grid.Coordinate{}, err
	}
	if p.snaps != nil {
		p.snaps.Add(c, n)
	}
	return n, nil
}

// FindPath snaps start and goal and returns the cheapest route between them.
func (p *Planner) FindPath(start, goal grid.Coordinate) (PathResult, error) {
	s, err := p.Snap(start)
	if err != nil {
		return PathResult{}, fmt.Errorf("snap start: %w", err)
	}
	t, err := p.Snap(goal)
	if err != nil {
		return PathResult{}, fmt.Errorf("snap goal: %w", err)
	}
	return search(p.graph, p.cost, s, t, p.logger)
}
