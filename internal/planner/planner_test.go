package planner_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"ocean-router/internal/grid"
	"ocean-router/internal/planner"
	"ocean-router/internal/weather"
)

// PlannerSuite exercises the Planner wrapper over a shared grid.
type PlannerSuite struct {
	suite.Suite
	graph *grid.Graph
	wind  weather.WindModel
}

func (s *PlannerSuite) SetupSuite() {
	g, err := grid.Build(grid.Bounds{MinLat: 18, MaxLat: 21, MinLon: 72, MaxLon: 75}, 0.25)
	s.Require().NoError(err)
	s.graph = g
	s.wind = weather.NewWindModel(randomWind(g, 3))
}

func (s *PlannerSuite) TestMatchesPackageFindPath() {
	p, err := planner.New(s.graph, s.wind)
	s.Require().NoError(err)

	start := grid.Coordinate{Lat: 18.95, Lon: 72.82}
	goal := grid.Coordinate{Lat: 20.5, Lon: 74.5}

	got, err := p.FindPath(start, goal)
	s.Require().NoError(err)
	want, err := planner.FindPath(s.graph, s.wind, start, goal)
	s.Require().NoError(err)
	s.Equal(want, got)

	// Second query is served from the snap cache and must agree.
	again, err := p.FindPath(start, goal)
	s.Require().NoError(err)
	s.Equal(got, again)
}

func (s *PlannerSuite) TestSnapCacheDisabled() {
	p, err := planner.New(s.graph, nil, planner.WithSnapCacheSize(0))
	s.Require().NoError(err)

	n, err := p.Snap(grid.Coordinate{Lat: 19.1, Lon: 72.7})
	s.Require().NoError(err)
	s.Equal(grid.Coordinate{Lat: 19, Lon: 72.75}, n)
}

func (s *PlannerSuite) TestWithCostSharesGraph() {
	p, err := planner.New(s.graph, planner.DistanceOnly{})
	s.Require().NoError(err)
	windy := p.WithCost(s.wind)

	s.Same(p.Graph(), windy.Graph())

	start := grid.Coordinate{Lat: 18, Lon: 72}
	goal := grid.Coordinate{Lat: 21, Lon: 75}
	plain, err := p.FindPath(start, goal)
	s.Require().NoError(err)
	weathered, err := windy.FindPath(start, goal)
	s.Require().NoError(err)

	s.InDelta(plain.DistanceKm, plain.Cost, 1e-9)
	s.Greater(weathered.Cost, plain.Cost)
}

func (s *PlannerSuite) TestSnapErrorsAreWrapped() {
	p, err := planner.New(s.graph, nil)
	s.Require().NoError(err)

	_, err = p.FindPath(grid.Coordinate{Lat: 200}, grid.Coordinate{})
	s.ErrorIs(err, grid.ErrInvalidCoordinate)
}

// TestConcurrentQueries runs many searches against one planner at once.
func (s *PlannerSuite) TestConcurrentQueries() {
	p, err := planner.New(s.graph, s.wind, planner.WithSnapCacheSize(8))
	s.Require().NoError(err)

	nodes := s.graph.Nodes()
	want := make([]planner.PathResult, 16)
	for i := range want {
		want[i], err = planner.FindPath(s.graph, s.wind, nodes[i], nodes[len(nodes)-1-i])
		s.Require().NoError(err)
	}

	var wg sync.WaitGroup
	got := make([]planner.PathResult, len(want))
	errs := make([]error, len(want))
	for i := range want {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = p.FindPath(nodes[i], nodes[len(nodes)-1-i])
		}(i)
	}
	wg.Wait()

	for i := range want {
		s.NoError(errs[i])
		s.Equal(want[i], got[i])
	}
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}

func TestNew_NilGraph(t *testing.T) {
	_, err := planner.New(nil, nil)
	require.ErrorIs(t, err, planner.ErrNilGraph)
}
