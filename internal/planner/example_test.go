package planner_test

import (
	"fmt"

	"ocean-router/internal/grid"
	"ocean-router/internal/planner"
)

func ExamplePlanner_FindPath() {
	g, _ := grid.Build(grid.Bounds{MinLat: 0, MaxLat: 2, MinLon: 0, MaxLon: 2}, 1)
	p, _ := planner.New(g, nil)

	res, err := p.FindPath(grid.Coordinate{Lat: 0.1, Lon: -0.2}, grid.Coordinate{Lat: 2, Lon: 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range res.Path {
		fmt.Println(c)
	}
	// Output:
	// (0.000000, 0.000000)
	// (1.000000, 1.000000)
	// (2.000000, 2.000000)
}
