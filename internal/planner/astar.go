package planner

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"ocean-router/internal/grid"
)

// searchNode is an open-set entry. Entries are never updated in place: a
// cheaper route pushes a fresh entry and the outdated one is skipped when it
// surfaces.
type searchNode struct {
	node int     // index of the node in the graph
	g    float64 // cost from start when the entry was pushed
	f    float64 // g + heuristic to goal
	seq  int     // push order, breaks f ties deterministically
}

// priorityQueue implements heap.Interface ordered by f.
type priorityQueue []searchNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(searchNode))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	*pq = old[:n-1]
	return node
}

// FindPath snaps start and goal onto g and returns the cheapest route between
// them under cost. A nil cost prices edges by distance alone.
func FindPath(g *grid.Graph, cost CostModel, start, goal grid.Coordinate) (PathResult, error) {
	if g == nil {
		return PathResult{}, ErrNilGraph
	}
	s, err := SnapToNearestNode(g, start)
	if err != nil {
		return PathResult{}, err
	}
	t, err := SnapToNearestNode(g, goal)
	if err != nil {
		return PathResult{}, err
	}
	return search(g, cost, s, t, nil)
}

// search runs A* between two nodes of g. The heuristic is the great-circle
// distance to goal.
func search(g *grid.Graph, cost CostModel, start, goal grid.Coordinate, logger *slog.Logger) (PathResult, error) {
	if cost == nil {
		cost = DistanceOnly{}
	}
	startIdx, ok := g.IndexOf(start)
	if !ok {
		return PathResult{}, fmt.Errorf("%w: start %v is not a graph node", grid.ErrInvalidCoordinate, start)
	}
	goalIdx, ok := g.IndexOf(goal)
	if !ok {
		return PathResult{}, fmt.Errorf("%w: goal %v is not a graph node", grid.ErrInvalidCoordinate, goal)
	}

	began := time.Now()
	n := g.Len()
	gScore := make([]float64, n)
	parent := make([]int, n)
	stepKm := make([]float64, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		parent[i] = -1
	}
	gScore[startIdx] = 0

	open := &priorityQueue{}
	seq := 0
	heap.Push(open, searchNode{node: startIdx, f: grid.DistanceKm(start, goal), seq: seq})

	explored := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(searchNode)
		if current.g > gScore[current.node] {
			continue
		}
		explored++

		if current.node == goalIdx {
			result := reconstruct(g, parent, stepKm, goalIdx)
			result.Cost = gScore[goalIdx]
			if logger != nil {
				logger.Debug("path found",
					slog.String("start", start.String()),
					slog.String("goal", goal.String()),
					slog.Int("waypoints", len(result.Path)),
					slog.Float64("cost", result.Cost),
					slog.Int("explored", explored),
					slog.Duration("elapsed", time.Since(began)))
			}
			return result, nil
		}

		for _, e := range g.EdgesAt(current.node) {
			c := cost.EdgeCost(e)
			if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
				return PathResult{}, fmt.Errorf("%w: %v for %v -> %v", ErrInvalidCost, c, e.From, e.To)
			}

			neighbor, _ := g.IndexOf(e.To)
			tentative := current.g + c
			if tentative < gScore[neighbor] {
				gScore[neighbor] = tentative
				parent[neighbor] = current.node
				stepKm[neighbor] = e.DistanceKm
				seq++
				heap.Push(open, searchNode{
					node: neighbor,
					g:    tentative,
					f:    tentative + grid.DistanceKm(e.To, goal),
					seq:  seq,
				})
			}
		}
	}

	if logger != nil {
		logger.Debug("search exhausted",
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.Int("explored", explored))
	}
	return PathResult{}, fmt.Errorf("%w: %v -> %v", ErrNoPathFound, start, goal)
}

// reconstruct walks parent links back from goal and reverses them.
func reconstruct(g *grid.Graph, parent []int, stepKm []float64, goal int) PathResult {
	var (
		path []grid.Coordinate
		km   float64
	)
	for i := goal; i != -1; i = parent[i] {
		path = append(path, g.Node(i))
		km += stepKm[i]
	}
	slices.Reverse(path)
	return PathResult{Path: path, DistanceKm: km}
}
