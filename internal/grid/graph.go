package grid

import "slices"

// Edge is a directed connection between two nodes with its static
// great-circle length.
type Edge struct {
	From       Coordinate
	To         Coordinate
	DistanceKm float64
}

// Graph maps every node to the ordered list of edges leaving it. Nodes keep
// the order they were added in, which makes iteration (and therefore nearest
// node tie-breaking) deterministic.
//
// A Graph must not be modified once built; all accessors return copies or
// read-only views.
type Graph struct {
	nodes   []Coordinate
	index   map[Coordinate]int
	edges   [][]Edge
	lattice *Lattice
}

// Lattice records the settings a graph was built from.
type Lattice struct {
	Bounds  Bounds  `json:"bounds" msgpack:"bounds"`
	StepDeg float64 `json:"stepDeg" msgpack:"step"`
	// Zones is the number of exclusion zones applied.
	Zones int `json:"zones" msgpack:"zones"`
}

func newGraph(capacity int) *Graph {
	return &Graph{
		nodes: make([]Coordinate, 0, capacity),
		index: make(map[Coordinate]int, capacity),
		edges: make([][]Edge, 0, capacity),
	}
}

// addNode appends c and returns its index. The second return is false when c
// was already present.
func (g *Graph) addNode(c Coordinate) (int, bool) {
	if i, ok := g.index[c]; ok {
		return i, false
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, c)
	g.index[c] = i
	g.edges = append(g.edges, nil)
	return i, true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// Lattice returns the settings g was built from. It reports false for graphs
// assembled with FromAdjacency.
func (g *Graph) Lattice() (Lattice, bool) {
	if g == nil || g.lattice == nil {
		return Lattice{}, false
	}
	return *g.lattice, true
}

// Nodes returns a copy of all nodes in iteration order.
func (g *Graph) Nodes() []Coordinate {
	if g == nil {
		return nil
	}
	return slices.Clone(g.nodes)
}

// Node returns the i-th node in iteration order.
func (g *Graph) Node(i int) Coordinate {
	return g.nodes[i]
}

// IndexOf returns the iteration index of c.
func (g *Graph) IndexOf(c Coordinate) (int, bool) {
	if g == nil {
		return 0, false
	}
	i, ok := g.index[c]
	return i, ok
}

// Has reports whether c is a node of g.
func (g *Graph) Has(c Coordinate) bool {
	_, ok := g.IndexOf(c)
	return ok
}

// Edges returns a copy of the edges leaving c, or nil if c is not a node.
func (g *Graph) Edges(c Coordinate) []Edge {
	i, ok := g.IndexOf(c)
	if !ok {
		return nil
	}
	return slices.Clone(g.edges[i])
}

// EdgesAt returns the edges leaving the i-th node. The returned slice is
// shared with the graph and must not be modified.
func (g *Graph) EdgesAt(i int) []Edge {
	return g.edges[i]
}

// Degree returns the number of edges leaving c.
func (g *Graph) Degree(c Coordinate) int {
	i, ok := g.IndexOf(c)
	if !ok {
		return 0
	}
	return len(g.edges[i])
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n
}
