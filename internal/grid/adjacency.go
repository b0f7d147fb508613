package grid

import "fmt"

// distanceTolerance is the relative slack allowed below the great-circle
// distance, covering rounding in externally computed lengths.
const distanceTolerance = 1e-9

// Neighbor is one entry of a node's adjacency list.
type Neighbor struct {
	Node       Coordinate `json:"node" msgpack:"node"`
	DistanceKm float64    `json:"distanceKm" msgpack:"km"`
}

// Adjacency is the boundary representation of a graph node: the node and its
// ordered outgoing neighbors. A []Adjacency is what persistence and
// visualization collaborators exchange.
type Adjacency struct {
	Node      Coordinate `json:"node" msgpack:"node"`
	Neighbors []Neighbor `json:"neighbors" msgpack:"neighbors"`
}

// Adjacency returns g in boundary form, nodes in iteration order.
func (g *Graph) Adjacency() []Adjacency {
	if g == nil {
		return nil
	}
	out := make([]Adjacency, len(g.nodes))
	for i, n := range g.nodes {
		nbs := make([]Neighbor, len(g.edges[i]))
		for j, e := range g.edges[i] {
			nbs[j] = Neighbor{Node: e.To, DistanceKm: e.DistanceKm}
		}
		out[i] = Adjacency{Node: n, Neighbors: nbs}
	}
	return out
}

// FromAdjacency assembles a Graph from its boundary form. Nodes keep the
// order of adj. Every neighbor must itself be listed as a node, and no edge
// may be shorter than the great-circle distance between its endpoints.
func FromAdjacency(adj []Adjacency) (*Graph, error) {
	g := newGraph(len(adj))
	for _, a := range adj {
		if err := a.Node.Validate(); err != nil {
			return nil, err
		}
		if _, added := g.addNode(a.Node); !added {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateNode, a.Node)
		}
	}

	for i, a := range adj {
		if len(a.Neighbors) == 0 {
			continue
		}
		edges := make([]Edge, 0, len(a.Neighbors))
		for _, nb := range a.Neighbors {
			if !g.Has(nb.Node) {
				return nil, fmt.Errorf("%w: %v -> %v", ErrUnknownNode, a.Node, nb.Node)
			}
			if !finite(nb.DistanceKm) || nb.DistanceKm < 0 {
				return nil, fmt.Errorf("%w: %v -> %v has %v km", ErrInvalidDistance, a.Node, nb.Node, nb.DistanceKm)
			}
			if gc := DistanceKm(a.Node, nb.Node); nb.DistanceKm < gc*(1-distanceTolerance) {
				return nil, fmt.Errorf("%w: %v -> %v has %v km, shorter than great-circle %v km",
					ErrInvalidDistance, a.Node, nb.Node, nb.DistanceKm, gc)
			}
			edges = append(edges, Edge{From: a.Node, To: nb.Node, DistanceKm: nb.DistanceKm})
		}
		g.edges[i] = edges
	}
	return g, nil
}
