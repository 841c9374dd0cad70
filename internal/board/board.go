package board

import "fmt"

// NodeID identifies a map node. Node identity is the id; names are display-only.
type NodeID int

// Conveyance is the category of a map edge and of the matching ticket.
type Conveyance string

const (
	Auto  Conveyance = "auto"
	Bus   Conveyance = "bus"
	Metro Conveyance = "metro"
	Ferry Conveyance = "ferry"
)

// Conveyances lists all edge types in a stable order.
var Conveyances = []Conveyance{Auto, Bus, Metro, Ferry}

// Node is an immutable map location.
type Node struct {
	ID   NodeID `json:"id"`
	Name string `json:"name"`
}

// Edge is a one-way typed connection. Logical connections are undirected;
// NewGraph mirrors every edge so both directions are present.
type Edge struct {
	From NodeID     `json:"from"`
	To   NodeID     `json:"to"`
	Via  Conveyance `json:"via"`
}

// Hop is an outgoing connection as seen from a node.
type Hop struct {
	To  NodeID
	Via Conveyance
}

// Graph is an immutable transport map with O(1) adjacency lookup.
type Graph struct {
	nodes map[NodeID]Node
	adj   map[NodeID][]Hop
}

// NewGraph builds a graph from nodes and logical (one-way) edges. Every edge
// is mirrored so direction-agnostic queries never need a full scan.
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make(map[NodeID]Node, len(nodes)),
		adj:   make(map[NodeID][]Hop, len(nodes)),
	}
	for _, n := range nodes {
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %d", n.ID)
		}
		g.nodes[n.ID] = n
	}
	for _, e := range edges {
		if _, ok := g.nodes[e.From]; !ok {
			return nil, fmt.Errorf("edge %d-%d: unknown node %d", e.From, e.To, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return nil, fmt.Errorf("edge %d-%d: unknown node %d", e.From, e.To, e.To)
		}
		g.adj[e.From] = append(g.adj[e.From], Hop{To: e.To, Via: e.Via})
		g.adj[e.To] = append(g.adj[e.To], Hop{To: e.From, Via: e.Via})
	}
	return g, nil
}

// Node looks up a node by id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgesFrom returns all outgoing hops from a node. Callers must not modify
// the returned slice.
func (g *Graph) EdgesFrom(id NodeID) []Hop {
	return g.adj[id]
}

// HasEdge reports whether any edge of any conveyance connects from to to.
func (g *Graph) HasEdge(from, to NodeID) bool {
	for _, h := range g.adj[from] {
		if h.To == to {
			return true
		}
	}
	return false
}

// HasEdgeVia reports whether an edge of the given conveyance connects from to to.
func (g *Graph) HasEdgeVia(from, to NodeID, via Conveyance) bool {
	for _, h := range g.adj[from] {
		if h.To == to && h.Via == via {
			return true
		}
	}
	return false
}

// Map bundles a graph with the per-map game parameters: the disjoint start
// pools for each role, the rounds on which the fugitive's position is
// disclosed, and the round limit after which the fugitive wins by evasion.
type Map struct {
	ID             string
	Graph          *Graph
	FugitiveStarts []NodeID
	TrackerStarts  []NodeID
	RevealRounds   []int
	RoundLimit     int
}
