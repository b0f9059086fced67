package domain

import "sort"

// Origin is the depot node where every path must start and end.
const Origin = 0

// Weighted connection to a neighboring node.
type Edge struct {
	To   int
	Dist float64
}

// Graph is an undirected weighted graph over integer node ids with an
// optional gold amount per node. It is built once (by a repository or
// generator) and read-only afterwards; the routing core never mutates it.
type Graph struct {
	gold map[int]float64
	adj  map[int][]Edge
}

func NewGraph() *Graph {
	return &Graph{
		gold: make(map[int]float64),
		adj:  make(map[int][]Edge),
	}
}

// AddNode registers a node and the gold available there.
// Re-adding a node overwrites its gold amount.
func (g *Graph) AddNode(id int, gold float64) {
	g.gold[id] = gold
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

// AddEdge connects u and v in both directions with the given distance.
// Unknown endpoints are registered with zero gold.
func (g *Graph) AddEdge(u, v int, dist float64) {
	if _, ok := g.gold[u]; !ok {
		g.AddNode(u, 0)
	}
	if _, ok := g.gold[v]; !ok {
		g.AddNode(v, 0)
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Dist: dist})
	g.adj[v] = append(g.adj[v], Edge{To: u, Dist: dist})
}

func (g *Graph) HasNode(id int) bool {
	_, ok := g.gold[id]
	return ok
}

// HasEdge reports whether u and v are directly connected.
func (g *Graph) HasEdge(u, v int) bool {
	for _, e := range g.adj[u] {
		if e.To == v {
			return true
		}
	}
	return false
}

// EdgeDist returns the distance of the direct edge u-v, if one exists.
func (g *Graph) EdgeDist(u, v int) (float64, bool) {
	for _, e := range g.adj[u] {
		if e.To == v {
			return e.Dist, true
		}
	}
	return 0, false
}

// Gold returns the gold available at a node, 0 for unknown nodes.
func (g *Graph) Gold(id int) float64 {
	return g.gold[id]
}

// Neighbors returns the outgoing edges of a node in insertion order.
// The returned slice is shared; callers must not modify it.
func (g *Graph) Neighbors(id int) []Edge {
	return g.adj[id]
}

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.gold))
	for id := range g.gold {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (g *Graph) NodeCount() int {
	return len(g.gold)
}
