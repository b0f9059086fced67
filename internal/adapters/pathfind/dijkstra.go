package pathfind

import (
	"container/heap"
	"context"
	"fmt"
	"gold-route-service/internal/domain"
	"gold-route-service/internal/ports"
)

// Dijkstra is the in-memory PathFinder: binary-heap Dijkstra over the
// problem graph using edge distance as weight. Cost ties resolve toward
// the lower node id, so the same graph always yields the same path.
type Dijkstra struct{}

func NewDijkstra() *Dijkstra {
	return &Dijkstra{}
}

type heapItem struct {
	node int
	dist float64
}

type distHeap []heapItem

func (h distHeap) Len() int { return len(h) }

func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node
}

func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ShortestPath returns the minimum-distance node sequence from one node
// to another, both endpoints included. Unknown or disconnected pairs
// yield ports.ErrNoRoute.
func (d *Dijkstra) ShortestPath(ctx context.Context, prob *domain.Problem, from, to int) ([]int, error) {
	g := prob.Graph
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil, fmt.Errorf("shortest path %d -> %d: %w", from, to, ports.ErrNoRoute)
	}
	if from == to {
		return []int{from}, nil
	}

	dist := map[int]float64{from: 0}
	prev := map[int]int{}
	settled := map[int]bool{}

	pq := &distHeap{{node: from, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(heapItem)
		if settled[cur.node] {
			continue
		}
		settled[cur.node] = true

		if cur.node == to {
			break
		}

		for _, e := range g.Neighbors(cur.node) {
			next := cur.dist + e.Dist
			if best, seen := dist[e.To]; !seen || next < best {
				dist[e.To] = next
				prev[e.To] = cur.node
				heap.Push(pq, heapItem{node: e.To, dist: next})
			}
		}
	}

	if !settled[to] {
		return nil, fmt.Errorf("shortest path %d -> %d: %w", from, to, ports.ErrNoRoute)
	}

	// Walk predecessors back from the target.
	path := []int{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
