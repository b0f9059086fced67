package ports

import (
	"context"
	"errors"
	"gold-route-service/internal/domain"
)

// ErrNoRoute signals that no path exists between two nodes, or that one of
// them is not in the graph.
var ErrNoRoute = errors.New("no route between nodes")

// Contract for shortest-path lookups over a problem's graph.
type PathFinder interface {
	// ShortestPath returns the node sequence of a minimum-distance path
	// from one node to another, both endpoints included. Unreachable or
	// unknown pairs return ErrNoRoute.
	ShortestPath(ctx context.Context, prob *domain.Problem, from, to int) ([]int, error)
}
