package services

import (
	"context"
	"gold-route-service/internal/domain"
	"gold-route-service/internal/ports"
)

// BaselinePath builds the fallback path: a round trip from the origin to
// every reachable node in ascending id order, collecting each node's full
// gold on arrival. Nodes unreachable in either direction are skipped, so
// the function cannot fail; the result is admissible by construction and
// fully deterministic for a given graph.
//
// A graph holding only the origin yields the minimal closed path
// [(0,0), (0,0)].
func BaselinePath(ctx context.Context, prob *domain.Problem, finder ports.PathFinder) domain.Path {
	g := prob.Graph
	out := domain.Path{{Node: domain.Origin, Gold: 0}}

	for _, id := range g.Nodes() {
		if id == domain.Origin {
			continue
		}

		// Unreachable in either direction: skip the node. Partial coverage
		// is fine, the contract is a valid path, not a complete tour.
		outbound, err := finder.ShortestPath(ctx, prob, domain.Origin, id)
		if err != nil {
			continue
		}
		inbound, err := finder.ShortestPath(ctx, prob, id, domain.Origin)
		if err != nil {
			continue
		}

		for j := 1; j < len(outbound); j++ {
			var gold float64
			if j == len(outbound)-1 {
				gold = g.Gold(id)
			}
			out = append(out, domain.Waypoint{Node: outbound[j], Gold: gold})
		}
		for j := 1; j < len(inbound); j++ {
			out = append(out, domain.Waypoint{Node: inbound[j], Gold: 0})
		}
	}

	out = append(out, domain.Waypoint{Node: domain.Origin, Gold: 0})
	return out
}
