package services

import (
	"context"
	"fmt"
	"gold-route-service/internal/domain"
	"gold-route-service/internal/ports"
)

// ExpandTrip turns a logical stop sequence into a fully edge-connected
// path by inserting a shortest-path segment between each consecutive pair
// of stops.
//
// Pickup placement: the first stop's pickup is attached to the very first
// emitted waypoint; for every segment the intermediate nodes carry zero
// and the destination stop's pickup is attached to the segment's final
// node. Each pickup therefore appears exactly once even when segments
// overlap.
//
// Any unreachable or unknown stop pair fails the whole expansion. The
// caller is expected to fall back rather than surface the error.
func ExpandTrip(
	ctx context.Context,
	prob *domain.Problem,
	stops []int,
	pickups []float64,
	finder ports.PathFinder,
) (domain.Path, error) {
	if len(stops) != len(pickups) {
		return nil, fmt.Errorf("expand trip: %d stops but %d pickups", len(stops), len(pickups))
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("expand trip: need at least 2 stops, got %d", len(stops))
	}

	out := make(domain.Path, 0, len(stops))
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]

		full, err := finder.ShortestPath(ctx, prob, a, b)
		if err != nil {
			return nil, fmt.Errorf("expand trip: segment %d -> %d: %w", a, b, err)
		}

		if i == 0 {
			out = append(out, domain.Waypoint{Node: full[0], Gold: pickups[0]})
		}
		for j := 1; j < len(full); j++ {
			var gold float64
			if j == len(full)-1 {
				gold = pickups[i+1]
			}
			out = append(out, domain.Waypoint{Node: full[j], Gold: gold})
		}
	}

	return out, nil
}
