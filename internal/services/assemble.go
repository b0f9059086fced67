package services

import (
	"context"
	"gold-route-service/internal/domain"
	"gold-route-service/internal/platform/obs"
	"gold-route-service/internal/ports"
	"time"
)

// AssembleRequest carries the opaque planner parameters: a wall-clock
// search budget and a seed for reproducibility. Both are passed through
// to the planner, never interpreted here.
type AssembleRequest struct {
	Budget time.Duration
	Seed   int64
}

// AssembleRoute produces the final path for a problem instance.
//
// It invokes the planner, expands each planned trip into an
// edge-connected segment, concatenates the segments, closes the path at
// the origin, and validates the result. Every failure along the way —
// planner error, no trips, an unexpandable trip, a failed admissibility
// check — is answered with the baseline fallback instead of an error.
// The function is total: it always returns an admissible path.
func AssembleRoute(
	ctx context.Context,
	prob *domain.Problem,
	planner ports.Planner,
	finder ports.PathFinder,
	req AssembleRequest,
) domain.Path {
	defer obs.Time(ctx, "route.assemble")(nil)

	sol, err := planner.Plan(ctx, prob, req.Budget, req.Seed)
	if err != nil || len(sol.Trips) == 0 {
		return BaselinePath(ctx, prob, finder)
	}

	var path domain.Path
	for _, trip := range sol.Trips {
		segment, err := ExpandTrip(ctx, prob, trip.Stops, trip.Pickups, finder)
		if err != nil {
			// Never return a partial result: one bad trip discards the
			// whole assembly.
			return BaselinePath(ctx, prob, finder)
		}
		path = append(path, segment...)
	}

	if len(path) == 0 {
		return BaselinePath(ctx, prob, finder)
	}

	if !path.Terminal() {
		path = append(path, domain.Waypoint{Node: domain.Origin, Gold: 0})
	}

	if !Admissible(prob.Graph, path) {
		return BaselinePath(ctx, prob, finder)
	}

	return path
}
