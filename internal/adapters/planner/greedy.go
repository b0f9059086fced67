package planner

import (
	"context"
	"gold-route-service/internal/domain"
	"gold-route-service/internal/ports"
	"math/rand"
	"time"
)

// Greedy is the reference Planner: repeated collection runs from the
// depot, each time steering to the nearest not-yet-visited node that
// still holds gold, returning to the depot after MaxStops pickups.
//
// It minimizes immediate travel distance at each step and does not
// attempt global optimization; the design prioritizes determinism and
// simplicity over optimality. The seed only matters when several
// candidates are at the exact same distance.
type Greedy struct {
	Paths ports.PathFinder
	// Pickups per trip before returning to the depot. Zero means
	// unlimited (a single trip covering everything reachable).
	MaxStops int
}

func NewGreedy(paths ports.PathFinder) *Greedy {
	return &Greedy{Paths: paths, MaxStops: 8}
}

// Plan builds trips until every reachable gold node is routed or the
// budget runs out. Honoring the budget is this planner's own job: the
// deadline is checked between greedy steps, and whatever trips are
// complete by then are returned.
func (p *Greedy) Plan(
	ctx context.Context,
	prob *domain.Problem,
	budget time.Duration,
	seed int64,
) (domain.Solution, error) {
	g := prob.Graph
	deadline := time.Now().Add(budget)
	rng := rand.New(rand.NewSource(seed))

	remaining := make(map[int]bool)
	for _, id := range g.Nodes() {
		if id != domain.Origin && g.Gold(id) > 0 {
			remaining[id] = true
		}
	}

	var sol domain.Solution
	stops := []int{domain.Origin}
	pickups := []float64{0}

	closeTrip := func() {
		if len(stops) < 2 {
			return
		}
		stops = append(stops, domain.Origin)
		pickups = append(pickups, 0)
		sol.Trips = append(sol.Trips, domain.Trip{Stops: stops, Pickups: pickups})
		stops = []int{domain.Origin}
		pickups = []float64{0}
	}

	for len(remaining) > 0 {
		if time.Now().After(deadline) {
			break
		}

		current := stops[len(stops)-1]
		candidates := make([]int, 0, len(remaining))
		for id := range remaining {
			candidates = append(candidates, id)
		}
		// Shuffle before scanning so exact distance ties resolve by seed
		// rather than map order.
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		best := -1
		bestDist := 0.0
		for _, id := range candidates {
			route, err := p.Paths.ShortestPath(ctx, prob, current, id)
			if err != nil {
				delete(remaining, id)
				continue
			}
			d := routeDist(g, route)
			if best == -1 || d < bestDist {
				best = id
				bestDist = d
			}
		}
		if best == -1 {
			break
		}

		stops = append(stops, best)
		pickups = append(pickups, g.Gold(best))
		delete(remaining, best)

		if p.MaxStops > 0 && len(stops)-1 >= p.MaxStops {
			closeTrip()
		}
	}

	closeTrip()
	return sol, nil
}

func routeDist(g *domain.Graph, route []int) float64 {
	var total float64
	for i := 1; i < len(route); i++ {
		if d, ok := g.EdgeDist(route[i-1], route[i]); ok {
			total += d
		}
	}
	return total
}
