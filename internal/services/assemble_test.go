package services

import (
	"context"
	"errors"
	"gold-route-service/internal/adapters/pathfind"
	"gold-route-service/internal/adapters/planner"
	"gold-route-service/internal/domain"
	"testing"
	"time"
)

func assemble(t *testing.T, prob *domain.Problem, p *planner.Static) domain.Path {
	t.Helper()
	path := AssembleRoute(
		context.Background(),
		prob,
		p,
		pathfind.NewDijkstra(),
		AssembleRequest{Budget: time.Second},
	)
	if len(path) == 0 {
		t.Fatalf("assembled path must never be empty")
	}
	if !Admissible(prob.Graph, path) {
		t.Fatalf("assembled path must be admissible: %v", path)
	}
	if !path.Terminal() {
		t.Fatalf("assembled path must end at (0,0): %v", path)
	}
	return path
}

// Scenario: the planner has nothing, the baseline round trip comes back,
// and node 2's gold appears exactly once, attached to node 2.
func TestAssembleRouteNoTripsFallsBackToBaseline(t *testing.T) {
	prob := chainProblem()
	path := assemble(t, prob, &planner.Static{})

	if path[0] != (domain.Waypoint{Node: 0, Gold: 0}) {
		t.Errorf("path must start at (0,0), got %v", path[0])
	}

	var goldAt2 int
	for _, wp := range path {
		if wp.Gold == 7 {
			if wp.Node != 2 {
				t.Errorf("node 2's gold attached to node %d", wp.Node)
			}
			goldAt2++
		}
	}
	if goldAt2 != 1 {
		t.Errorf("node 2's gold appears %d times, want exactly once", goldAt2)
	}
}

// Scenario: a trip routes to an unreachable node; the whole assembly is
// abandoned for the baseline, never a partial result.
func TestAssembleRouteUnreachableTripFallsBack(t *testing.T) {
	g := chainGraph()
	g.AddNode(3, 50) // isolated
	prob := &domain.Problem{ID: "island", Graph: g}

	p := &planner.Static{Solution: domain.Solution{Trips: []domain.Trip{
		{Stops: []int{0, 3}, Pickups: []float64{0, 50}},
	}}}
	path := assemble(t, prob, p)

	for _, wp := range path {
		if wp.Node == 3 {
			t.Fatalf("fallback path must not contain the unreachable node: %v", path)
		}
	}
}

// Scenario: the expanded path already ends at (0,0); no duplicate
// terminal waypoint may be appended.
func TestAssembleRouteNoDuplicateTerminal(t *testing.T) {
	prob := chainProblem()
	p := &planner.Static{Solution: domain.Solution{Trips: []domain.Trip{
		{Stops: []int{0, 2, 0}, Pickups: []float64{0, 7, 0}},
	}}}
	path := assemble(t, prob, p)

	// 0 1 2 1 0 — nothing extra after the closing (0,0).
	if len(path) != 5 {
		t.Fatalf("path = %v, want 5 waypoints", path)
	}
	if path[len(path)-2] == (domain.Waypoint{Node: 0, Gold: 0}) {
		t.Fatalf("terminal (0,0) appended twice: %v", path)
	}
}

func TestAssembleRouteAppendsTerminalWhenMissing(t *testing.T) {
	prob := chainProblem()
	// Trip ends at node 1, which is depot-adjacent; assembly must close
	// the path itself.
	p := &planner.Static{Solution: domain.Solution{Trips: []domain.Trip{
		{Stops: []int{0, 1}, Pickups: []float64{0, 5}},
	}}}
	path := assemble(t, prob, p)

	want := domain.Path{{Node: 0, Gold: 0}, {Node: 1, Gold: 5}, {Node: 0, Gold: 0}}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestAssembleRouteConservesPickups(t *testing.T) {
	prob := chainProblem()
	trips := []domain.Trip{
		{Stops: []int{0, 2, 0}, Pickups: []float64{0, 4, 0}},
		{Stops: []int{0, 1, 0}, Pickups: []float64{0, 2.5, 0}},
		{Stops: []int{0, 2, 0}, Pickups: []float64{0, 3, 0}},
	}
	var planned float64
	for _, trip := range trips {
		for _, q := range trip.Pickups {
			planned += q
		}
	}

	path := assemble(t, prob, &planner.Static{Solution: domain.Solution{Trips: trips}})

	if got := path.TotalGold(); got != planned {
		t.Fatalf("TotalGold = %v, want %v (no pickup duplicated or dropped)", got, planned)
	}
}

func TestAssembleRoutePlannerErrorFallsBack(t *testing.T) {
	prob := chainProblem()
	p := &planner.Static{Err: errors.New("solver blew up")}

	path := assemble(t, prob, p)

	// Planner failure surfaces as the baseline, never as an error.
	base := BaselinePath(context.Background(), prob, pathfind.NewDijkstra())
	if len(path) != len(base) {
		t.Fatalf("path = %v, want baseline %v", path, base)
	}
}

func TestAssembleRouteInvalidExpansionFallsBack(t *testing.T) {
	prob := chainProblem()
	// Second trip starts at node 2, which is not depot-adjacent, so the
	// concatenated path has a 0 -> 2 jump and fails validation.
	p := &planner.Static{Solution: domain.Solution{Trips: []domain.Trip{
		{Stops: []int{0, 1, 0}, Pickups: []float64{0, 5, 0}},
		{Stops: []int{2, 1}, Pickups: []float64{7, 0}},
	}}}
	path := assemble(t, prob, p)

	base := BaselinePath(context.Background(), prob, pathfind.NewDijkstra())
	if len(path) != len(base) {
		t.Fatalf("inadmissible assembly must yield the baseline, got %v", path)
	}
	for i := range base {
		if path[i] != base[i] {
			t.Fatalf("inadmissible assembly must yield the baseline, got %v", path)
		}
	}
}
