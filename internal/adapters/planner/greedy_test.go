package planner

import (
	"context"
	"gold-route-service/internal/adapters/pathfind"
	"gold-route-service/internal/domain"
	"testing"
	"time"
)

func lineProblem() *domain.Problem {
	// 0 -1- 1 -1- 2 -1- 3, gold grows with distance
	g := domain.NewGraph()
	g.AddNode(0, 0)
	g.AddNode(1, 10)
	g.AddNode(2, 20)
	g.AddNode(3, 30)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	return &domain.Problem{ID: "line", Graph: g}
}

func TestGreedyVisitsEveryGoldNodeOnce(t *testing.T) {
	p := NewGreedy(pathfind.NewDijkstra())
	sol, err := p.Plan(context.Background(), lineProblem(), time.Minute, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sol.Trips) == 0 {
		t.Fatalf("expected at least one trip")
	}

	visited := map[int]float64{}
	for _, trip := range sol.Trips {
		if len(trip.Stops) != len(trip.Pickups) {
			t.Fatalf("trip stops/pickups length mismatch: %v vs %v", trip.Stops, trip.Pickups)
		}
		if trip.Stops[0] != domain.Origin || trip.Stops[len(trip.Stops)-1] != domain.Origin {
			t.Fatalf("trip must start and end at the depot: %v", trip.Stops)
		}
		for i, s := range trip.Stops {
			visited[s] += trip.Pickups[i]
		}
	}

	for _, id := range []int{1, 2, 3} {
		want := float64(id * 10)
		if visited[id] != want {
			t.Errorf("node %d pickup = %v, want %v", id, visited[id], want)
		}
	}
}

func TestGreedyOrdersByDistance(t *testing.T) {
	p := NewGreedy(pathfind.NewDijkstra())
	sol, err := p.Plan(context.Background(), lineProblem(), time.Minute, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stops := sol.Trips[0].Stops
	want := []int{0, 1, 2, 3, 0}
	if len(stops) != len(want) {
		t.Fatalf("stops = %v, want %v", stops, want)
	}
	for i := range want {
		if stops[i] != want[i] {
			t.Fatalf("stops = %v, want %v", stops, want)
		}
	}
}

func TestGreedySkipsUnreachableGold(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode(0, 0)
	g.AddNode(1, 10)
	g.AddNode(9, 99) // no edges
	g.AddEdge(0, 1, 1)
	prob := &domain.Problem{ID: "island", Graph: g}

	p := NewGreedy(pathfind.NewDijkstra())
	sol, err := p.Plan(context.Background(), prob, time.Minute, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, trip := range sol.Trips {
		for _, s := range trip.Stops {
			if s == 9 {
				t.Fatalf("unreachable node 9 must not be planned: %v", trip.Stops)
			}
		}
	}
}

func TestGreedySplitsTripsAtMaxStops(t *testing.T) {
	p := NewGreedy(pathfind.NewDijkstra())
	p.MaxStops = 2
	sol, err := p.Plan(context.Background(), lineProblem(), time.Minute, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sol.Trips) != 2 {
		t.Fatalf("expected 2 trips for 3 gold nodes with MaxStops=2, got %d", len(sol.Trips))
	}
	for _, trip := range sol.Trips {
		if len(trip.Stops)-2 > 2 {
			t.Fatalf("trip exceeds MaxStops: %v", trip.Stops)
		}
	}
}
