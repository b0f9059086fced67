package services

import (
	"context"
	"gold-route-service/internal/adapters/pathfind"
	"gold-route-service/internal/domain"
	"testing"
)

func TestBaselinePathRoundTrips(t *testing.T) {
	prob := chainProblem()
	path := BaselinePath(context.Background(), prob, pathfind.NewDijkstra())

	// (0,0) (1,5) (0,0) (1,0) (2,7) (1,0) (0,0) (0,0)
	want := domain.Path{
		{Node: 0, Gold: 0},
		{Node: 1, Gold: 5},
		{Node: 0, Gold: 0},
		{Node: 1, Gold: 0},
		{Node: 2, Gold: 7},
		{Node: 1, Gold: 0},
		{Node: 0, Gold: 0},
		{Node: 0, Gold: 0},
	}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}

	if !Admissible(prob.Graph, path) {
		t.Fatalf("baseline must be admissible")
	}
	if !path.Terminal() {
		t.Fatalf("baseline must end at (0,0)")
	}
}

func TestBaselinePathSkipsUnreachableNodes(t *testing.T) {
	g := chainGraph()
	g.AddNode(3, 100) // isolated, silently skipped
	prob := &domain.Problem{ID: "island", Graph: g}

	path := BaselinePath(context.Background(), prob, pathfind.NewDijkstra())

	for _, wp := range path {
		if wp.Node == 3 {
			t.Fatalf("unreachable node 3 must not appear, got %v", path)
		}
	}
	if !Admissible(g, path) {
		t.Fatalf("baseline with skipped nodes must stay admissible")
	}
}

func TestBaselinePathOriginOnlyGraph(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode(0, 0)
	prob := &domain.Problem{ID: "lonely", Graph: g}

	path := BaselinePath(context.Background(), prob, pathfind.NewDijkstra())

	want := domain.Path{{Node: 0, Gold: 0}, {Node: 0, Gold: 0}}
	if len(path) != len(want) || path[0] != want[0] || path[1] != want[1] {
		t.Fatalf("path = %v, want %v", path, want)
	}
}

func TestBaselinePathDeterministic(t *testing.T) {
	prob := chainProblem()
	finder := pathfind.NewDijkstra()

	first := BaselinePath(context.Background(), prob, finder)
	for run := 0; run < 5; run++ {
		again := BaselinePath(context.Background(), prob, finder)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d, want %d", run, len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: path[%d] = %v, want %v", run, i, again[i], first[i])
			}
		}
	}
}
