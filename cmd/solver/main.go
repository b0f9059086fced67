package main

import (
	"context"
	"flag"
	"fmt"
	"gold-route-service/internal/adapters/pathfind"
	"gold-route-service/internal/adapters/planner"
	"gold-route-service/internal/problemgen"
	"gold-route-service/internal/services"
	"log"
	"time"
)

// One-shot solver: generate a random problem instance, run the greedy
// planner through the route assembler, and print a summary of the result.
func main() {
	nodes := flag.Int("nodes", 10, "number of graph nodes, depot included")
	alpha := flag.Float64("alpha", 1.0, "gold scaling factor")
	beta := flag.Float64("beta", 1.0, "distance scaling factor")
	density := flag.Float64("density", 0.5, "edge probability beyond the connecting chain")
	seed := flag.Int64("seed", 42, "random seed for generation and planning")
	budget := flag.Duration("budget", 20*time.Minute, "planner time budget")
	flag.Parse()

	prob, err := problemgen.Generate(problemgen.Params{
		Nodes:   *nodes,
		Alpha:   *alpha,
		Beta:    *beta,
		Density: *density,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	paths := pathfind.NewDijkstra()
	solver := planner.NewGreedy(paths)

	path := services.AssembleRoute(context.Background(), prob, solver, paths, services.AssembleRequest{
		Budget: *budget,
		Seed:   *seed,
	})

	fmt.Printf("problem=%s waypoints=%d gold=%.2f\n", prob.ID, len(path), path.TotalGold())
	for i, wp := range path {
		if i >= 4 && i < len(path)-2 {
			if i == 4 {
				fmt.Println("...")
			}
			continue
		}
		fmt.Printf("  (%d, %.2f)\n", wp.Node, wp.Gold)
	}
}
