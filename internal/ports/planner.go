package ports

import (
	"context"
	"gold-route-service/internal/domain"
	"time"
)

// Contract for the adaptive solver that decides which nodes to visit and
// how much gold to collect at each. Any conforming implementation
// (heuristic, exact, greedy) can be substituted.
type Planner interface {
	// Plan searches for trips within the wall-clock budget. Seed makes the
	// search reproducible. An empty solution is a normal outcome, not an
	// error; callers treat errors the same as an empty solution.
	Plan(ctx context.Context, prob *domain.Problem, budget time.Duration, seed int64) (domain.Solution, error)
}
