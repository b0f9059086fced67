package planner

import (
	"context"
	"gold-route-service/internal/domain"
	"time"
)

// Static is a canned Planner for tests: it returns a fixed solution (or a
// fixed error) regardless of the problem.
type Static struct {
	Solution domain.Solution
	Err      error
}

func (p *Static) Plan(ctx context.Context, prob *domain.Problem, budget time.Duration, seed int64) (domain.Solution, error) {
	if p.Err != nil {
		return domain.Solution{}, p.Err
	}
	return p.Solution, nil
}
