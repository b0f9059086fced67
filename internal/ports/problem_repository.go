package ports

import (
	"context"
	"gold-route-service/internal/domain"
)

// Summary of a stored problem instance.
type ProblemInfo struct {
	ID        string
	NodeCount int
	EdgeCount int
}

// Port: a boundary for retrieving Problem instances from a data source.
type ProblemRepository interface {
	// Retrieve one problem instance, graph included.
	GetProblem(ctx context.Context, id string) (*domain.Problem, error)
	// List all stored problem instances.
	ListProblems(ctx context.Context) ([]ProblemInfo, error)
}
