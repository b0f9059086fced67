package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"gold-route-service/internal/domain"
	"gold-route-service/internal/ports"
)

// Postgres-backed implementation of the ProblemRepository port.
type PostgresProblemRepository struct{ DB *sql.DB }

func NewPostgresProblemRepository(db *sql.DB) *PostgresProblemRepository {
	return &PostgresProblemRepository{DB: db}
}

// GetProblem loads one instance, nodes and edges included. Rows are read
// in id order so repeated loads build identical graphs; the baseline path
// depends on that.
func (r *PostgresProblemRepository) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	if r.DB == nil {
		return nil, errors.New("problem repository: DB is nil")
	}

	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM problems WHERE problem_id = $1);`, id,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("get problem %q: query problems table: %w", id, err)
	}
	if !exists {
		return nil, fmt.Errorf("get problem %q: not found", id)
	}

	g := domain.NewGraph()

	nodeQuery := `
	SELECT node_id, gold
	FROM problem_nodes
	WHERE problem_id = $1
	ORDER BY node_id;
	`
	rows, err := r.DB.QueryContext(ctx, nodeQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get problem %q: query problem_nodes table: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var nodeID int
		var gold float64
		if err := rows.Scan(&nodeID, &gold); err != nil {
			return nil, fmt.Errorf("get problem %q: scan node row: %w", id, err)
		}
		g.AddNode(nodeID, gold)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get problem %q: node row iteration: %w", id, err)
	}

	edgeQuery := `
	SELECT from_node, to_node, dist
	FROM problem_edges
	WHERE problem_id = $1
	ORDER BY from_node, to_node;
	`
	rows, err = r.DB.QueryContext(ctx, edgeQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get problem %q: query problem_edges table: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var from, to int
		var dist float64
		if err := rows.Scan(&from, &to, &dist); err != nil {
			return nil, fmt.Errorf("get problem %q: scan edge row: %w", id, err)
		}
		g.AddEdge(from, to, dist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get problem %q: edge row iteration: %w", id, err)
	}

	return &domain.Problem{ID: id, Graph: g}, nil
}

// ListProblems returns a summary of every stored instance.
func (r *PostgresProblemRepository) ListProblems(ctx context.Context) ([]ports.ProblemInfo, error) {
	if r.DB == nil {
		return nil, errors.New("problem repository: DB is nil")
	}

	query := `
	SELECT
		p.problem_id,
		COUNT(DISTINCT n.node_id) AS node_count,
		COUNT(DISTINCT e.from_node || '-' || e.to_node) AS edge_count
	FROM problems p
	LEFT JOIN problem_nodes n ON n.problem_id = p.problem_id
	LEFT JOIN problem_edges e ON e.problem_id = p.problem_id
	GROUP BY p.problem_id
	ORDER BY p.problem_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list problems: query: %w", err)
	}
	defer rows.Close()

	infos := make([]ports.ProblemInfo, 0, 16)
	for rows.Next() {
		var info ports.ProblemInfo
		if err := rows.Scan(&info.ID, &info.NodeCount, &info.EdgeCount); err != nil {
			return nil, fmt.Errorf("list problems: scan row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list problems: row iteration: %w", err)
	}

	return infos, nil
}
