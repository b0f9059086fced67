package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProblemsQuery := `
	CREATE TABLE IF NOT EXISTS problems (
		problem_id TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT ''
	);
	`

	createNodesQuery := `
	CREATE TABLE IF NOT EXISTS problem_nodes (
		problem_id TEXT NOT NULL REFERENCES problems(problem_id) ON DELETE CASCADE,
		node_id INTEGER NOT NULL,
		gold DOUBLE PRECISION NOT NULL DEFAULT 0,
		PRIMARY KEY (problem_id, node_id)
	);
	`

	createEdgesQuery := `
	CREATE TABLE IF NOT EXISTS problem_edges (
		problem_id TEXT NOT NULL REFERENCES problems(problem_id) ON DELETE CASCADE,
		from_node INTEGER NOT NULL,
		to_node INTEGER NOT NULL,
		dist DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (problem_id, from_node, to_node)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_problem_edges_problem
	ON problem_edges(problem_id);
	`

	statements := []string{
		createProblemsQuery,
		createNodesQuery,
		createEdgesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type NodeSeed struct {
	NodeID int     `json:"node_id"`
	Gold   float64 `json:"gold"`
}

type EdgeSeed struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Dist float64 `json:"dist"`
}

type ProblemSeed struct {
	ProblemID   string     `json:"problem_id"`
	Description string     `json:"description"`
	Nodes       []NodeSeed `json:"nodes"`
	Edges       []EdgeSeed `json:"edges"`
}

// Populate the database with problem instances from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed problems: read %q: %w", jsonPath, err)
	}

	var data []ProblemSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed problems: parse json: %w", err)
	}

	for i, p := range data {
		if strings.TrimSpace(p.ProblemID) == "" {
			return fmt.Errorf("seed problems: empty problem_id at index %d", i)
		}
		hasOrigin := false
		for _, n := range p.Nodes {
			if n.NodeID == 0 {
				hasOrigin = true
			}
			if n.NodeID < 0 {
				return fmt.Errorf("seed problems: %q: negative node_id %d", p.ProblemID, n.NodeID)
			}
		}
		if !hasOrigin {
			return fmt.Errorf("seed problems: %q: missing origin node 0", p.ProblemID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed problems: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	problemStmt, err := tx.Prepare(`
	INSERT INTO problems (problem_id, description)
	VALUES ($1, $2)
	ON CONFLICT (problem_id) DO UPDATE SET description = EXCLUDED.description;
	`)
	if err != nil {
		return fmt.Errorf("seed problems: prepare problem insert: %w", err)
	}
	defer problemStmt.Close()

	nodeStmt, err := tx.Prepare(`
	INSERT INTO problem_nodes (problem_id, node_id, gold)
	VALUES ($1, $2, $3)
	ON CONFLICT (problem_id, node_id) DO UPDATE SET gold = EXCLUDED.gold;
	`)
	if err != nil {
		return fmt.Errorf("seed problems: prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	edgeStmt, err := tx.Prepare(`
	INSERT INTO problem_edges (problem_id, from_node, to_node, dist)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (problem_id, from_node, to_node) DO UPDATE SET dist = EXCLUDED.dist;
	`)
	if err != nil {
		return fmt.Errorf("seed problems: prepare edge insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, p := range data {
		if _, err := problemStmt.Exec(p.ProblemID, p.Description); err != nil {
			return fmt.Errorf("seed problems: insert problem_id=%q: %w", p.ProblemID, err)
		}
		for _, n := range p.Nodes {
			if _, err := nodeStmt.Exec(p.ProblemID, n.NodeID, n.Gold); err != nil {
				return fmt.Errorf("seed problems: insert node %d of %q: %w", n.NodeID, p.ProblemID, err)
			}
		}
		for _, e := range p.Edges {
			if _, err := edgeStmt.Exec(p.ProblemID, e.From, e.To, e.Dist); err != nil {
				return fmt.Errorf("seed problems: insert edge %d-%d of %q: %w", e.From, e.To, p.ProblemID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed problems: commit tx: %w", err)
	}

	return nil
}
