package dto

type ProblemResponse struct {
	ProblemID string `json:"problem_id"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

type ListProblemsResponse struct {
	Problems []ProblemResponse `json:"problems"`
}
