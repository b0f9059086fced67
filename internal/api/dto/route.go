package dto

type RouteRequest struct {
	ProblemID   string  `json:"problem_id"`
	TimeBudgetS float64 `json:"time_budget_s"`
	Seed        *int64  `json:"seed"`
}

type WaypointResponse struct {
	Node int     `json:"node"`
	Gold float64 `json:"gold"`
}

type RouteResponse struct {
	ProblemID string             `json:"problem_id"`
	Waypoints []WaypointResponse `json:"waypoints"`
	TotalGold float64            `json:"total_gold"`
}
