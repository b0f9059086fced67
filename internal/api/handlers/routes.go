package handlers

import (
	"encoding/json"
	"gold-route-service/internal/api/dto"
	"gold-route-service/internal/ports"
	"gold-route-service/internal/services"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type RouteHandler struct {
	Repo    ports.ProblemRepository
	Planner ports.Planner
	Paths   ports.PathFinder
	// Upper bound on the planner budget a single request may claim.
	MaxBudget time.Duration
}

// Assemble runs the full pipeline for one stored problem: planner, trip
// expansion, validation, fallback. The response is always a valid route;
// a bad planner outcome degrades to the baseline rather than an error.
func (h *RouteHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	problemID := strings.TrimSpace(req.ProblemID)
	if problemID == "" {
		writeError(w, r, http.StatusBadRequest, "problem_id is required")
		return
	}

	budget := time.Duration(req.TimeBudgetS * float64(time.Second))
	if budget <= 0 {
		budget = 2 * time.Second
	}
	if h.MaxBudget > 0 && budget > h.MaxBudget {
		writeError(w, r, http.StatusBadRequest, "time_budget_s exceeds the server limit")
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	prob, err := h.Repo.GetProblem(r.Context(), problemID)
	if err != nil {
		log.Printf("get problem failed: id=%s err=%v", problemID, err)
		writeError(w, r, http.StatusNotFound, "problem not found")
		return
	}

	path := services.AssembleRoute(r.Context(), prob, h.Planner, h.Paths, services.AssembleRequest{
		Budget: budget,
		Seed:   seed,
	})

	res := dto.RouteResponse{
		ProblemID: problemID,
		Waypoints: make([]dto.WaypointResponse, 0, len(path)),
		TotalGold: path.TotalGold(),
	}
	for _, wp := range path {
		res.Waypoints = append(res.Waypoints, dto.WaypointResponse{Node: wp.Node, Gold: wp.Gold})
	}

	writeJSON(w, r, http.StatusOK, res)
}
