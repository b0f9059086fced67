package handlers

import (
	"gold-route-service/internal/api/dto"
	"gold-route-service/internal/ports"
	"log"
	"net/http"
)

// ProblemHandler exposes read-only problem retrieval endpoints.
type ProblemHandler struct {
	Repo ports.ProblemRepository
}

func (h *ProblemHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	infos, err := h.Repo.ListProblems(r.Context())
	if err != nil {
		log.Printf("list problems failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListProblemsResponse{
		Problems: make([]dto.ProblemResponse, 0, len(infos)),
	}
	for _, info := range infos {
		res.Problems = append(res.Problems, dto.ProblemResponse{
			ProblemID: info.ID,
			NodeCount: info.NodeCount,
			EdgeCount: info.EdgeCount,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
