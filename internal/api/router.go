package api

import (
	"gold-route-service/internal/api/handlers"
	"gold-route-service/internal/ports"
	"net/http"
	"time"

	"github.com/rs/cors"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.ProblemRepository,
	planner ports.Planner,
	paths ports.PathFinder,
	maxBudget time.Duration,
) http.Handler {
	mux := http.NewServeMux()

	problemHandler := &handlers.ProblemHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Repo:      repo,
		Planner:   planner,
		Paths:     paths,
		MaxBudget: maxBudget,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/problems", problemHandler.List)
	mux.HandleFunc("/routes", routeHandler.Assemble)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	return loggingMiddleware(c.Handler(mux))
}
