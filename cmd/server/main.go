package main

import (
	"gold-route-service/internal/adapters/cache"
	"gold-route-service/internal/adapters/pathfind"
	"gold-route-service/internal/adapters/planner"
	"gold-route-service/internal/adapters/repositories"
	"gold-route-service/internal/api"
	"gold-route-service/internal/config"
	"gold-route-service/internal/platform/db"
	"gold-route-service/internal/ports"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Dijkstra, Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	maxBudgetRaw := config.Get("MAX_TIME_BUDGET_S", "30")
	maxBudgetS, err := strconv.Atoi(maxBudgetRaw)
	if err != nil || maxBudgetS < 1 {
		log.Fatalf("invalid MAX_TIME_BUDGET_S=%q", maxBudgetRaw)
	}
	maxBudget := time.Duration(maxBudgetS) * time.Second

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	repo := repositories.NewPostgresProblemRepository(database)

	// Shortest paths come from in-memory Dijkstra; a Redis cache in front
	// avoids recomputing them across requests for stored problems.
	var paths ports.PathFinder = pathfind.NewDijkstra()
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		paths = cache.NewRedisPathFinder(client, paths, 24*time.Hour)
		log.Printf("Shortest-path cache enabled addr=%s", addr)
	}

	solver := planner.NewGreedy(paths)
	router := api.NewRouter(repo, solver, paths, maxBudget)

	// Write timeout leaves room for the planner budget on top of
	// serialization.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      maxBudget + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
