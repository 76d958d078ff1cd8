package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/graphql-go/handler"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jmallet/plop/internal/graph"
	"github.com/jmallet/plop/internal/middleware"
	"github.com/jmallet/plop/internal/monitoring"
	"github.com/jmallet/plop/internal/service"
	"github.com/jmallet/plop/internal/storage/sqlite"
	"github.com/jmallet/plop/pkg/logging"
)

const appName = "Plop"

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/plop.db")
	port := getEnv("PORT", "8080")

	// Initialize SQLite storage
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	// Build services and the GraphQL schema over them
	userService := service.NewUserService(store)
	itemService := service.NewItemService(store)

	schema, err := graph.NewSchema(userService, itemService, store)
	if err != nil {
		slog.Error("Failed to build schema", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	mux.Handle("/graphql", handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}))

	mux.Handle("/metrics", monitoring.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "healthy"})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, map[string]string{
			"message": fmt.Sprintf("Welcome to %s", appName),
			"graphql": "/graphql",
		})
	})

	// Request ID first so logging and metrics see it
	wrapped := middleware.RequestID(middleware.Logging(monitoring.Middleware(middleware.CORS(mux))))

	// Wrap with h2c for HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(wrapped, &http2.Server{})

	addr := ":" + port
	slog.Info("GraphQL server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s/graphql", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
