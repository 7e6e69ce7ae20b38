package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/consentmap/consentmap/internal/persistence"
	"github.com/consentmap/consentmap/internal/projects"
	"github.com/consentmap/consentmap/internal/session"
	"github.com/consentmap/consentmap/internal/views"
	"github.com/consentmap/consentmap/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// openKV selects the persistence backend from the environment.
//
//	STORE_BACKEND: sqlite (default), badger, memory
//	DB_PATH:       database file (sqlite) or directory (badger)
func openKV() (persistence.KV, error) {
	backend := getEnv("STORE_BACKEND", "sqlite")
	switch backend {
	case "sqlite":
		return persistence.NewSQLite(getEnv("DB_PATH", "./data/consentmap.db"))
	case "badger":
		return persistence.NewBadger(getEnv("DB_PATH", "./data/consentmap"))
	case "memory":
		return persistence.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

func main() {
	logging.Setup()

	kv, err := openKV()
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	sess := session.New(kv)
	store := projects.New(kv, projects.DemoSeed)

	if user := sess.Current(); user != nil {
		slog.Info("Signed in", "email", user.Email, "role", user.Role)
	} else {
		slog.Info("No active session")
	}

	for _, p := range store.Projects() {
		s := views.Summarize(p)
		slog.Info("Project",
			"id", p.ID,
			"name", p.Name,
			"status", p.Status,
			"progress_percent", s.ProgressPercent,
			"persons", s.PersonCount,
			"images", s.ImageCount,
			"consents", s.ConsentedPersonCount,
		)
	}

	// With METRICS_ADDR set, stay up and expose prometheus metrics.
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		slog.Info("Metrics server starting", "address", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("Metrics server failed", "error", err)
			os.Exit(1)
		}
	}
}
