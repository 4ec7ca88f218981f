package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"tapfolio/internal/api"
	"tapfolio/internal/db"
	"tapfolio/internal/kb"
	"tapfolio/internal/logger"
	"tapfolio/internal/refine"
)

var version = "dev"

func main() {
	port := flag.Int("port", 8390, "HTTP server port")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	logger.Banner(version)

	// Open SQLite database
	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	// Load config from SQLite
	cfg := database.LoadConfig()

	engine, err := kb.NewEngine(kb.Corpus, kb.Routes, cfg.Thresholds)
	if err != nil {
		logger.Error("KB", fmt.Sprintf("Bad knowledge base: %v", err))
		os.Exit(1)
	}

	refiner := refine.New(envOrDefault("OPENAI_API_KEY", ""), cfg.RefineModel)

	logger.Section("Support engine")
	logger.Stats("Entries", engine.Size())
	logger.Stats("Routes", len(kb.Routes))
	if refiner != nil {
		logger.Stats("Refiner", cfg.RefineModel)
	} else {
		logger.Warn("REFINE", "OPENAI_API_KEY not set, answer refinement disabled")
	}

	srv := api.NewServer(cfg, engine, database, refiner, version)

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
