// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port          string
	DBPath        string        // SQLite database file
	GeminiAPIKey  string        // empty disables resume generation
	GeminiModel   string
	WatchDir      string        // empty disables the ingest watcher
	WatchInterval time.Duration // how often the watcher polls
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("JOBS_DB_PATH")
	if dbPath == "" {
		dbPath = "jobs.db"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	interval := 5 * time.Minute
	if s := os.Getenv("WATCH_INTERVAL_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("WATCH_INTERVAL_MINUTES must be a positive integer, got %q", s)
		}
		interval = time.Duration(v) * time.Minute
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   model,
		WatchDir:      os.Getenv("WATCH_DIR"),
		WatchInterval: interval,
	}, nil
}
