package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables overlaying the defaults. The backend target is the
// one setting deployments are expected to provide.
const (
	envBaseURL   = "PM_API_BASE_URL"
	envTimeout   = "PM_REQUEST_TIMEOUT"
	envSessionDB = "PM_SESSION_DB"
)

// parseEnv overlays Config from the process environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envSessionDB); v != "" {
		cfg.SessionDBPath = v
	}
}
