package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds host configuration from environment variables. The engine
// itself takes no configuration beyond the catalog; everything here is
// deployment plumbing.
type Config struct {
	Port          int
	DBPath        string // empty disables the SQLite dataset cache
	LocalDataPath string
	IntercityPath string
	CatalogPath   string // empty uses the embedded default catalog
	ImportOnly    bool   // CLI flag: import the dataset cache, then exit
}

// Load reads configuration from .env (if present) and environment variables.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:          envInt("PUTTURBUS_PORT", 8080),
		DBPath:        envStr("PUTTURBUS_DB_PATH", ""),
		LocalDataPath: envStr("PUTTURBUS_LOCAL_DATA", "./data/bus-routes.json"),
		IntercityPath: envStr("PUTTURBUS_INTERCITY_DATA", "./data/intercity-buses.json"),
		CatalogPath:   envStr("PUTTURBUS_CATALOG", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
