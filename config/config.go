package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Trends upstream
const DEFAULT_TRENDS_ENDPOINT_BASE = "https://trends-mirror.app/api/v1"

// Pacing policy: a fixed delay between consecutive upstream requests once a
// run fans out into enough segments to risk rate-limiting.
const PACING_SEGMENT_THRESHOLD = 20
const PACING_DELAY = 100 * time.Millisecond

// Refresher
const REFRESHER_SCHEDULE_MINUTES = 60

// Server
const DEFAULT_SERVER_PORT = "8080"

// AppConfig holds the environment-driven settings; the consts above are the
// fixed policy knobs.
type AppConfig struct {
	Env                string
	TrendsEndpointBase string
	Port               string
	RefresherInterval  time.Duration

	// Default query refreshed periodically in server mode.
	DefaultKeywords    []string
	DefaultStartDate   string
	DefaultGeo         string
	DefaultGranularity string
}

// Load reads configuration from the environment (optionally a .env file)
// with sensible defaults.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file found: %v", err)
	}

	return &AppConfig{
		Env:                getenvDefault("TRENDS_ENV", "prod"),
		TrendsEndpointBase: getenvDefault("TRENDS_ENDPOINT_BASE", DEFAULT_TRENDS_ENDPOINT_BASE),
		Port:               getenvDefault("PORT", DEFAULT_SERVER_PORT),
		RefresherInterval:  time.Duration(getenvInt("REFRESHER_SCHEDULE_MINUTES", REFRESHER_SCHEDULE_MINUTES)) * time.Minute,
		DefaultKeywords:    []string{"PyTorch", "TensorFlow"},
		DefaultStartDate:   "2015-01-01",
		DefaultGeo:         getenvDefault("TRENDS_DEFAULT_GEO", ""),
		DefaultGranularity: getenvDefault("TRENDS_DEFAULT_GRANULARITY", "w"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
