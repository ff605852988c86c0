package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment, after
// loading a .env file from the working directory when one exists. A missing
// .env file is not an error.
//
// Recognized variables:
//
//	PORTAL_API_BASE_URL        string
//	PORTAL_HEARTBEAT_INTERVAL  duration ("20s", "1m")
//	PORTAL_LOGOUT_GRACE_DELAY  duration
//	PORTAL_REQUEST_TIMEOUT     duration
//	PORTAL_PAGE_SIZE           int
//	PORTAL_STATE_DB_PATH       string
//
// Malformed durations and integers are ignored, keeping the earlier value.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORTAL_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PORTAL_STATE_DB_PATH"); v != "" {
		cfg.StateDBPath = v
	}
	if v := os.Getenv("PORTAL_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}

	durations := map[string]*time.Duration{
		"PORTAL_HEARTBEAT_INTERVAL": &cfg.HeartbeatInterval,
		"PORTAL_LOGOUT_GRACE_DELAY": &cfg.LogoutGraceDelay,
		"PORTAL_REQUEST_TIMEOUT":    &cfg.RequestTimeout,
	}
	for name, dst := range durations {
		if v := os.Getenv(name); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*dst = d
			}
		}
	}
}
