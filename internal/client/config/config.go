package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - APIBaseURL: base URL of the portal backend, without the trailing slash.
//   - HeartbeatInterval: how often the client validates the login session.
//   - LogoutGraceDelay: pause between the logout notice and the state wipe.
//   - RequestTimeout: per-request HTTP timeout.
//   - PageSize: default page size of the search and list screens.
//   - StateDBPath: path of the sqlite file backing the client state store.
type Config struct {
	APIBaseURL        string
	HeartbeatInterval time.Duration
	LogoutGraceDelay  time.Duration
	RequestTimeout    time.Duration
	PageSize          int
	StateDBPath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.HeartbeatInterval = 20 * time.Second
	c.LogoutGraceDelay = 2 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.PageSize = 10
	c.StateDBPath = "portal_state.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file), a JSON file, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
