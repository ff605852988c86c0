// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including a .env file in the working directory
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the portal backend
//	-i int      heartbeat interval (seconds)
//	-g int      logout grace delay (seconds)
//	-s int      page size of search and list screens
//	-d string   path of the sqlite state file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "20s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://portal.example.com",
//	  "heartbeat_interval": "20s",
//	  "logout_grace_delay": "2s",
//	  "request_timeout": "10s",
//	  "page_size": 10,
//	  "state_db_path": "portal_state.db"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings of the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
