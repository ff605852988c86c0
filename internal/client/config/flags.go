package config

import (
	"flag"
	"os"
	"time"

	"github.com/sunvoyage/portal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the portal backend (default from Config)
//	-i int      heartbeat interval in seconds (default from Config)
//	-g int      logout grace delay in seconds (default from Config)
//	-s int      page size of search and list screens (default from Config)
//	-d string   path of the sqlite state file (default from Config)
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-g", "-s", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the portal backend")
	heartbeatInterval := fs.Int("i", int(cfg.HeartbeatInterval.Seconds()), "heartbeat interval (in seconds)")
	logoutGraceDelay := fs.Int("g", int(cfg.LogoutGraceDelay.Seconds()), "logout grace delay (in seconds)")
	fs.IntVar(&cfg.PageSize, "s", cfg.PageSize, "page size of search and list screens")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "path of the sqlite state file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HeartbeatInterval = time.Duration(*heartbeatInterval) * time.Second
	cfg.LogoutGraceDelay = time.Duration(*logoutGraceDelay) * time.Second
}
