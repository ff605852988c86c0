package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunvoyage/portal/internal/buildinfo"
	"github.com/sunvoyage/portal/internal/client/cli"
	"github.com/sunvoyage/portal/internal/client/config"
	"github.com/sunvoyage/portal/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Interactive client for the SunVoyage travel portal",
	Long: `portal is a command-line client for the SunVoyage travel-agency portal.
It signs in against the portal backend, keeps the session alive with a
background heartbeat, and lets you search hotels, browse agency and
Euro-trip profiles, and read the user-activity report.`,
	DisableFlagParsing: true, // config flags are handled by the config package
	RunE: func(cmd *cobra.Command, args []string) error {
		buildinfo.PrintBuildData(os.Stdout)

		cfg := config.LoadConfig()
		logger := logging.NewConsoleLogger(os.Stderr)

		app, err := cli.NewApp(cfg, logger)
		if err != nil {
			return err
		}

		app.Run(context.Background())
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
