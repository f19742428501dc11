// Command watchlist runs the membership watchlist bot and its maintenance
// tasks. Without a subcommand it serves.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/watchlist-backend/internal/app"
	"github.com/heartmarshall/watchlist-backend/internal/config"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "watchlist",
		Short:         "Watchlist - flags risky joins and departures in Discord servers",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "path to the YAML config file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(resetScopeCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config and installs the default logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
