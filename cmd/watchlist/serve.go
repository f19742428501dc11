package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/watchlist-backend/internal/app"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to the gateway and evaluate membership events",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg, logger)
}

