package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/watchlist-backend/internal/app"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
