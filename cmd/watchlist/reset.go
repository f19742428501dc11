package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/watchlist-backend/internal/app"
)

func resetScopeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-scope [scope_id]",
		Short: "Restore a server's watchlist settings and zero its join counts",
		Long: `Restore a server's watchlist policy to defaults and zero the join
counters of every member recorded for it. Equivalent to /watchlist reset,
without a running bot.

Examples:
  watchlist reset-scope 81384788765712384`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			res, err := app.ResetScope(cmd.Context(), cfg, logger, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset scope %s: %d ledger rows zeroed\n", args[0], res.LedgerEntries)
			return nil
		},
	}
}
