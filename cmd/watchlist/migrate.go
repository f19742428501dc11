package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/watchlist-backend/internal/app"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the record store schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStorage(cmd, func(s *app.Storage) error {
				results, err := s.MigrateUp(cmd.Context())
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStorage(cmd, func(s *app.Storage) error {
				r, err := s.MigrateDown(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", r.Source.Path)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStorage(cmd, func(s *app.Storage) error {
				statuses, err := s.MigrationStatus(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
				for _, st := range statuses {
					applied := "-"
					if !st.AppliedAt.IsZero() {
						applied = st.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", st.Source.Version, st.State, applied, st.Source.Path)
				}
				return w.Flush()
			})
		},
	})

	return cmd
}

func withStorage(cmd *cobra.Command, fn func(*app.Storage) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	s, err := app.OpenStorage(cmd.Context(), cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
