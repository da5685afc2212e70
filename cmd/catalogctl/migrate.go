// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ptd0409/portfolio/internal/platform/config"
	"github.com/ptd0409/portfolio/internal/platform/migration"
)

func newMigrateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert schema migrations",
	}
	cmd.PersistentFlags().StringVar(&path, "path", "", "migrations directory (default: MIGRATION_PATH)")

	step := func(use, short string, run func(dsn, path string, logger *slog.Logger) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.LoadTool()
				if err != nil {
					return err
				}
				if path == "" {
					path = cfg.MigrationPath
				}
				return run(cfg.DatabaseURL, path, newLogger())
			},
		}
	}

	cmd.AddCommand(step("up", "Apply every pending migration", migration.RunUp))
	cmd.AddCommand(step("down", "Revert every applied migration", migration.RunDown))
	return cmd
}
