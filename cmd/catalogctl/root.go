// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ptd0409/portfolio/internal/platform/constants"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Administrative tasks for the portfolio catalog",
		SilenceUsage: true,
	}
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newHashPasswordCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String("app", constants.AppName), slog.String("tool", "catalogctl"))
}
