package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"driver-planning-backend/internal/logger"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Advance expired recurrences and reconcile their plannings once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, func(ctx context.Context, a *app) (interface{}, error) {
			report, err := a.maintenance.Run(ctx)
			if report == nil {
				return nil, err
			}
			return report, err
		})
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move plannings older than the retention window to the archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnce(cmd, func(ctx context.Context, a *app) (interface{}, error) {
			report, err := a.archiver.ArchiveOldPlannings(ctx)
			if report == nil {
				return nil, err
			}
			return report, err
		})
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd, archiveCmd)
}

// runOnce wires the app, runs fn as the system user and prints its report as JSON
func runOnce(cmd *cobra.Command, fn func(context.Context, *app) (interface{}, error)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := fn(logger.WithUser(ctx, "system"), a)
	if report != nil {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(report); encErr != nil && err == nil {
			err = encErr
		}
	}
	return err
}
