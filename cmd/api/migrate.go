package main

import (
	"context"
	"fmt"

	dbadapter "agenda/internal/adapter/db"
	"agenda/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the task store schema and exit",
		Long: `Create the tasks and sub_tasks tables when missing and add any
columns that older stores lack. Existing rows are kept.

Examples:
  agenda migrate
  agenda migrate --db /var/lib/agenda/tasks.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if dbPath != "" {
				cfg.DbPath = dbPath
			}
			return runMigrate(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite store (overrides DB_PATH)")

	return cmd
}

func runMigrate(ctx context.Context, cfg *config.Config) error {
	logger, flush, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer flush()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to open sqlite store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close sqlite store", zap.Error(err))
		}
	}()

	if err := dbadapter.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("schema is up to date", zap.String("db_path", cfg.DbPath))
	return nil
}
