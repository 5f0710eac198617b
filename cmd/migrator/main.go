package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/migrator"
	"github.com/akulikov/scoresync/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "scoresync-migrator",
	Short: "Backfill the sync store from the legacy practice log",
	Long: `Scans the legacy_entries table in primary-key order, normalizes each
row into a canonical piece reference plus a practice entry, and applies them
through the same conditional upsert the live sync path uses. Re-running a
finished migration is a no-op; an interrupted run resumes with --start-after.`,
	RunE: runMigration,
}

func init() {
	rootCmd.Flags().Bool("dry-run", false, "classify every row without writing anything")
	rootCmd.Flags().Int("page-size", 100, "legacy rows fetched per scan")
	rootCmd.Flags().Int64("start-after", 0, "resume after this legacy row id")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMigration(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	startAfter, _ := cmd.Flags().GetInt64("start-after")

	log := logger.NewLogger("migrator")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	storages := store.NewStorages(db, log)

	m := migrator.New(storages.LegacyRepository, storages.EntityRepository, log)
	stats, err := m.Run(ctx, migrator.Options{
		DryRun:     dryRun,
		PageSize:   pageSize,
		StartAfter: startAfter,
	})
	if err != nil {
		log.Err(err).Int64("last_id", stats.LastID).Msg("migration aborted")
		return fmt.Errorf("migration aborted at row %d: %w", stats.LastID, err)
	}

	mode := "applied"
	if dryRun {
		mode = "dry-run"
	}
	fmt.Printf("Migration %s: scanned=%d inserted=%d updated=%d skipped=%d failed=%d last_id=%d\n",
		mode, stats.Scanned, stats.Inserted, stats.Updated, stats.Skipped, stats.Failed, stats.LastID)

	return nil
}
