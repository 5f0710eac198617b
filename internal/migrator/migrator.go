// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package migrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/score"
	"github.com/akulikov/scoresync/internal/store"
	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/models"
)

// defaultPageSize bounds one legacy scan when the caller does not choose.
const defaultPageSize = 100

// Options control one migration run.
type Options struct {
	// DryRun classifies every row without writing anything.
	DryRun bool

	// PageSize is the number of legacy rows fetched per scan. Defaults to
	// defaultPageSize when zero or negative.
	PageSize int

	// StartAfter resumes the scan after this legacy row id. Zero starts
	// from the beginning.
	StartAfter int64
}

// MigrationStats reports what one run did. Entity counters tally upsert
// outcomes for both the piece references and the practice entries derived
// from the legacy rows, so they can exceed Scanned.
type MigrationStats struct {
	// Scanned is the number of legacy rows read.
	Scanned int

	Inserted int
	Updated  int
	Skipped  int

	// Failed counts rows that could not be transformed or written for a
	// non-transient reason. Failed rows are logged and skipped; the run
	// continues.
	Failed int

	// LastID is the highest legacy row id processed. Pass it as
	// Options.StartAfter to resume an interrupted run.
	LastID int64
}

// Migrator backfills the sync store from the pre-sync practice log. Each
// legacy row yields a piece reference under its canonical identity plus a
// practice entry pointing at it; both go through the same conditional
// upsert the live push path uses, so re-running a finished migration is a
// no-op and running alongside live traffic cannot lose newer writes.
type Migrator struct {
	legacy   store.LegacyRepository
	entities store.EntityRepository
	logger   *logger.Logger
}

func New(legacy store.LegacyRepository, entities store.EntityRepository, logger *logger.Logger) *Migrator {
	return &Migrator{
		legacy:   legacy,
		entities: entities,
		logger:   logger,
	}
}

// Run scans the legacy table in primary-key order and migrates every row.
// It stops early only on context cancellation or a transient storage
// failure; in both cases the returned stats carry LastID so the caller can
// resume from the last completed row.
func (m *Migrator) Run(ctx context.Context, opts Options) (MigrationStats, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var stats MigrationStats
	afterID := opts.StartAfter

	// Pieces already written this run; the upsert would skip them anyway,
	// this just avoids the round trip.
	migratedPieces := make(map[string]bool)

	for {
		entries, err := m.legacy.ScanPage(ctx, afterID, pageSize)
		if err != nil {
			return stats, fmt.Errorf("scanning legacy page after id %d: %w", afterID, err)
		}
		if len(entries) == 0 {
			return stats, nil
		}

		for _, entry := range entries {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}

			stats.Scanned++
			afterID = entry.ID

			if err := m.migrateRow(ctx, entry, opts.DryRun, migratedPieces, &stats); err != nil {
				if errors.Is(err, store.ErrTransientStorage) {
					return stats, fmt.Errorf("migrating legacy row %d: %w", entry.ID, err)
				}
				stats.Failed++
				m.logger.Err(err).
					Str("func", "Migrator.Run").
					Int64("legacy_id", entry.ID).
					Msg("skipping legacy row")
			}

			stats.LastID = entry.ID
		}

		if len(entries) < pageSize {
			return stats, nil
		}
	}
}

// migrateRow writes (or, in dry-run, classifies) the piece reference and
// the practice entry derived from one legacy row.
func (m *Migrator) migrateRow(ctx context.Context, entry models.LegacyEntry, dryRun bool, migratedPieces map[string]bool, stats *MigrationStats) error {
	canonicalID := score.CanonicalID(entry.PieceTitle, entry.Composer)

	pieceKey := fmt.Sprintf("%d/%s", entry.UserID, canonicalID)
	if !migratedPieces[pieceKey] {
		piece, err := transformPiece(entry, canonicalID)
		if err != nil {
			return err
		}
		if err := m.applyEntity(ctx, piece, dryRun, stats); err != nil {
			return err
		}
		migratedPieces[pieceKey] = true
	}

	practice, err := transformEntry(entry, canonicalID)
	if err != nil {
		return err
	}
	return m.applyEntity(ctx, practice, dryRun, stats)
}

// applyEntity runs one conditional upsert and tallies the outcome. In
// dry-run mode it predicts the outcome from the stored checksum instead of
// writing.
func (m *Migrator) applyEntity(ctx context.Context, entity models.SyncEntity, dryRun bool, stats *MigrationStats) error {
	outcome, err := m.resolveOutcome(ctx, entity, dryRun)
	if err != nil {
		return err
	}

	switch outcome {
	case models.OutcomeInserted:
		stats.Inserted++
	case models.OutcomeUpdated:
		stats.Updated++
	case models.OutcomeSkipped:
		stats.Skipped++
	}
	return nil
}

func (m *Migrator) resolveOutcome(ctx context.Context, entity models.SyncEntity, dryRun bool) (models.EntityOutcome, error) {
	if !dryRun {
		result, err := m.entities.Upsert(ctx, entity)
		if err != nil {
			return "", err
		}
		return result.Outcome, nil
	}

	existing, err := m.entities.GetByKey(ctx, entity.Key())
	switch {
	case errors.Is(err, store.ErrEntityNotFound):
		return models.OutcomeInserted, nil
	case err != nil:
		return "", err
	case existing.Checksum == entity.Checksum:
		return models.OutcomeSkipped, nil
	default:
		return models.OutcomeUpdated, nil
	}
}

// transformPiece builds the canonical piece reference entity for one
// legacy row. LocalID is the canonical id itself, the same identity the
// live registration path mints, so legacy and live registrations of the
// same piece converge on one row.
func transformPiece(entry models.LegacyEntry, canonicalID string) (models.SyncEntity, error) {
	payload, err := json.Marshal(models.PieceRef{
		Title:       entry.PieceTitle,
		Composer:    entry.Composer,
		CanonicalID: canonicalID,
	})
	if err != nil {
		return models.SyncEntity{}, fmt.Errorf("marshaling piece payload for legacy row %d: %w", entry.ID, err)
	}

	entity := models.SyncEntity{
		UserID:     entry.UserID,
		EntityType: models.EntityTypePiece,
		LocalID:    canonicalID,
		Payload:    payload,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.CreatedAt,
	}

	entity.Checksum, err = utils.EntityChecksum(entity)
	if err != nil {
		return models.SyncEntity{}, fmt.Errorf("checksumming piece for legacy row %d: %w", entry.ID, err)
	}
	return entity, nil
}

// transformEntry builds the practice entry entity for one legacy row.
// LocalID is derived from the legacy primary key, so re-running the
// migration maps every row to the same entity.
func transformEntry(entry models.LegacyEntry, canonicalID string) (models.SyncEntity, error) {
	payload, err := json.Marshal(models.PracticeEntry{
		PieceID:         canonicalID,
		DurationMinutes: entry.DurationMinutes,
		Tempo:           entry.Tempo,
		Notes:           entry.Notes,
		PracticedAt:     entry.PracticedAt,
	})
	if err != nil {
		return models.SyncEntity{}, fmt.Errorf("marshaling entry payload for legacy row %d: %w", entry.ID, err)
	}

	entity := models.SyncEntity{
		UserID:     entry.UserID,
		EntityType: models.EntityTypeEntry,
		LocalID:    fmt.Sprintf("legacy-entry-%d", entry.ID),
		Payload:    payload,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.CreatedAt,
	}

	entity.Checksum, err = utils.EntityChecksum(entity)
	if err != nil {
		return models.SyncEntity{}, fmt.Errorf("checksumming entry for legacy row %d: %w", entry.ID, err)
	}
	return entity, nil
}
