package store

import (
	"context"
	"fmt"

	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/models"
)

// legacyRepository reads the pre-sync "legacy_entries" table the batch
// migrator backfills from. Read-only by design.
type legacyRepository struct {
	*DB
	logger *logger.Logger
}

// NewLegacyRepository constructs a [LegacyRepository] backed by the
// provided database connection and logger.
func NewLegacyRepository(db *DB, logger *logger.Logger) LegacyRepository {
	return &legacyRepository{
		DB:     db,
		logger: logger,
	}
}

// ScanPage implements [LegacyRepository].
func (r *legacyRepository) ScanPage(ctx context.Context, afterID int64, limit int) ([]models.LegacyEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLegacyScanQuery(afterID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "legacyRepository.ScanPage").
			Int64("after_id", afterID).
			Msg("failed to build legacy scan query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "legacyRepository.ScanPage").
			Int64("after_id", afterID).
			Msg("failed to execute legacy scan query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LegacyEntry, 0, limit)
	for rows.Next() {
		var entry models.LegacyEntry

		scanErr := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.PieceTitle,
			&entry.Composer,
			&entry.DurationMinutes,
			&entry.Tempo,
			&entry.Notes,
			&entry.PracticedAt,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "legacyRepository.ScanPage").
				Int64("after_id", afterID).
				Msg("failed to scan legacy row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "legacyRepository.ScanPage").
			Int64("after_id", afterID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
