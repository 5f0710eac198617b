package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/models"
)

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. It executes all sync-entity operations against the
// "sync_entities" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, entity_type, local_id).
type entityRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntityRepository constructs an [EntityRepository] backed by the
// provided database connection and logger.
func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	return &entityRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert implements [EntityRepository]. The insert/skip/update decision
// runs inside a single conditional statement; this method only interprets
// the result:
//
//   - a returned row with inserted=true  → OutcomeInserted, version 1
//   - a returned row with inserted=false → OutcomeUpdated, version bumped
//   - no returned row → checksum matched, OutcomeSkipped; the current row
//     is fetched so the caller still learns the authoritative version.
func (r *entityRepository) Upsert(ctx context.Context, entity models.SyncEntity) (models.PushItemResult, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	createdAt := entity.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	var (
		id       int64
		version  int64
		inserted bool
	)
	err := r.DB.QueryRowContext(ctx, upsertEntity,
		entity.UserID,
		entity.EntityType,
		entity.LocalID,
		[]byte(entity.Payload),
		entity.Checksum,
		createdAt,
		now,
		entity.DeletedAt,
	).Scan(&id, &version, &inserted)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Conditional update did not fire: the stored checksum equals the
		// incoming one. Report the row as already applied.
		existing, getErr := r.GetByKey(ctx, entity.Key())
		if getErr != nil {
			log.Err(getErr).
				Str("func", "entityRepository.Upsert").
				Int64("user_id", entity.UserID).
				Str("local_id", entity.LocalID).
				Msg("failed to load skipped entity")
			return models.PushItemResult{}, getErr
		}
		return models.PushItemResult{
			LocalID:     entity.LocalID,
			Outcome:     models.OutcomeSkipped,
			SyncVersion: existing.SyncVersion,
			RemoteID:    existing.ID,
		}, nil

	case err != nil:
		log.Err(err).
			Str("func", "entityRepository.Upsert").
			Int64("user_id", entity.UserID).
			Str("entity_type", string(entity.EntityType)).
			Str("local_id", entity.LocalID).
			Msg("failed to execute upsert statement")
		if r.errorClassificator.Classify(err) == Retryable {
			return models.PushItemResult{}, fmt.Errorf("%w: %w", ErrTransientStorage, err)
		}
		return models.PushItemResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	outcome := models.OutcomeUpdated
	if inserted {
		outcome = models.OutcomeInserted
	}

	return models.PushItemResult{
		LocalID:     entity.LocalID,
		Outcome:     outcome,
		SyncVersion: version,
		RemoteID:    id,
	}, nil
}

// GetByKey implements [EntityRepository].
// Returns [ErrEntityNotFound] when no row matches the identity triple.
func (r *entityRepository) GetByKey(ctx context.Context, key models.EntityKey) (models.SyncEntity, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getEntityByKey, key.UserID, key.EntityType, key.LocalID)

	entity, err := scanEntity(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SyncEntity{}, ErrEntityNotFound
	case err != nil:
		log.Err(err).
			Str("func", "entityRepository.GetByKey").
			Int64("user_id", key.UserID).
			Str("local_id", key.LocalID).
			Msg("failed to scan entity row")
		return models.SyncEntity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

// GetChangedSince implements [EntityRepository]. Soft-deleted entities are
// included so pulling clients learn about deletions.
func (r *entityRepository) GetChangedSince(ctx context.Context, userID int64, since time.Time, afterID int64, limit int) ([]models.SyncEntity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangedSinceQuery(userID, since, afterID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.GetChangedSince").
			Int64("user_id", userID).
			Msg("failed to build changed-since query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.GetChangedSince").
			Int64("user_id", userID).
			Msg("failed to execute changed-since query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SyncEntity, 0, limit)
	for rows.Next() {
		entity, scanErr := scanEntity(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entityRepository.GetChangedSince").
				Int64("user_id", userID).
				Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, entity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entityRepository.GetChangedSince").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows so one scan helper serves
// single- and multi-row queries.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntity(row rowScanner) (models.SyncEntity, error) {
	var (
		entity  models.SyncEntity
		payload []byte
	)

	err := row.Scan(
		&entity.ID,
		&entity.UserID,
		&entity.EntityType,
		&entity.LocalID,
		&payload,
		&entity.Checksum,
		&entity.SyncVersion,
		&entity.CreatedAt,
		&entity.UpdatedAt,
		&entity.DeletedAt,
	)
	if err != nil {
		return models.SyncEntity{}, err
	}

	entity.Payload = payload
	return entity, nil
}
