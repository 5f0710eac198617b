package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/models"

	_ "github.com/mattn/go-sqlite3"
)

// localSQLiteStorage is the SQLite-backed implementation of
// [LocalStorage]. One database file holds every durable client slot:
// the entity collections, the operation queue, and the sync checkpoint.
type localSQLiteStorage struct {
	db *sql.DB
}

// NewLocalStorage opens (creating if needed) the client database at
// dbPath and bootstraps the schema. An empty path opens an in-memory
// database, which is what the tests use.
func NewLocalStorage(dbPath string) (LocalStorage, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening local database: %w", err)
	}

	// SQLite allows one writer; a bigger pool only produces SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(clientSchema); err != nil {
		return nil, fmt.Errorf("error bootstrapping local schema: %w", err)
	}

	return &localSQLiteStorage{db: db}, nil
}

// SaveLocal implements [LocalStorage].
func (s *localSQLiteStorage) SaveLocal(ctx context.Context, entity models.SyncEntity) error {
	now := time.Now().UTC()
	createdAt := entity.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := s.db.ExecContext(ctx, saveLocalEntity,
		entity.UserID,
		entity.EntityType,
		entity.LocalID,
		entity.RemoteID,
		string(entity.Payload),
		entity.Checksum,
		createdAt,
		now,
		entity.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ApplyRemote implements [LocalStorage].
func (s *localSQLiteStorage) ApplyRemote(ctx context.Context, entity models.SyncEntity) error {
	remoteID := entity.RemoteID
	if remoteID == nil && entity.ID != 0 {
		id := entity.ID
		remoteID = &id
	}

	_, err := s.db.ExecContext(ctx, applyRemoteEntity,
		entity.UserID,
		entity.EntityType,
		entity.LocalID,
		remoteID,
		string(entity.Payload),
		entity.Checksum,
		entity.SyncVersion,
		entity.CreatedAt,
		entity.UpdatedAt,
		entity.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get implements [LocalStorage].
func (s *localSQLiteStorage) Get(ctx context.Context, userID int64, entityType models.EntityType, localID string) (models.SyncEntity, error) {
	row := s.db.QueryRowContext(ctx, getLocalEntity, userID, entityType, localID)

	entity, err := scanLocalEntity(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SyncEntity{}, ErrEntityNotFound
	case err != nil:
		return models.SyncEntity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

// ListPending implements [LocalStorage].
func (s *localSQLiteStorage) ListPending(ctx context.Context, userID int64, limit int) ([]models.SyncEntity, error) {
	rows, err := s.db.QueryContext(ctx, listPendingEntities, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SyncEntity, 0, limit)
	for rows.Next() {
		entity, scanErr := scanLocalEntity(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, entity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// ListByType implements [LocalStorage].
func (s *localSQLiteStorage) ListByType(ctx context.Context, userID int64, entityType models.EntityType) ([]models.SyncEntity, error) {
	rows, err := s.db.QueryContext(ctx, listEntitiesByType, userID, entityType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var results []models.SyncEntity
	for rows.Next() {
		entity, scanErr := scanLocalEntity(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, entity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// SetStatus implements [LocalStorage].
func (s *localSQLiteStorage) SetStatus(ctx context.Context, userID int64, entityType models.EntityType, localID string, status models.SyncStatus) error {
	res, err := s.db.ExecContext(ctx, setEntityStatus, status, userID, entityType, localID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

// MarkSynced implements [LocalStorage].
func (s *localSQLiteStorage) MarkSynced(ctx context.Context, userID int64, entityType models.EntityType, localID string, syncVersion, remoteID int64) error {
	res, err := s.db.ExecContext(ctx, markEntitySynced, syncVersion, remoteID, userID, entityType, localID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

// ReassignLocalID implements [LocalStorage]. The reassigned entity keeps
// its content but becomes a brand-new, never-synced record. The local id
// is part of the checksummed content, so the checksum is recomputed for
// the new id in the same statement.
func (s *localSQLiteStorage) ReassignLocalID(ctx context.Context, userID int64, entityType models.EntityType, oldLocalID, newLocalID string) error {
	entity, err := s.Get(ctx, userID, entityType, oldLocalID)
	if err != nil {
		return err
	}

	entity.LocalID = newLocalID
	checksum, err := utils.EntityChecksum(entity)
	if err != nil {
		return fmt.Errorf("recompute checksum for %s: %w", newLocalID, err)
	}

	res, err := s.db.ExecContext(ctx, reassignEntityLocalID, newLocalID, checksum, userID, entityType, oldLocalID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

// EnqueueOperation implements [LocalStorage].
func (s *localSQLiteStorage) EnqueueOperation(ctx context.Context, op models.SyncOperation) (int64, error) {
	createdAt := op.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := op.Status
	if status == "" {
		status = models.OperationPending
	}

	res, err := s.db.ExecContext(ctx, enqueueOperation,
		op.Kind,
		op.EntityType,
		op.LocalID,
		string(op.Payload),
		status,
		op.RetryCount,
		createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.LastInsertId()
}

// ListOperations implements [LocalStorage].
func (s *localSQLiteStorage) ListOperations(ctx context.Context, status models.OperationStatus, limit int) ([]models.SyncOperation, error) {
	rows, err := s.db.QueryContext(ctx, listOperations, status, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ops := make([]models.SyncOperation, 0, limit)
	for rows.Next() {
		var (
			op      models.SyncOperation
			payload sql.NullString
		)
		if scanErr := rows.Scan(
			&op.ID,
			&op.Kind,
			&op.EntityType,
			&op.LocalID,
			&payload,
			&op.Status,
			&op.RetryCount,
			&op.LastError,
			&op.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if payload.Valid {
			op.Payload = []byte(payload.String)
		}
		ops = append(ops, op)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ops, nil
}

// CompleteOperation implements [LocalStorage].
func (s *localSQLiteStorage) CompleteOperation(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, completeOperation, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

// FailOperation implements [LocalStorage].
func (s *localSQLiteStorage) FailOperation(ctx context.Context, id int64, reason string) error {
	res, err := s.db.ExecContext(ctx, failOperation, reason, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

// GetCheckpoint implements [LocalStorage].
func (s *localSQLiteStorage) GetCheckpoint(ctx context.Context, userID int64) (time.Time, string, error) {
	var (
		since time.Time
		token string
	)

	err := s.db.QueryRowContext(ctx, getCheckpoint, userID).Scan(&since, &token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return time.Time{}, "", ErrCheckpointNotFound
	case err != nil:
		return time.Time{}, "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return since, token, nil
}

// SetCheckpoint implements [LocalStorage].
func (s *localSQLiteStorage) SetCheckpoint(ctx context.Context, userID int64, since time.Time, token string) error {
	if _, err := s.db.ExecContext(ctx, setCheckpoint, userID, since, token); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanLocalEntity(row rowScanner) (models.SyncEntity, error) {
	var (
		entity   models.SyncEntity
		remoteID sql.NullInt64
		payload  string
	)

	err := row.Scan(
		&entity.UserID,
		&entity.EntityType,
		&entity.LocalID,
		&remoteID,
		&payload,
		&entity.Checksum,
		&entity.SyncStatus,
		&entity.SyncVersion,
		&entity.CreatedAt,
		&entity.UpdatedAt,
		&entity.DeletedAt,
	)
	if err != nil {
		return models.SyncEntity{}, err
	}

	if remoteID.Valid {
		entity.RemoteID = &remoteID.Int64
	}
	entity.Payload = []byte(payload)

	return entity, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntityNotFound
	}

	return nil
}
