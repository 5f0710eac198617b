package store

import (
	"context"
	"time"

	"github.com/akulikov/scoresync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is the client-side durable store: one slot per entity
// collection, one for the operation queue, and one for the last-sync
// checkpoint. The device identity slot lives in the device package.
type LocalStorage interface {
	// SaveLocal records a local mutation. The entity is written with
	// sync_status=pending; created_at and sync_version of an existing row
	// are preserved. Any previous synced or conflict status is reset —
	// a local edit always makes the entity pending again.
	SaveLocal(ctx context.Context, entity models.SyncEntity) error

	// ApplyRemote stores the server's copy verbatim with
	// sync_status=synced. Used when a pull brings down remote changes.
	ApplyRemote(ctx context.Context, entity models.SyncEntity) error

	// Get fetches one entity. Returns ErrEntityNotFound when absent.
	Get(ctx context.Context, userID int64, entityType models.EntityType, localID string) (models.SyncEntity, error)

	// ListPending returns up to limit entities with sync_status=pending in
	// creation order, across all collections.
	ListPending(ctx context.Context, userID int64, limit int) ([]models.SyncEntity, error)

	// ListByType returns every live (not soft-deleted) entity of one
	// collection in creation order.
	ListByType(ctx context.Context, userID int64, entityType models.EntityType) ([]models.SyncEntity, error)

	// SetStatus moves one entity to the given sync status.
	SetStatus(ctx context.Context, userID int64, entityType models.EntityType, localID string, status models.SyncStatus) error

	// MarkSynced records a server-accepted push outcome: status synced,
	// the authoritative sync_version, and the server row id.
	MarkSynced(ctx context.Context, userID int64, entityType models.EntityType, localID string, syncVersion, remoteID int64) error

	// ReassignLocalID moves an entity to a fresh local id, used to resolve
	// create-create conflicts without merging content.
	ReassignLocalID(ctx context.Context, userID int64, entityType models.EntityType, oldLocalID, newLocalID string) error

	// EnqueueOperation appends a SyncOperation to the retry queue.
	EnqueueOperation(ctx context.Context, op models.SyncOperation) (int64, error)

	// ListOperations returns queued operations with the given status in
	// enqueue order.
	ListOperations(ctx context.Context, status models.OperationStatus, limit int) ([]models.SyncOperation, error)

	// CompleteOperation removes a finished operation from the queue.
	CompleteOperation(ctx context.Context, id int64) error

	// FailOperation keeps the operation queued, increments its retry count,
	// and records the failure reason.
	FailOperation(ctx context.Context, id int64, reason string) error

	// GetCheckpoint returns the last-sync checkpoint (timestamp plus
	// continuation token). Returns ErrCheckpointNotFound before the first
	// successful sync.
	GetCheckpoint(ctx context.Context, userID int64) (time.Time, string, error)

	// SetCheckpoint persists a new checkpoint after a successful pull.
	SetCheckpoint(ctx context.Context, userID int64, since time.Time, token string) error
}
