package store

import (
	"context"
	"time"

	"github.com/akulikov/scoresync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntityRepository is the server-side store contract the sync resolver and
// the batch migrator run on: a durable keyed store with conditional upsert
// on (user, entityType, localId) guarded by checksum equality, plus the
// scans the pull endpoint and the migrator need.
type EntityRepository interface {
	// Upsert applies the checksummed upsert rule for one entity and reports
	// the outcome:
	//   - no existing row            → insert, sync_version = 1, inserted
	//   - existing, same checksum    → no write, skipped
	//   - existing, other checksum   → replace content, version+1, updated
	// The write is conditional on the stored checksum in a single
	// statement, so concurrent pushes for the same key cannot lose updates.
	Upsert(ctx context.Context, entity models.SyncEntity) (models.PushItemResult, error)

	// GetByKey fetches one entity by its identity triple.
	// Returns ErrEntityNotFound when no row matches.
	GetByKey(ctx context.Context, key models.EntityKey) (models.SyncEntity, error)

	// GetChangedSince returns up to limit entities of the user changed at
	// or after since, ordered by (updated_at, id), starting after the row
	// id afterID. Soft-deleted entities are included so clients learn about
	// deletions.
	GetChangedSince(ctx context.Context, userID int64, since time.Time, afterID int64, limit int) ([]models.SyncEntity, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// LegacyRepository scans the pre-sync practice log the batch migrator
// backfills from.
type LegacyRepository interface {
	// ScanPage returns up to limit legacy rows with ID greater than
	// afterID, in ascending ID order. An empty result means the scan is
	// complete.
	ScanPage(ctx context.Context, afterID int64, limit int) ([]models.LegacyEntry, error)
}
