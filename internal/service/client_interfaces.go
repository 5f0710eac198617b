package service

import (
	"context"
	"time"

	"github.com/akulikov/scoresync/internal/score"
	"github.com/akulikov/scoresync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncSummary reports what one sync cycle accomplished.
type SyncSummary struct {
	// Pushed is the number of local entities the server accepted
	// (inserted, updated, or recognised as already applied).
	Pushed int

	// Pulled is the number of remote changes applied locally.
	Pulled int

	// Conflicts is the number of divergences detected and surfaced to
	// listeners during this cycle.
	Conflicts int
}

// KeySource derives the idempotency key covering one push batch.
// Satisfied by *idempotency.Generator.
type KeySource interface {
	DeterministicKey(method, url string, payload any) (string, error)
}

// ClientSyncService is the client-side sync engine: it pushes pending local
// changes in bounded batches, pulls remote changes since the last
// checkpoint, and surfaces conflicts to registered listeners.
type ClientSyncService interface {
	// FullSync runs one complete push-then-pull cycle for the user.
	// At most one cycle runs at a time; a concurrent call returns
	// ErrSyncAlreadyRunning. Transient transport failures are retried
	// with capped exponential backoff before the cycle gives up.
	FullSync(ctx context.Context, userID int64) (SyncSummary, error)

	// SubscribeConflicts registers fn to be called for every conflict
	// detected during pull reconciliation. It returns a subscription id
	// for UnsubscribeConflicts. Callbacks run synchronously on the sync
	// goroutine and must not block.
	SubscribeConflicts(fn func(models.SyncConflict)) int64

	// UnsubscribeConflicts removes a previously registered listener.
	// Unknown ids are ignored.
	UnsubscribeConflicts(id int64)
}

// ClientJournalService is the local practice journal: all writes land in
// the local store as pending entities and are carried to the server by the
// next sync cycle. Reads never touch the network.
type ClientJournalService interface {
	// LogPractice records one practice session. A new entity gets a
	// freshly minted local id; passing localID edits an existing one.
	LogPractice(ctx context.Context, userID int64, localID string, entry models.PracticeEntry) (models.SyncEntity, error)

	// SetGoal creates or edits a practice goal, same id rules as
	// LogPractice.
	SetGoal(ctx context.Context, userID int64, localID string, goal models.Goal) (models.SyncEntity, error)

	// RegisterPiece registers a piece reference under its canonical
	// identity. Registering the same piece twice (same canonical id)
	// returns the existing entity instead of duplicating it. The returned
	// matches list near-duplicates among already registered pieces so the
	// caller can warn the user; they never block registration.
	RegisterPiece(ctx context.Context, userID int64, title, composer string) (models.SyncEntity, []score.Match, error)

	// FindSimilarPieces ranks registered pieces by similarity to the
	// given title and composer.
	FindSimilarPieces(ctx context.Context, userID int64, title, composer string) ([]score.Match, error)

	// ListPieces returns the user's registered piece references.
	ListPieces(ctx context.Context, userID int64) ([]models.SyncEntity, error)

	// Delete soft-deletes an entity. The tombstone syncs like any other
	// pending change.
	Delete(ctx context.Context, userID int64, entityType models.EntityType, localID string) error
}

// ClientSyncJob is a background worker that periodically calls FullSync
// for the authenticated user.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
