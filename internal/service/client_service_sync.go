package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/akulikov/scoresync/internal/adapter"
	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/store"
	"github.com/akulikov/scoresync/internal/utils"
	"github.com/akulikov/scoresync/models"
)

const (
	pushPath = "/api/sync/push"

	defaultBatchSize      = 100
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 30 * time.Second

	// maxPushAttempts bounds transient-failure retries within one cycle.
	// The next cycle picks up whatever is still pending.
	maxPushAttempts = 3
)

type clientSyncService struct {
	localStore store.LocalStorage
	adapter    adapter.ServerAdapter
	keys       KeySource
	ids        *utils.UUIDGenerator

	batchSize      int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	logger *logger.Logger
	now    func() time.Time

	// cycleMu guarantees at most one sync cycle in flight.
	cycleMu sync.Mutex

	listenerMu   sync.RWMutex
	listeners    map[int64]func(models.SyncConflict)
	nextListener int64
}

// NewClientSyncService constructs the client sync engine. Batch size and
// backoff bounds come from cfg; zero values fall back to package defaults.
func NewClientSyncService(localStore store.LocalStorage, serverAdapter adapter.ServerAdapter, keys KeySource, cfg config.ClientSync, logger *logger.Logger) ClientSyncService {
	batchSize := cfg.BatchSize
	if batchSize <= 0 || batchSize > defaultBatchSize {
		batchSize = defaultBatchSize
	}
	initialBackoff := cfg.InitialBackoff
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	maxBackoff := cfg.MaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = defaultMaxBackoff
	}

	return &clientSyncService{
		localStore:     localStore,
		adapter:        serverAdapter,
		keys:           keys,
		ids:            utils.NewUUIDGenerator(),
		batchSize:      batchSize,
		initialBackoff: initialBackoff,
		maxBackoff:     maxBackoff,
		logger:         logger,
		now:            time.Now,
		listeners:      make(map[int64]func(models.SyncConflict)),
	}
}

// FullSync implements [ClientSyncService]: push all pending batches, then
// pull and reconcile remote changes since the checkpoint.
func (s *clientSyncService) FullSync(ctx context.Context, userID int64) (SyncSummary, error) {
	if !s.cycleMu.TryLock() {
		return SyncSummary{}, ErrSyncAlreadyRunning
	}
	defer s.cycleMu.Unlock()

	summary := SyncSummary{}

	pushed, err := s.pushPending(ctx, userID)
	summary.Pushed = pushed
	if err != nil {
		return summary, fmt.Errorf("push pending changes: %w", err)
	}

	pulled, conflicts, err := s.pullChanges(ctx, userID)
	summary.Pulled = pulled
	summary.Conflicts = conflicts
	if err != nil {
		return summary, fmt.Errorf("pull remote changes: %w", err)
	}

	return summary, nil
}

// SubscribeConflicts implements [ClientSyncService].
func (s *clientSyncService) SubscribeConflicts(fn func(models.SyncConflict)) int64 {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	s.nextListener++
	s.listeners[s.nextListener] = fn
	return s.nextListener
}

// UnsubscribeConflicts implements [ClientSyncService].
func (s *clientSyncService) UnsubscribeConflicts(id int64) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	delete(s.listeners, id)
}

// pushPending drains the pending set in batches. Each batch is marked
// syncing for the duration of the round; on a failed round every entity
// falls back to pending so nothing is lost mid-batch.
func (s *clientSyncService) pushPending(ctx context.Context, userID int64) (int, error) {
	accepted := 0

	for {
		if err := ctx.Err(); err != nil {
			return accepted, err
		}

		pending, err := s.localStore.ListPending(ctx, userID, s.batchSize)
		if err != nil {
			return accepted, fmt.Errorf("list pending entities: %w", err)
		}
		if len(pending) == 0 {
			return accepted, nil
		}

		n, err := s.pushBatch(ctx, userID, pending)
		accepted += n
		if err != nil {
			return accepted, err
		}

		if len(pending) < s.batchSize {
			return accepted, nil
		}
	}
}

func (s *clientSyncService) pushBatch(ctx context.Context, userID int64, pending []models.SyncEntity) (int, error) {
	req := buildPushRequest(pending)

	key, err := s.keys.DeterministicKey(http.MethodPost, pushPath, req)
	if err != nil {
		return 0, fmt.Errorf("derive idempotency key: %w", err)
	}

	for i := range pending {
		e := &pending[i]
		if err = s.localStore.SetStatus(ctx, userID, e.EntityType, e.LocalID, models.SyncStatusSyncing); err != nil {
			return 0, fmt.Errorf("mark %s/%s syncing: %w", e.EntityType, e.LocalID, err)
		}
	}

	resp, err := s.pushWithRetry(ctx, key, req)
	if err != nil {
		s.revertToPending(ctx, userID, pending)
		s.failOperationsFor(ctx, pending, err)
		return 0, err
	}

	return s.applyPushResponse(ctx, userID, pending, resp)
}

// pushWithRetry replays the same request under the same idempotency key
// with capped exponential backoff while the failure stays transient.
func (s *clientSyncService) pushWithRetry(ctx context.Context, key string, req models.PushRequest) (models.PushResponse, error) {
	backoff := s.initialBackoff

	var lastErr error
	for attempt := 1; attempt <= maxPushAttempts; attempt++ {
		resp, err := s.adapter.Push(ctx, key, req)
		if err == nil {
			return resp, nil
		}
		if !adapter.IsTransient(err) {
			return models.PushResponse{}, err
		}
		lastErr = err

		s.logger.Warn().Err(err).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("transient push failure")

		if attempt == maxPushAttempts {
			break
		}
		if err = sleepCtx(ctx, backoff); err != nil {
			return models.PushResponse{}, err
		}
		backoff *= 2
		if backoff > s.maxBackoff {
			backoff = s.maxBackoff
		}
	}

	return models.PushResponse{}, fmt.Errorf("push failed after %d attempts: %w", maxPushAttempts, lastErr)
}

// applyPushResponse records the server's verdict for every entity of the
// batch: accepted entities become synced with the authoritative version,
// rejected ones go to conflict and are surfaced to listeners so they are
// never retried blindly.
func (s *clientSyncService) applyPushResponse(ctx context.Context, userID int64, pending []models.SyncEntity, resp models.PushResponse) (int, error) {
	accepted := 0
	resolved := make(map[models.EntityKey]bool, len(pending))

	byKey := make(map[models.EntityKey]models.SyncEntity, len(pending))
	for i := range pending {
		byKey[pending[i].Key()] = pending[i]
	}

	for entityType, result := range resp.Results {
		for _, item := range result.Items {
			key := models.EntityKey{UserID: userID, EntityType: entityType, LocalID: item.LocalID}
			if err := s.localStore.MarkSynced(ctx, userID, entityType, item.LocalID, item.SyncVersion, item.RemoteID); err != nil {
				return accepted, fmt.Errorf("mark %s/%s synced: %w", entityType, item.LocalID, err)
			}
			resolved[key] = true
			accepted++
		}

		for _, pushErr := range result.Errors {
			key := models.EntityKey{UserID: userID, EntityType: entityType, LocalID: pushErr.LocalID}
			s.logger.Warn().
				Str("entityType", string(entityType)).
				Str("localID", pushErr.LocalID).
				Str("code", pushErr.Code).
				Msg("entity rejected by server")
			if err := s.localStore.SetStatus(ctx, userID, entityType, pushErr.LocalID, models.SyncStatusConflict); err != nil {
				return accepted, fmt.Errorf("mark %s/%s conflicted: %w", entityType, pushErr.LocalID, err)
			}
			resolved[key] = true
			s.notifyConflict(models.ConflictRejected, byKey[key], models.SyncEntity{})
		}
	}

	// Entities the server did not mention fall back to pending.
	for i := range pending {
		e := &pending[i]
		if resolved[e.Key()] {
			continue
		}
		if err := s.localStore.SetStatus(ctx, userID, e.EntityType, e.LocalID, models.SyncStatusPending); err != nil {
			return accepted, fmt.Errorf("revert %s/%s to pending: %w", e.EntityType, e.LocalID, err)
		}
	}

	s.completeOperationsFor(ctx, userID, pending, resolved)
	return accepted, nil
}

func (s *clientSyncService) revertToPending(ctx context.Context, userID int64, pending []models.SyncEntity) {
	for i := range pending {
		e := &pending[i]
		if err := s.localStore.SetStatus(ctx, userID, e.EntityType, e.LocalID, models.SyncStatusPending); err != nil {
			s.logger.Error().Err(err).
				Str("entityType", string(e.EntityType)).
				Str("localID", e.LocalID).
				Msg("failed to revert entity to pending")
		}
	}
}

// completeOperationsFor removes queued operations whose target entity the
// server has resolved in this round.
func (s *clientSyncService) completeOperationsFor(ctx context.Context, userID int64, pending []models.SyncEntity, resolved map[models.EntityKey]bool) {
	ops, err := s.localStore.ListOperations(ctx, models.OperationPending, len(pending)*len(models.KnownEntityTypes))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list queued operations")
		return
	}

	for _, op := range ops {
		key := models.EntityKey{UserID: userID, EntityType: op.EntityType, LocalID: op.LocalID}
		if !resolved[key] {
			continue
		}
		if err = s.localStore.CompleteOperation(ctx, op.ID); err != nil && !errors.Is(err, store.ErrOperationNotFound) {
			s.logger.Error().Err(err).Int64("operationID", op.ID).Msg("failed to complete operation")
		}
	}
}

// failOperationsFor bumps the retry count of queued operations whose batch
// just failed, keeping them pending for the next cycle.
func (s *clientSyncService) failOperationsFor(ctx context.Context, pending []models.SyncEntity, cause error) {
	ops, err := s.localStore.ListOperations(ctx, models.OperationPending, len(pending)*len(models.KnownEntityTypes))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list queued operations")
		return
	}

	inBatch := make(map[models.EntityType]map[string]bool, len(models.KnownEntityTypes))
	for i := range pending {
		e := &pending[i]
		if inBatch[e.EntityType] == nil {
			inBatch[e.EntityType] = make(map[string]bool)
		}
		inBatch[e.EntityType][e.LocalID] = true
	}

	for _, op := range ops {
		if !inBatch[op.EntityType][op.LocalID] {
			continue
		}
		if err = s.localStore.FailOperation(ctx, op.ID, cause.Error()); err != nil {
			s.logger.Error().Err(err).Int64("operationID", op.ID).Msg("failed to record operation failure")
		}
	}
}

// pullChanges pages through the server's changed-since feed and reconciles
// every remote entity against local state. The checkpoint advances only
// once the final page is consumed, and it advances to the server clock of
// the FIRST page of the cycle: a write that lands on the server while we
// are mid-feed may sit at a row id the cursor has already passed, so
// stamping the final page's clock would filter it out of every future
// pull. Mid-feed progress is saved as a continuation token so an
// interrupted pull resumes where it stopped.
func (s *clientSyncService) pullChanges(ctx context.Context, userID int64) (int, int, error) {
	since, token, err := s.localStore.GetCheckpoint(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrCheckpointNotFound) {
		return 0, 0, fmt.Errorf("load sync checkpoint: %w", err)
	}

	pulled, conflicts := 0, 0
	var cycleStart time.Time

	for {
		if err = ctx.Err(); err != nil {
			return pulled, conflicts, err
		}

		resp, err := s.adapter.Pull(ctx, models.PullRequest{Since: since, Token: token, Limit: s.batchSize})
		if err != nil {
			return pulled, conflicts, err
		}
		if cycleStart.IsZero() {
			cycleStart = resp.ServerTime
		}

		for i := range resp.Entities {
			applied, conflict, err := s.reconcile(ctx, userID, resp.Entities[i])
			if err != nil {
				return pulled, conflicts, err
			}
			if applied {
				pulled++
			}
			if conflict {
				conflicts++
			}
		}

		if resp.Token == "" {
			if err = s.localStore.SetCheckpoint(ctx, userID, cycleStart, ""); err != nil {
				return pulled, conflicts, fmt.Errorf("advance sync checkpoint: %w", err)
			}
			return pulled, conflicts, nil
		}

		token = resp.Token
		if err = s.localStore.SetCheckpoint(ctx, userID, since, token); err != nil {
			return pulled, conflicts, fmt.Errorf("save pull progress: %w", err)
		}
	}
}

// reconcile merges one remote entity into local state.
//
// A clean local copy (or no copy at all) simply takes the server's version:
// last write wins only when the local side is unchanged since its last
// sync. A local copy with unsynced changes diverged from the server, and
// the divergence is classified without merging content:
//
//   - the local copy was never synced → both sides created the entity
//     independently (create-create); the local copy moves to a fresh local
//     id and the remote one is applied;
//   - the remote copy is a tombstone → delete-update;
//   - identical checksums → same content arrived from another device; the
//     local copy just records the server version;
//   - anything else → update-update.
//
// Conflicted entities stay local with status conflict and are surfaced to
// listeners; they are never retried until the caller resolves them.
func (s *clientSyncService) reconcile(ctx context.Context, userID int64, remote models.SyncEntity) (bool, bool, error) {
	local, err := s.localStore.Get(ctx, userID, remote.EntityType, remote.LocalID)
	if err != nil {
		if !errors.Is(err, store.ErrEntityNotFound) {
			return false, false, fmt.Errorf("load local %s/%s: %w", remote.EntityType, remote.LocalID, err)
		}
		if err = s.localStore.ApplyRemote(ctx, remote); err != nil {
			return false, false, fmt.Errorf("apply remote %s/%s: %w", remote.EntityType, remote.LocalID, err)
		}
		return true, false, nil
	}

	if local.SyncStatus == models.SyncStatusSynced {
		if local.Checksum == remote.Checksum && local.SyncVersion == remote.SyncVersion {
			return false, false, nil
		}
		if err = s.localStore.ApplyRemote(ctx, remote); err != nil {
			return false, false, fmt.Errorf("apply remote %s/%s: %w", remote.EntityType, remote.LocalID, err)
		}
		return true, false, nil
	}

	switch {
	case local.SyncVersion == 0:
		newLocalID := s.ids.Generate()
		if err = s.localStore.ReassignLocalID(ctx, userID, remote.EntityType, remote.LocalID, newLocalID); err != nil {
			return false, false, fmt.Errorf("reassign local id for %s/%s: %w", remote.EntityType, remote.LocalID, err)
		}
		if err = s.localStore.ApplyRemote(ctx, remote); err != nil {
			return false, false, fmt.Errorf("apply remote %s/%s: %w", remote.EntityType, remote.LocalID, err)
		}
		local.LocalID = newLocalID
		s.notifyConflict(models.ConflictCreateCreate, local, remote)
		return true, true, nil

	case remote.Deleted():
		if err = s.localStore.SetStatus(ctx, userID, remote.EntityType, remote.LocalID, models.SyncStatusConflict); err != nil {
			return false, false, fmt.Errorf("mark %s/%s conflicted: %w", remote.EntityType, remote.LocalID, err)
		}
		s.notifyConflict(models.ConflictDeleteUpdate, local, remote)
		return false, true, nil

	case local.Checksum == remote.Checksum:
		if err = s.localStore.MarkSynced(ctx, userID, remote.EntityType, remote.LocalID, remote.SyncVersion, remote.ID); err != nil {
			return false, false, fmt.Errorf("mark %s/%s synced: %w", remote.EntityType, remote.LocalID, err)
		}
		return false, false, nil

	default:
		if err = s.localStore.SetStatus(ctx, userID, remote.EntityType, remote.LocalID, models.SyncStatusConflict); err != nil {
			return false, false, fmt.Errorf("mark %s/%s conflicted: %w", remote.EntityType, remote.LocalID, err)
		}
		s.notifyConflict(models.ConflictUpdateUpdate, local, remote)
		return false, true, nil
	}
}

func (s *clientSyncService) notifyConflict(kind models.ConflictType, local, remote models.SyncEntity) {
	conflict := models.SyncConflict{
		Type:       kind,
		Local:      local,
		Remote:     remote,
		DetectedAt: s.now().UTC(),
	}

	s.listenerMu.RLock()
	defer s.listenerMu.RUnlock()
	for _, fn := range s.listeners {
		fn(conflict)
	}
}

// buildPushRequest groups a pending batch by collection, preserving the
// store's creation order within each group.
func buildPushRequest(pending []models.SyncEntity) models.PushRequest {
	changes := make(map[models.EntityType][]models.SyncEntity)
	for i := range pending {
		e := pending[i]
		e.SyncStatus = ""
		changes[e.EntityType] = append(changes[e.EntityType], e)
	}

	return models.PushRequest{Changes: changes, Length: len(pending)}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
