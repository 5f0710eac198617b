// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akulikov/scoresync/internal/adapter"
	"github.com/akulikov/scoresync/internal/config"
	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/mock"
	. "github.com/akulikov/scoresync/internal/service"
	"github.com/akulikov/scoresync/internal/store"
	"github.com/akulikov/scoresync/models"
)

// staticKeys derives the same key for every batch, which is enough for
// asserting that the key reaches the transport.
type staticKeys struct{}

func (staticKeys) DeterministicKey(_, _ string, _ any) (string, error) {
	return "key-fixed", nil
}

func newTestSyncService(t *testing.T) (*mock.MockLocalStorage, *mock.MockServerAdapter, ClientSyncService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	localStore := mock.NewMockLocalStorage(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	cfg := config.ClientSync{
		BatchSize:      10,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
	svc := NewClientSyncService(localStore, serverAdapter, staticKeys{}, cfg, logger.Nop())
	return localStore, serverAdapter, svc
}

func pendingEntity(localID string, entityType models.EntityType, version int64) models.SyncEntity {
	return models.SyncEntity{
		UserID:      1,
		LocalID:     localID,
		EntityType:  entityType,
		Payload:     []byte(`{"piece_id":"p"}`),
		Checksum:    "aa11",
		SyncStatus:  models.SyncStatusPending,
		SyncVersion: version,
	}
}

func emptyPull(localStore *mock.MockLocalStorage, serverAdapter *mock.MockServerAdapter) {
	serverTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	localStore.EXPECT().GetCheckpoint(gomock.Any(), int64(1)).Return(time.Time{}, "", store.ErrCheckpointNotFound)
	serverAdapter.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{ServerTime: serverTime}, nil)
	localStore.EXPECT().SetCheckpoint(gomock.Any(), int64(1), serverTime, "").Return(nil)
}

// ── Push side ───────────────────────────────────────────────────────────────

func TestFullSync_PushesPendingBatch(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	entity := pendingEntity("entry-0001", models.EntityTypeEntry, 0)

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return([]models.SyncEntity{entity}, nil)
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusSyncing).Return(nil)

	serverAdapter.EXPECT().Push(ctx, "key-fixed", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req models.PushRequest) (models.PushResponse, error) {
			assert.Equal(t, 1, req.Length)
			require.Len(t, req.Changes[models.EntityTypeEntry], 1)
			assert.Empty(t, req.Changes[models.EntityTypeEntry][0].SyncStatus, "client bookkeeping must not go over the wire")

			return models.PushResponse{Results: map[models.EntityType]models.PushResult{
				models.EntityTypeEntry: {
					Processed: 1, Inserted: 1,
					Items: []models.PushItemResult{{LocalID: "entry-0001", Outcome: models.OutcomeInserted, SyncVersion: 1, RemoteID: 42}},
				},
			}}, nil
		})

	localStore.EXPECT().MarkSynced(ctx, int64(1), models.EntityTypeEntry, "entry-0001", int64(1), int64(42)).Return(nil)
	localStore.EXPECT().ListOperations(ctx, models.OperationPending, gomock.Any()).Return(
		[]models.SyncOperation{{ID: 9, EntityType: models.EntityTypeEntry, LocalID: "entry-0001"}}, nil)
	localStore.EXPECT().CompleteOperation(ctx, int64(9)).Return(nil)

	emptyPull(localStore, serverAdapter)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Pushed)
	assert.Equal(t, 0, summary.Conflicts)
}

func TestFullSync_NothingPending(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	emptyPull(localStore, serverAdapter)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Zero(t, summary.Pushed)
}

func TestFullSync_RetriesTransientPush(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	entity := pendingEntity("entry-0001", models.EntityTypeEntry, 0)
	accepted := models.PushResponse{Results: map[models.EntityType]models.PushResult{
		models.EntityTypeEntry: {
			Processed: 1, Inserted: 1,
			Items: []models.PushItemResult{{LocalID: "entry-0001", Outcome: models.OutcomeInserted, SyncVersion: 1, RemoteID: 42}},
		},
	}}

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return([]models.SyncEntity{entity}, nil)
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusSyncing).Return(nil)

	gomock.InOrder(
		serverAdapter.EXPECT().Push(ctx, "key-fixed", gomock.Any()).Return(models.PushResponse{}, adapter.ErrTransientTransport),
		serverAdapter.EXPECT().Push(ctx, "key-fixed", gomock.Any()).Return(accepted, nil),
	)

	localStore.EXPECT().MarkSynced(ctx, int64(1), models.EntityTypeEntry, "entry-0001", int64(1), int64(42)).Return(nil)
	localStore.EXPECT().ListOperations(ctx, models.OperationPending, gomock.Any()).Return(nil, nil)

	emptyPull(localStore, serverAdapter)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Pushed)
}

func TestFullSync_ExhaustedRetriesRevertBatch(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	entity := pendingEntity("entry-0001", models.EntityTypeEntry, 0)

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return([]models.SyncEntity{entity}, nil)
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusSyncing).Return(nil)

	serverAdapter.EXPECT().Push(ctx, "key-fixed", gomock.Any()).Return(
		models.PushResponse{}, adapter.ErrTransientTransport).Times(MaxPushAttempts)

	// the batch falls back to pending and queued operations record the failure
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusPending).Return(nil)
	localStore.EXPECT().ListOperations(ctx, models.OperationPending, gomock.Any()).Return(
		[]models.SyncOperation{{ID: 4, EntityType: models.EntityTypeEntry, LocalID: "entry-0001"}}, nil)
	localStore.EXPECT().FailOperation(ctx, int64(4), gomock.Any()).Return(nil)

	_, err := svc.FullSync(ctx, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrTransientTransport)
}

func TestFullSync_NonTransientPushFailsImmediately(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	entity := pendingEntity("entry-0001", models.EntityTypeEntry, 0)

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return([]models.SyncEntity{entity}, nil)
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusSyncing).Return(nil)

	serverAdapter.EXPECT().Push(ctx, "key-fixed", gomock.Any()).Return(models.PushResponse{}, adapter.ErrUnauthorized)

	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusPending).Return(nil)
	localStore.EXPECT().ListOperations(ctx, models.OperationPending, gomock.Any()).Return(nil, nil)

	_, err := svc.FullSync(ctx, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestFullSync_RejectedEntityBecomesConflict(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	entity := pendingEntity("entry-0001", models.EntityTypeEntry, 0)

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return([]models.SyncEntity{entity}, nil)
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusSyncing).Return(nil)

	serverAdapter.EXPECT().Push(ctx, "key-fixed", gomock.Any()).Return(models.PushResponse{
		Results: map[models.EntityType]models.PushResult{
			models.EntityTypeEntry: {
				Processed: 1,
				Errors:    []models.PushError{{LocalID: "entry-0001", Code: "invalid_checksum", Message: "invalid checksum"}},
			},
		},
	}, nil)

	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusConflict).Return(nil)
	localStore.EXPECT().ListOperations(ctx, models.OperationPending, gomock.Any()).Return(nil, nil)

	emptyPull(localStore, serverAdapter)

	// Rejections are parked locally, so listeners are the only place a
	// caller ever sees them.
	var seen []models.SyncConflict
	svc.SubscribeConflicts(func(c models.SyncConflict) { seen = append(seen, c) })

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Zero(t, summary.Pushed, "a rejected entity is not an accepted one")

	require.Len(t, seen, 1)
	assert.Equal(t, models.ConflictRejected, seen[0].Type)
	assert.Equal(t, "entry-0001", seen[0].Local.LocalID)
	assert.Empty(t, seen[0].Remote.LocalID)
}

// ── Pull side ───────────────────────────────────────────────────────────────

func TestFullSync_AppliesRemoteChanges(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	since := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)
	serverTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	remote := models.SyncEntity{
		ID: 55, UserID: 1, LocalID: "entry-remote", EntityType: models.EntityTypeEntry,
		Payload: []byte(`{"piece_id":"p"}`), Checksum: "bb22", SyncVersion: 1,
	}

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)

	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(since, "", nil)
	serverAdapter.EXPECT().Pull(ctx, models.PullRequest{Since: since, Limit: 10}).Return(
		models.PullResponse{Entities: []models.SyncEntity{remote}, ServerTime: serverTime, Length: 1}, nil)
	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "entry-remote").Return(
		models.SyncEntity{}, store.ErrEntityNotFound)
	localStore.EXPECT().ApplyRemote(ctx, remote).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), serverTime, "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Pulled)
	assert.Zero(t, summary.Conflicts)
}

func TestFullSync_PagesThroughPull(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	since := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)
	serverTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := models.SyncEntity{ID: 5, UserID: 1, LocalID: "a", EntityType: models.EntityTypeEntry, Checksum: "c1", SyncVersion: 1}
	second := models.SyncEntity{ID: 6, UserID: 1, LocalID: "b", EntityType: models.EntityTypeEntry, Checksum: "c2", SyncVersion: 1}

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(since, "", nil)

	gomock.InOrder(
		serverAdapter.EXPECT().Pull(ctx, models.PullRequest{Since: since, Limit: 10}).Return(
			models.PullResponse{Entities: []models.SyncEntity{first}, Token: "5", ServerTime: serverTime, Length: 1}, nil),
		serverAdapter.EXPECT().Pull(ctx, models.PullRequest{Since: since, Token: "5", Limit: 10}).Return(
			models.PullResponse{Entities: []models.SyncEntity{second}, ServerTime: serverTime, Length: 1}, nil),
	)

	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "a").Return(models.SyncEntity{}, store.ErrEntityNotFound)
	localStore.EXPECT().ApplyRemote(ctx, first).Return(nil)
	// mid-feed progress is saved with the old checkpoint timestamp
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), since, "5").Return(nil)

	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "b").Return(models.SyncEntity{}, store.ErrEntityNotFound)
	localStore.EXPECT().ApplyRemote(ctx, second).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), serverTime, "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Pulled)
}

func TestFullSync_CheckpointUsesFirstPageServerTime(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	since := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)
	firstPageTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lastPageTime := firstPageTime.Add(40 * time.Second)
	first := models.SyncEntity{ID: 5, UserID: 1, LocalID: "a", EntityType: models.EntityTypeEntry, Checksum: "c1", SyncVersion: 1}
	second := models.SyncEntity{ID: 6, UserID: 1, LocalID: "b", EntityType: models.EntityTypeEntry, Checksum: "c2", SyncVersion: 1}

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(since, "", nil)

	gomock.InOrder(
		serverAdapter.EXPECT().Pull(ctx, models.PullRequest{Since: since, Limit: 10}).Return(
			models.PullResponse{Entities: []models.SyncEntity{first}, Token: "5", ServerTime: firstPageTime, Length: 1}, nil),
		serverAdapter.EXPECT().Pull(ctx, models.PullRequest{Since: since, Token: "5", Limit: 10}).Return(
			models.PullResponse{Entities: []models.SyncEntity{second}, ServerTime: lastPageTime, Length: 1}, nil),
	)

	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "a").Return(models.SyncEntity{}, store.ErrEntityNotFound)
	localStore.EXPECT().ApplyRemote(ctx, first).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), since, "5").Return(nil)

	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "b").Return(models.SyncEntity{}, store.ErrEntityNotFound)
	localStore.EXPECT().ApplyRemote(ctx, second).Return(nil)

	// Another device may commit a row the cursor already passed while we
	// page; advancing to the last page's clock would filter that write out
	// of every future pull. The checkpoint must stop at the first page's
	// clock so the next cycle re-covers the window.
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), firstPageTime, "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Pulled)
}

func TestFullSync_UpdateUpdateConflict(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	local := pendingEntity("entry-0001", models.EntityTypeEntry, 2)
	remote := local
	remote.ID = 55
	remote.Checksum = "different"
	remote.SyncVersion = 3
	remote.SyncStatus = ""

	var got []models.SyncConflict
	svc.SubscribeConflicts(func(c models.SyncConflict) { got = append(got, c) })

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(time.Time{}, "", store.ErrCheckpointNotFound)
	serverAdapter.EXPECT().Pull(ctx, gomock.Any()).Return(
		models.PullResponse{Entities: []models.SyncEntity{remote}, ServerTime: time.Now(), Length: 1}, nil)
	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "entry-0001").Return(local, nil)
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusConflict).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), gomock.Any(), "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Conflicts)
	require.Len(t, got, 1)
	assert.Equal(t, models.ConflictUpdateUpdate, got[0].Type)
	assert.Equal(t, "entry-0001", got[0].Local.LocalID)
	assert.False(t, got[0].DetectedAt.IsZero())
}

func TestFullSync_DeleteUpdateConflict(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	local := pendingEntity("entry-0001", models.EntityTypeEntry, 2)
	deletedAt := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	remote := local
	remote.ID = 55
	remote.Checksum = "tombstone"
	remote.SyncVersion = 3
	remote.SyncStatus = ""
	remote.DeletedAt = &deletedAt

	var got []models.SyncConflict
	svc.SubscribeConflicts(func(c models.SyncConflict) { got = append(got, c) })

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(time.Time{}, "", store.ErrCheckpointNotFound)
	serverAdapter.EXPECT().Pull(ctx, gomock.Any()).Return(
		models.PullResponse{Entities: []models.SyncEntity{remote}, ServerTime: time.Now(), Length: 1}, nil)
	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "entry-0001").Return(local, nil)
	localStore.EXPECT().SetStatus(ctx, int64(1), models.EntityTypeEntry, "entry-0001", models.SyncStatusConflict).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), gomock.Any(), "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Conflicts)
	require.Len(t, got, 1)
	assert.Equal(t, models.ConflictDeleteUpdate, got[0].Type)
}

func TestFullSync_CreateCreateConflictReassignsLocalID(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	// never synced locally, but the server already knows the id
	local := pendingEntity("entry-0001", models.EntityTypeEntry, 0)
	remote := local
	remote.ID = 55
	remote.Checksum = "remote-content"
	remote.SyncVersion = 1
	remote.SyncStatus = ""

	var got []models.SyncConflict
	svc.SubscribeConflicts(func(c models.SyncConflict) { got = append(got, c) })

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(time.Time{}, "", store.ErrCheckpointNotFound)
	serverAdapter.EXPECT().Pull(ctx, gomock.Any()).Return(
		models.PullResponse{Entities: []models.SyncEntity{remote}, ServerTime: time.Now(), Length: 1}, nil)
	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "entry-0001").Return(local, nil)

	var mintedID string
	localStore.EXPECT().ReassignLocalID(ctx, int64(1), models.EntityTypeEntry, "entry-0001", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ models.EntityType, _, newID string) error {
			mintedID = newID
			return nil
		})
	localStore.EXPECT().ApplyRemote(ctx, remote).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), gomock.Any(), "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Conflicts)
	assert.Equal(t, 1, summary.Pulled)
	require.Len(t, got, 1)
	assert.Equal(t, models.ConflictCreateCreate, got[0].Type)
	assert.NotEmpty(t, mintedID)
	assert.NotEqual(t, "entry-0001", mintedID, "the local copy must move to a fresh id")
	assert.Equal(t, mintedID, got[0].Local.LocalID)
}

func TestFullSync_SameContentFromOtherDeviceJustRecordsVersion(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	local := pendingEntity("entry-0001", models.EntityTypeEntry, 1)
	remote := local
	remote.ID = 55
	remote.SyncVersion = 2
	remote.SyncStatus = ""
	// checksums match: identical content arrived from another device

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(time.Time{}, "", store.ErrCheckpointNotFound)
	serverAdapter.EXPECT().Pull(ctx, gomock.Any()).Return(
		models.PullResponse{Entities: []models.SyncEntity{remote}, ServerTime: time.Now(), Length: 1}, nil)
	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "entry-0001").Return(local, nil)
	localStore.EXPECT().MarkSynced(ctx, int64(1), models.EntityTypeEntry, "entry-0001", int64(2), int64(55)).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), gomock.Any(), "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Zero(t, summary.Conflicts)
}

func TestFullSync_CleanLocalCopyTakesRemote(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	local := pendingEntity("entry-0001", models.EntityTypeEntry, 1)
	local.SyncStatus = models.SyncStatusSynced
	remote := local
	remote.ID = 55
	remote.Checksum = "newer"
	remote.SyncVersion = 2
	remote.SyncStatus = ""

	localStore.EXPECT().ListPending(ctx, int64(1), 10).Return(nil, nil)
	localStore.EXPECT().GetCheckpoint(ctx, int64(1)).Return(time.Time{}, "", store.ErrCheckpointNotFound)
	serverAdapter.EXPECT().Pull(ctx, gomock.Any()).Return(
		models.PullResponse{Entities: []models.SyncEntity{remote}, ServerTime: time.Now(), Length: 1}, nil)
	localStore.EXPECT().Get(ctx, int64(1), models.EntityTypeEntry, "entry-0001").Return(local, nil)
	localStore.EXPECT().ApplyRemote(ctx, remote).Return(nil)
	localStore.EXPECT().SetCheckpoint(ctx, int64(1), gomock.Any(), "").Return(nil)

	summary, err := svc.FullSync(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Pulled)
	assert.Zero(t, summary.Conflicts, "last write wins when the local side is unchanged")
}

// ── Single flight / listeners ───────────────────────────────────────────────

func TestFullSync_SecondConcurrentCycleRejected(t *testing.T) {
	localStore, serverAdapter, svc := newTestSyncService(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	localStore.EXPECT().ListPending(ctx, int64(1), 10).DoAndReturn(
		func(context.Context, int64, int) ([]models.SyncEntity, error) {
			close(entered)
			<-release
			return nil, nil
		})
	emptyPull(localStore, serverAdapter)

	done := make(chan error, 1)
	go func() {
		_, err := svc.FullSync(ctx, 1)
		done <- err
	}()

	<-entered
	_, err := svc.FullSync(ctx, 1)
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)

	close(release)
	require.NoError(t, <-done)
}

func TestUnsubscribeConflicts_StopsNotifications(t *testing.T) {
	_, _, svc := newTestSyncService(t)

	calls := 0
	id := svc.SubscribeConflicts(func(models.SyncConflict) { calls++ })
	svc.UnsubscribeConflicts(id)

	// reach the notifier directly through the concrete type
	NotifyConflict(svc, models.ConflictUpdateUpdate, models.SyncEntity{}, models.SyncEntity{})

	assert.Zero(t, calls)
}
