package service

import "github.com/akulikov/scoresync/models"

// MaxPushAttempts exposes maxPushAttempts to external tests.
const MaxPushAttempts = maxPushAttempts

// NotifyConflict exposes clientSyncService.notifyConflict to external tests.
func NotifyConflict(svc ClientSyncService, kind models.ConflictType, local, remote models.SyncEntity) {
	svc.(*clientSyncService).notifyConflict(kind, local, remote)
}
