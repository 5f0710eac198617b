package models

import "time"

// ConflictType classifies how two replicas of the same logical entity
// diverged.
type ConflictType string

const (
	// ConflictUpdateUpdate: both sides changed the entity since the last
	// successful sync.
	ConflictUpdateUpdate ConflictType = "update-update"

	// ConflictDeleteUpdate: the remote side deleted the entity while the
	// local side still holds pending changes.
	ConflictDeleteUpdate ConflictType = "delete-update"

	// ConflictCreateCreate: two devices independently created entities with
	// the same local id while offline. Resolution mints a new local id for
	// one side; content is never merged.
	ConflictCreateCreate ConflictType = "create-create"

	// ConflictRejected: the server refused the entity during push, usually
	// a validation failure. Remote is empty since no server copy exists.
	// Like any other conflict the entity is parked until the caller
	// resolves it.
	ConflictRejected ConflictType = "rejected"
)

// SyncConflict pairs the local and remote snapshots of one logical entity
// at the moment divergence was detected during pull reconciliation.
//
// The sync engine only detects and surfaces conflicts; resolving them is
// the caller's job. After resolution the entity returns to pending.
type SyncConflict struct {
	Type ConflictType `json:"type"`

	Local  SyncEntity `json:"local"`
	Remote SyncEntity `json:"remote"`

	DetectedAt time.Time `json:"detected_at"`
}
