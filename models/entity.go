// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package models

import (
	"encoding/json"
	"time"
)

// SyncStatus describes where a locally stored entity is in its
// synchronization lifecycle.
type SyncStatus string

const (
	// SyncStatusPending marks an entity that has local changes the server
	// has not seen yet. Every local mutation resets the entity to pending.
	SyncStatusPending SyncStatus = "pending"

	// SyncStatusSyncing marks an entity that is part of an in-flight push
	// batch. If the batch is aborted the entity falls back to pending.
	SyncStatusSyncing SyncStatus = "syncing"

	// SyncStatusSynced marks an entity whose content the server has
	// accepted. The stored checksum matches the server's copy.
	SyncStatusSynced SyncStatus = "synced"

	// SyncStatusConflict marks an entity for which the server detected an
	// independent concurrent change. Conflicted entities are never retried
	// automatically; they wait for the caller's resolution.
	SyncStatusConflict SyncStatus = "conflict"
)

// EntityType identifies which journal collection an entity belongs to.
type EntityType string

const (
	// EntityTypeEntry is a single practice session record.
	EntityTypeEntry EntityType = "entry"

	// EntityTypeGoal is a practice goal attached to a piece.
	EntityTypeGoal EntityType = "goal"

	// EntityTypePiece is a reference to a musical work (title + composer).
	EntityTypePiece EntityType = "piece"
)

// KnownEntityTypes lists every collection the sync protocol carries.
// Order is stable so batches and responses iterate deterministically.
var KnownEntityTypes = []EntityType{EntityTypeEntry, EntityTypeGoal, EntityTypePiece}

// SyncEntity is the unit of synchronization: one record of one journal
// collection, together with the bookkeeping the sync protocol needs.
//
// The Checksum field is a deterministic hash of the entity's content
// (LocalID, EntityType, Payload, deletion state) and deliberately excludes
// SyncStatus, SyncVersion, and Checksum itself, so that two entities with
// identical content always hash identically regardless of sync history.
type SyncEntity struct {
	// ID is the server-side row identifier. Zero for entities that have
	// never been accepted by the server.
	ID int64 `json:"id,omitempty"`

	// LocalID is the client-minted identifier, generated at creation time
	// and stable across devices once synced. It is the identity the upsert
	// resolver keys on together with UserID and EntityType.
	LocalID string `json:"local_id"`

	// RemoteID mirrors ID on the client once the server has assigned one.
	// Nil while the entity exists only locally.
	RemoteID *int64 `json:"remote_id,omitempty"`

	// UserID is the owner of the entity.
	UserID int64 `json:"user_id"`

	// EntityType names the collection this record belongs to.
	EntityType EntityType `json:"entity_type"`

	// Payload is the collection-specific document (PracticeEntry, Goal, or
	// PieceRef) in JSON form. The sync protocol treats it as opaque; only
	// the validation boundary inspects it.
	Payload json.RawMessage `json:"payload"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// SyncStatus is client-side bookkeeping only; the server neither stores
	// nor trusts it.
	SyncStatus SyncStatus `json:"sync_status,omitempty"`

	// SyncVersion counts server-accepted content revisions, starting at 1.
	// It increments by exactly one each time the server accepts new content
	// and never decreases.
	SyncVersion int64 `json:"sync_version"`

	// Checksum is the hex-encoded content hash. See the type doc for which
	// fields participate.
	Checksum string `json:"checksum"`
}

// Deleted reports whether the entity carries a soft-delete marker.
func (e *SyncEntity) Deleted() bool {
	return e.DeletedAt != nil
}

// Key returns the identity triple the server's upsert resolver locks on.
func (e *SyncEntity) Key() EntityKey {
	return EntityKey{UserID: e.UserID, EntityType: e.EntityType, LocalID: e.LocalID}
}

// TableName returns the name of the database table backing SyncEntity.
func (e *SyncEntity) TableName() string {
	return "sync_entities"
}

// EntityKey is the (user, entityType, entityId) triple that uniquely
// identifies a logical entity across devices.
type EntityKey struct {
	UserID     int64
	EntityType EntityType
	LocalID    string
}
