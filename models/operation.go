package models

import (
	"encoding/json"
	"time"
)

// OperationKind is the intent a queued SyncOperation carries.
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// OperationStatus describes the processing state of a queued operation.
type OperationStatus string

const (
	OperationPending   OperationStatus = "pending"
	OperationSyncing   OperationStatus = "syncing"
	OperationCompleted OperationStatus = "completed"
	OperationFailed    OperationStatus = "failed"
)

// SyncOperation is a queued mutation that could not be applied to the
// server synchronously. Completed operations are removed from the queue;
// failed ones are retained with an incremented RetryCount and retried with
// backoff on the next sync cycle.
type SyncOperation struct {
	// ID is the local queue row identifier.
	ID int64 `json:"id"`

	// Kind is the intent: create, update, or delete.
	Kind OperationKind `json:"kind"`

	// EntityType and LocalID name the target entity.
	EntityType EntityType `json:"entity_type"`
	LocalID    string     `json:"local_id"`

	// Payload is the entity content the operation carries. Empty for
	// deletes.
	Payload json.RawMessage `json:"payload,omitempty"`

	Status OperationStatus `json:"status"`

	// RetryCount is the number of failed delivery attempts so far.
	RetryCount int `json:"retry_count"`

	// LastError holds the most recent failure reason, if any.
	LastError string `json:"last_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
