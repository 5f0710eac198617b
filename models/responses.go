package models

import "time"

// EntityOutcome is the per-entity result of the upsert resolver.
type EntityOutcome string

const (
	// OutcomeInserted: no record existed for the key; a new row was written
	// with sync_version = 1.
	OutcomeInserted EntityOutcome = "inserted"

	// OutcomeUpdated: a record existed with a different checksum; content
	// was replaced and sync_version incremented by one.
	OutcomeUpdated EntityOutcome = "updated"

	// OutcomeSkipped: a record existed with an identical checksum; nothing
	// was written. Replayed batches report previously-applied entities this
	// way.
	OutcomeSkipped EntityOutcome = "skipped"
)

// PushItemResult reports the resolver's decision for a single entity.
type PushItemResult struct {
	LocalID string        `json:"local_id"`
	Outcome EntityOutcome `json:"outcome"`

	// SyncVersion is the server-side version after the upsert.
	SyncVersion int64 `json:"sync_version"`

	// RemoteID is the server row id, so the client can record it.
	RemoteID int64 `json:"remote_id"`
}

// PushError reports a single entity that was rejected. The rest of the
// batch is unaffected; one bad item never aborts the whole push.
type PushError struct {
	LocalID string `json:"local_id"`

	// Code is a stable machine-readable reason (see validators package).
	Code string `json:"code"`

	Message string `json:"message"`
}

// PushResult aggregates the resolver outcomes for one entity type.
// Processed = Inserted + Updated + Skipped + len(Errors).
type PushResult struct {
	Processed int `json:"processed"`
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`

	Items  []PushItemResult `json:"items,omitempty"`
	Errors []PushError      `json:"errors,omitempty"`
}

// PushResponse is the server's answer to a PushRequest, one PushResult per
// entity type present in the request.
type PushResponse struct {
	Results map[EntityType]PushResult `json:"results"`
}

// PullResponse carries one page of entities changed since the requested
// checkpoint.
type PullResponse struct {
	Entities []SyncEntity `json:"entities"`

	// Token is the continuation token for the next page. Empty when this
	// page is the last one.
	Token string `json:"token,omitempty"`

	// ServerTime is the server clock at response time; the client stores it
	// as the next checkpoint once the final page is consumed.
	ServerTime time.Time `json:"server_time"`

	// Length is the number of entries in Entities.
	Length int `json:"length"`
}
