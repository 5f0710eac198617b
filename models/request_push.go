// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package models

// IdempotencyKeyHeader is the HTTP header the push endpoint reads the
// batch idempotency key from.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// PushRequest carries one batch of locally changed entities, grouped by
// collection. The whole batch is covered by a single deterministic
// idempotency key derived from its canonical content, so replaying the
// request after a lost response is always safe.
type PushRequest struct {
	// Changes maps each entity type to the pending entities of that type.
	// Batches are bounded (see config.Sync.BatchSize) to keep transaction
	// cost and payload size predictable.
	Changes map[EntityType][]SyncEntity `json:"changes"`

	// Length is the total number of entities across all types. Provided so
	// the server can validate the batch without iterating first.
	Length int `json:"length"`
}

// CountEntities returns the number of entities in the request across all
// entity types.
func (r *PushRequest) CountEntities() int {
	n := 0
	for _, list := range r.Changes {
		n += len(list)
	}
	return n
}
