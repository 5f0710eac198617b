// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/akulikov/scoresync/models"
)

// entityContent is the projection of a SyncEntity that participates in its
// checksum. Bookkeeping fields (sync status, sync version, the checksum
// itself) and server-assigned row ids are deliberately absent so that the
// same content hashes identically on every device and at every version.
type entityContent struct {
	LocalID    string            `json:"local_id"`
	EntityType models.EntityType `json:"entity_type"`
	Payload    json.RawMessage   `json:"payload"`
	Deleted    bool              `json:"deleted"`
}

// CanonicalContent returns the canonical JSON bytes of the entity's
// checksummed content. Exposed separately from EntityChecksum so callers
// (idempotency keys, tests) can reuse the exact byte form.
func CanonicalContent(e models.SyncEntity) ([]byte, error) {
	payload := e.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	content := entityContent{
		LocalID:    e.LocalID,
		EntityType: e.EntityType,
		Payload:    payload,
		Deleted:    e.Deleted(),
	}

	canonical, err := CanonicalJSON(content)
	if err != nil {
		return nil, fmt.Errorf("error canonicalizing entity %s: %w", e.LocalID, err)
	}

	return canonical, nil
}

// EntityChecksum computes the hex-encoded SHA-256 checksum of the entity's
// canonical content. The server's upsert resolver compares this value
// against the stored one to decide between skip and update, which is what
// makes replayed pushes converge instead of duplicating work.
func EntityChecksum(e models.SyncEntity) (string, error) {
	canonical, err := CanonicalContent(e)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
