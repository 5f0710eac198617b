// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package store

// SQLite schema and queries for the client-side local store.
// Placeholders are positional (?), the dialect SQLite shares with the
// mattn driver defaults.
const (
	clientSchema = `
		CREATE TABLE IF NOT EXISTS entities (
			user_id      INTEGER NOT NULL,
			entity_type  TEXT    NOT NULL,
			local_id     TEXT    NOT NULL,
			remote_id    INTEGER,
			payload      TEXT    NOT NULL,
			checksum     TEXT    NOT NULL,
			sync_status  TEXT    NOT NULL,
			sync_version INTEGER NOT NULL DEFAULT 0,
			created_at   TIMESTAMP NOT NULL,
			updated_at   TIMESTAMP NOT NULL,
			deleted_at   TIMESTAMP,
			PRIMARY KEY (user_id, entity_type, local_id)
		);

		CREATE INDEX IF NOT EXISTS idx_entities_status
			ON entities (user_id, sync_status, created_at);

		CREATE TABLE IF NOT EXISTS sync_operations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			kind        TEXT    NOT NULL,
			entity_type TEXT    NOT NULL,
			local_id    TEXT    NOT NULL,
			payload     TEXT,
			status      TEXT    NOT NULL,
			retry_count INTEGER NOT NULL DEFAULT 0,
			last_error  TEXT,
			created_at  TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS checkpoint (
			user_id INTEGER PRIMARY KEY,
			since   TIMESTAMP NOT NULL,
			token   TEXT NOT NULL DEFAULT ''
		);`

	saveLocalEntity = `
		INSERT INTO entities (
			user_id, entity_type, local_id, remote_id, payload, checksum,
			sync_status, sync_version, created_at, updated_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, 'pending', 0, ?, ?, ?)
		ON CONFLICT (user_id, entity_type, local_id) DO UPDATE SET
			payload     = excluded.payload,
			checksum    = excluded.checksum,
			updated_at  = excluded.updated_at,
			deleted_at  = excluded.deleted_at,
			sync_status = 'pending';`

	applyRemoteEntity = `
		INSERT INTO entities (
			user_id, entity_type, local_id, remote_id, payload, checksum,
			sync_status, sync_version, created_at, updated_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, 'synced', ?, ?, ?, ?)
		ON CONFLICT (user_id, entity_type, local_id) DO UPDATE SET
			remote_id    = excluded.remote_id,
			payload      = excluded.payload,
			checksum     = excluded.checksum,
			sync_status  = 'synced',
			sync_version = excluded.sync_version,
			updated_at   = excluded.updated_at,
			deleted_at   = excluded.deleted_at;`

	getLocalEntity = `
		SELECT
			user_id, entity_type, local_id, remote_id, payload, checksum,
			sync_status, sync_version, created_at, updated_at, deleted_at
		FROM entities
		WHERE user_id = ? AND entity_type = ? AND local_id = ?;`

	listPendingEntities = `
		SELECT
			user_id, entity_type, local_id, remote_id, payload, checksum,
			sync_status, sync_version, created_at, updated_at, deleted_at
		FROM entities
		WHERE user_id = ? AND sync_status = 'pending'
		ORDER BY created_at, local_id
		LIMIT ?;`

	listEntitiesByType = `
		SELECT
			user_id, entity_type, local_id, remote_id, payload, checksum,
			sync_status, sync_version, created_at, updated_at, deleted_at
		FROM entities
		WHERE user_id = ? AND entity_type = ? AND deleted_at IS NULL
		ORDER BY created_at, local_id;`

	setEntityStatus = `
		UPDATE entities
		SET sync_status = ?
		WHERE user_id = ? AND entity_type = ? AND local_id = ?;`

	markEntitySynced = `
		UPDATE entities
		SET sync_status = 'synced', sync_version = ?, remote_id = ?
		WHERE user_id = ? AND entity_type = ? AND local_id = ?;`

	reassignEntityLocalID = `
		UPDATE entities
		SET local_id = ?, checksum = ?, remote_id = NULL, sync_version = 0, sync_status = 'pending'
		WHERE user_id = ? AND entity_type = ? AND local_id = ?;`

	enqueueOperation = `
		INSERT INTO sync_operations (kind, entity_type, local_id, payload, status, retry_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	listOperations = `
		SELECT id, kind, entity_type, local_id, payload, status, retry_count, COALESCE(last_error, ''), created_at
		FROM sync_operations
		WHERE status = ?
		ORDER BY id
		LIMIT ?;`

	completeOperation = `
		DELETE FROM sync_operations
		WHERE id = ?;`

	failOperation = `
		UPDATE sync_operations
		SET retry_count = retry_count + 1, last_error = ?
		WHERE id = ?;`

	getCheckpoint = `
		SELECT since, token
		FROM checkpoint
		WHERE user_id = ?;`

	setCheckpoint = `
		INSERT INTO checkpoint (user_id, since, token)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			since = excluded.since,
			token = excluded.token;`
)
