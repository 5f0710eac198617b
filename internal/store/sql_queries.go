// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	// upsertEntity applies the whole checksummed upsert rule in a single
	// statement so that the insert/skip/update decision and the write are
	// one atomic critical section per (user_id, entity_type, local_id).
	//
	// On conflict the update fires only when the stored checksum differs
	// from the incoming one; an identical checksum produces no row, which
	// the repository reports as skipped. The (xmax = 0) expression is true
	// only for freshly inserted rows, distinguishing inserted from updated.
	upsertEntity = `
		INSERT INTO sync_entities (
			user_id,
			entity_type,
			local_id,
			payload,
			checksum,
			sync_version,
			created_at,
			updated_at,
			deleted_at
		) VALUES ($1, $2, $3, $4, $5, 1, $6, $7, $8)
		ON CONFLICT (user_id, entity_type, local_id) DO UPDATE SET
			payload      = EXCLUDED.payload,
			checksum     = EXCLUDED.checksum,
			sync_version = sync_entities.sync_version + 1,
			updated_at   = EXCLUDED.updated_at,
			deleted_at   = EXCLUDED.deleted_at
		WHERE sync_entities.checksum <> EXCLUDED.checksum
		RETURNING id, sync_version, (xmax = 0) AS inserted;`

	getEntityByKey = `
		SELECT
			id,
			user_id,
			entity_type,
			local_id,
			payload,
			checksum,
			sync_version,
			created_at,
			updated_at,
			deleted_at
		FROM sync_entities
		WHERE user_id = $1 AND entity_type = $2 AND local_id = $3;`
)

// entityColumns is the canonical column order every entity SELECT uses, so
// a single scan helper covers all of them.
var entityColumns = []string{
	"id",
	"user_id",
	"entity_type",
	"local_id",
	"payload",
	"checksum",
	"sync_version",
	"created_at",
	"updated_at",
	"deleted_at",
}

// psql builds queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildChangedSinceQuery builds the pull scan: entities of one user
// changed at or after since, keyset-paginated by row id so a continuation
// token is just the last row id seen.
func buildChangedSinceQuery(userID int64, since time.Time, afterID int64, limit int) (string, []any, error) {
	builder := psql.
		Select(entityColumns...).
		From("sync_entities").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"id": afterID}).
		OrderBy("id").
		Limit(uint64(limit))

	if !since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"updated_at": since})
	}

	return builder.ToSql()
}

// buildLegacyScanQuery builds one migrator page: legacy rows in primary-key
// order after afterID. Restarting at any page boundary re-reads nothing and
// skips nothing.
func buildLegacyScanQuery(afterID int64, limit int) (string, []any, error) {
	return psql.
		Select(
			"id",
			"user_id",
			"piece_title",
			"composer",
			"duration_minutes",
			"tempo",
			"notes",
			"practiced_at",
			"created_at",
		).
		From("legacy_entries").
		Where(sq.Gt{"id": afterID}).
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
}
