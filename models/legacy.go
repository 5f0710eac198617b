package models

import "time"

// LegacyEntry is one row of the pre-sync practice log the batch migrator
// backfills from. The legacy schema stored free-text piece references
// inline; the migrator normalizes them into canonical entities.
type LegacyEntry struct {
	// ID is the legacy primary key. Pages are scanned in ID order so the
	// migration is resumable from any page boundary.
	ID int64

	UserID int64

	// PieceTitle and Composer are the raw free-text strings as the user
	// typed them years ago, inconsistent spelling and all.
	PieceTitle string
	Composer   string

	DurationMinutes int
	Tempo           int
	Notes           string

	PracticedAt time.Time
	CreatedAt   time.Time
}
