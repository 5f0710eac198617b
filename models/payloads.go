// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package models

import "time"

// PracticeEntry is the payload document of an EntityTypeEntry record:
// one practice session on one piece.
type PracticeEntry struct {
	// PieceID is the canonical id of the practiced piece.
	PieceID string `json:"piece_id"`

	// DurationMinutes is the length of the session.
	DurationMinutes int `json:"duration_minutes"`

	// Tempo is the metronome marking practiced at, in BPM. Zero when the
	// user did not record one.
	Tempo int `json:"tempo,omitempty"`

	// Notes is free-form session commentary.
	Notes string `json:"notes,omitempty"`

	// PracticedAt is when the session took place.
	PracticedAt time.Time `json:"practiced_at"`
}

// Goal is the payload document of an EntityTypeGoal record.
type Goal struct {
	// PieceID is the canonical id of the piece the goal is about.
	PieceID string `json:"piece_id"`

	Description string `json:"description"`

	// TargetDate is optional; nil means an open-ended goal.
	TargetDate *time.Time `json:"target_date,omitempty"`

	Done bool `json:"done"`
}

// PieceRef is the payload document of an EntityTypePiece record: a
// reference to a musical work as the user typed it, together with the
// canonical identity assigned by the normalizer.
type PieceRef struct {
	// Title and Composer are the raw user-entered strings, preserved for
	// display.
	Title    string `json:"title"`
	Composer string `json:"composer,omitempty"`

	// CanonicalID is the normalized, delimiter-safe identity derived from
	// Title and Composer. Assigned once at creation and used for duplicate
	// detection; never recomputed destructively.
	CanonicalID string `json:"canonical_id"`
}
