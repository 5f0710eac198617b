// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package score

import "strings"

const (
	// primaryDelimiter joins title and composer in the common case where
	// neither part contains a hyphen.
	primaryDelimiter = "-"

	// altDelimiter is used when either part contains a hyphen. Normalized
	// text can never contain "||", so ids built with it are always
	// losslessly parseable.
	altDelimiter = "||"

	// unknownComposer stands in when no composer was given.
	unknownComposer = "unknown"

	// opaqueIDPrefix marks server-issued ids whose suffix is random and
	// carries no normalized text. Such ids pass through unchanged.
	opaqueIDPrefix = "score_"
)

// IsOpaqueID reports whether id is a server-issued opaque identifier
// rather than a normalized (title, composer) encoding. Opaque ids must
// never be renormalized or reparsed.
func IsOpaqueID(id string) bool {
	return strings.HasPrefix(id, opaqueIDPrefix)
}

// CanonicalID derives the deterministic identity of a (title, composer)
// pair. An empty composer maps to "unknown". The result is case- and
// whitespace-insensitive: any spelling that normalizes identically yields
// the same id.
func CanonicalID(title, composer string) string {
	nt := NormalizeTitle(title)

	nc := unknownComposer
	if composer != "" {
		nc = NormalizeComposer(composer)
	}

	if !strings.Contains(nt, primaryDelimiter) && !strings.Contains(nc, primaryDelimiter) {
		return nt + primaryDelimiter + nc
	}

	return nt + altDelimiter + nc
}

// ParseID splits a canonical id back into its normalized (title, composer)
// parts.
//
// Ids containing the "||" delimiter split losslessly. Older ids fall back
// to splitting on the first hyphen: title before, remainder after. That
// heuristic is ambiguous when both parts contain hyphens; it is preserved
// as documented legacy behavior because changing it would silently change
// which records are considered duplicates.
//
// Opaque server-issued ids are returned unchanged as the title with an
// empty composer.
func ParseID(id string) (title, composer string) {
	if IsOpaqueID(id) {
		return id, ""
	}

	if idx := strings.Index(id, altDelimiter); idx >= 0 {
		return id[:idx], id[idx+len(altDelimiter):]
	}

	if idx := strings.Index(id, primaryDelimiter); idx >= 0 {
		return id[:idx], id[idx+1:]
	}

	return id, ""
}

// IsSameScore reports whether two canonical ids refer to the same musical
// work. Parsed (title, composer) pairs are compared after normalization;
// a swapped pair also matches because legacy records sometimes stored
// title and composer reversed.
//
// Opaque ids only ever match by exact string equality.
func IsSameScore(a, b string) bool {
	if a == b {
		return true
	}
	if IsOpaqueID(a) || IsOpaqueID(b) {
		return false
	}

	at, ac := ParseID(a)
	bt, bc := ParseID(b)

	at, ac = NormalizeTitle(at), NormalizeComposer(ac)
	bt, bc = NormalizeTitle(bt), NormalizeComposer(bc)

	if at == bt && ac == bc {
		return true
	}

	// Legacy data sometimes has the pair reversed.
	return at == bc && ac == bt
}
