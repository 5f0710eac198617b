// Package score implements the canonical-identity scheme and fuzzy
// duplicate finder for musical-work references.
//
// Free-text titles and composer names are normalized into a deterministic,
// delimiter-safe canonical id so that "Moonlight SONATA / BEETHOVEN" and
// "moonlight sonata / beethoven" map to one identity, and a
// Levenshtein-based matcher ranks likely duplicates among already
// registered pieces before a new reference is created.
package score
