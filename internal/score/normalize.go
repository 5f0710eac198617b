// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kulikov

package score

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder performs Unicode case folding, which is stricter than ToLower for
// the non-ASCII composer names the catalog is full of.
var folder = cases.Fold()

// punctReplacer maps typographic punctuation onto its ASCII form so that
// text pasted from different sources normalizes identically.
var punctReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
)

// NormalizeTitle canonicalizes a free-text piece title: case-folded,
// trimmed, internal whitespace runs collapsed to a single space, and
// typographic quotes/dashes mapped to ASCII.
//
// NormalizeTitle is idempotent: applying it to its own output is a no-op.
func NormalizeTitle(s string) string {
	s = punctReplacer.Replace(s)
	s = folder.String(s)

	// Fields collapses every whitespace run and trims both ends at once.
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeComposer canonicalizes a composer name the same way as a title
// and additionally strips all periods, so "J.S. Bach" and "JS Bach"
// normalize to the same string ("js bach").
func NormalizeComposer(s string) string {
	return NormalizeTitle(strings.ReplaceAll(s, ".", ""))
}
